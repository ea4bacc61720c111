package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
	"github.com/SscSPs/hr_platform_app/internal/dto"
)

// jobPostingService manages recruiter-owned job postings.
type jobPostingService struct {
	BaseService
	postingRepo portsrepo.JobPostingRepositoryFacade
}

// NewJobPostingService creates a new job posting service.
func NewJobPostingService(postingRepo portsrepo.JobPostingRepositoryFacade) portssvc.JobPostingSvcFacade {
	return &jobPostingService{postingRepo: postingRepo}
}

var _ portssvc.JobPostingSvcFacade = (*jobPostingService)(nil)

// CreateJobPosting publishes an opening with PostedDate set to now.
func (s *jobPostingService) CreateJobPosting(ctx context.Context, req dto.CreateJobPostingRequest, recruiterID string) (*domain.JobPosting, error) {
	posting := domain.JobPosting{
		Title:       req.Title,
		Description: req.Description,
		PostedDate:  time.Now().UTC(),
		RecruiterID: recruiterID,
	}

	saved, err := s.postingRepo.SaveJobPosting(ctx, posting)
	if err != nil {
		s.LogError(ctx, err, "Failed to save job posting", slog.String("recruiter_id", recruiterID))
		return nil, err
	}

	s.LogInfo(ctx, "Job posting created", slog.Int64("job_posting_id", saved.JobPostingID))
	return saved, nil
}

// GetJobPostingByID retrieves a posting.
func (s *jobPostingService) GetJobPostingByID(ctx context.Context, jobPostingID int64) (*domain.JobPosting, error) {
	posting, err := s.postingRepo.FindJobPostingByID(ctx, jobPostingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find job posting", slog.Int64("job_posting_id", jobPostingID))
		}
		return nil, err
	}
	return posting, nil
}

// ListJobPostings retrieves all postings.
func (s *jobPostingService) ListJobPostings(ctx context.Context) ([]domain.JobPosting, error) {
	postings, err := s.postingRepo.ListJobPostings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list job postings")
		return nil, err
	}
	if postings == nil {
		return []domain.JobPosting{}, nil
	}
	return postings, nil
}

// UpdateJobPosting edits a posting's title and description. PostedDate and
// recruiter are immutable.
func (s *jobPostingService) UpdateJobPosting(ctx context.Context, jobPostingID int64, req dto.UpdateJobPostingRequest) error {
	posting, err := s.postingRepo.FindJobPostingByID(ctx, jobPostingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find job posting", slog.Int64("job_posting_id", jobPostingID))
		}
		return err
	}

	posting.Title = req.Title
	posting.Description = req.Description

	if err := s.postingRepo.UpdateJobPosting(ctx, *posting); err != nil {
		s.LogError(ctx, err, "Failed to update job posting", slog.Int64("job_posting_id", jobPostingID))
		return err
	}

	s.LogInfo(ctx, "Job posting updated", slog.Int64("job_posting_id", jobPostingID))
	return nil
}

// DeleteJobPosting removes a posting.
func (s *jobPostingService) DeleteJobPosting(ctx context.Context, jobPostingID int64) error {
	if err := s.postingRepo.DeleteJobPosting(ctx, jobPostingID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete job posting", slog.Int64("job_posting_id", jobPostingID))
		}
		return err
	}
	s.LogInfo(ctx, "Job posting deleted", slog.Int64("job_posting_id", jobPostingID))
	return nil
}
