package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var (
	ErrDuplicatePendingApplication = errors.New("applicant already has a pending application")
	ErrApplicationFinalized        = errors.New("job application has already been finalized")
)

// jobApplicationService implements the job-application workflow.
type jobApplicationService struct {
	BaseService
	applicationRepo portsrepo.JobApplicationRepositoryFacade
	postingRepo     portsrepo.JobPostingReader
	userRepo        portsrepo.UserReader
	teamRepo        portsrepo.TeamReader
}

// NewJobApplicationService creates a new job application service.
func NewJobApplicationService(
	applicationRepo portsrepo.JobApplicationRepositoryFacade,
	postingRepo portsrepo.JobPostingReader,
	userRepo portsrepo.UserReader,
	teamRepo portsrepo.TeamReader,
) portssvc.JobApplicationSvcFacade {
	return &jobApplicationService{
		applicationRepo: applicationRepo,
		postingRepo:     postingRepo,
		userRepo:        userRepo,
		teamRepo:        teamRepo,
	}
}

var _ portssvc.JobApplicationSvcFacade = (*jobApplicationService)(nil)

// ApplyForJob creates a pending application for the posting. A user may have
// only one pending application system-wide, matched by email
// case-insensitively.
func (s *jobApplicationService) ApplyForJob(ctx context.Context, jobPostingID int64, applicantEmail, resumeURL string) (*domain.JobApplication, error) {
	applicantEmail = strings.TrimSpace(applicantEmail)
	if applicantEmail == "" || !strings.Contains(applicantEmail, "@") {
		return nil, fmt.Errorf("%w: applicant email is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(resumeURL) == "" {
		return nil, fmt.Errorf("%w: resume URL is required", apperrors.ErrValidation)
	}

	if _, err := s.postingRepo.FindJobPostingByID(ctx, jobPostingID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find job posting", slog.Int64("job_posting_id", jobPostingID))
		}
		return nil, err
	}

	applicant, err := s.userRepo.FindUserByEmail(ctx, applicantEmail)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve applicant", slog.String("email", applicantEmail))
		}
		return nil, err
	}

	hasPending, err := s.applicationRepo.HasPendingApplication(ctx, applicantEmail)
	if err != nil {
		s.LogError(ctx, err, "Failed to check pending applications", slog.String("email", applicantEmail))
		return nil, err
	}
	if hasPending {
		return nil, ErrDuplicatePendingApplication
	}

	application := domain.JobApplication{
		JobPostingID: jobPostingID,
		// Snapshot of the applicant's name at apply time; later renames do
		// not update existing applications.
		ApplicantName:  applicant.FullName(),
		ApplicantEmail: applicant.Email,
		ResumeURL:      resumeURL,
		Status:         domain.ApplicationStatusPending,
	}

	saved, err := s.applicationRepo.SaveJobApplication(ctx, application)
	if err != nil {
		s.LogError(ctx, err, "Failed to save job application", slog.Int64("job_posting_id", jobPostingID))
		return nil, err
	}

	s.LogInfo(ctx, "Job application submitted",
		slog.Int64("job_application_id", saved.JobApplicationID),
		slog.Int64("job_posting_id", jobPostingID))
	return saved, nil
}

// ListApplicants returns the posting's currently actionable (pending)
// applications; finalized ones live in the audit log.
func (s *jobApplicationService) ListApplicants(ctx context.Context, jobPostingID int64) ([]domain.JobApplication, error) {
	applications, err := s.applicationRepo.ListPendingByPosting(ctx, jobPostingID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list applicants", slog.Int64("job_posting_id", jobPostingID))
		return nil, err
	}
	if applications == nil {
		return []domain.JobApplication{}, nil
	}
	return applications, nil
}

// ApproveApplication hires the applicant. The role swap, salary, team
// membership and the Approved status commit in one repository transaction;
// a failure anywhere rolls back everything.
func (s *jobApplicationService) ApproveApplication(ctx context.Context, jobApplicationID int64, salary decimal.Decimal, teamID int64) error {
	if salary.IsNegative() {
		return fmt.Errorf("%w: salary cannot be negative", apperrors.ErrValidation)
	}

	application, err := s.applicationRepo.FindJobApplicationByID(ctx, jobApplicationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find job application", slog.Int64("job_application_id", jobApplicationID))
		}
		return err
	}
	if application.IsFinal() {
		return fmt.Errorf("%w: application %d is already %s", ErrApplicationFinalized, jobApplicationID, application.Status)
	}

	applicant, err := s.userRepo.FindUserByEmail(ctx, application.ApplicantEmail)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve applicant", slog.String("email", application.ApplicantEmail))
		}
		return err
	}

	if _, err := s.teamRepo.FindTeamByID(ctx, teamID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find team for approval", slog.Int64("team_id", teamID))
		}
		return err
	}

	member := domain.TeamMember{
		TeamID:   teamID,
		UserID:   applicant.UserID,
		JoinedAt: time.Now().UTC(),
	}

	if err := s.applicationRepo.ApproveJobApplication(ctx, jobApplicationID, applicant.UserID, salary, member); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: application %d", ErrApplicationFinalized, jobApplicationID)
		}
		s.LogError(ctx, err, "Failed to approve job application", slog.Int64("job_application_id", jobApplicationID))
		return err
	}

	s.LogInfo(ctx, "Job application approved",
		slog.Int64("job_application_id", jobApplicationID),
		slog.String("applicant_id", applicant.UserID),
		slog.Int64("team_id", teamID))
	return nil
}

// DenyApplication finalizes the application as Denied. The reason is
// mandatory; an empty reason fails before any state is touched.
func (s *jobApplicationService) DenyApplication(ctx context.Context, jobApplicationID int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: denial reason is required", apperrors.ErrValidation)
	}

	application, err := s.applicationRepo.FindJobApplicationByID(ctx, jobApplicationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find job application", slog.Int64("job_application_id", jobApplicationID))
		}
		return err
	}
	if application.IsFinal() {
		return fmt.Errorf("%w: application %d is already %s", ErrApplicationFinalized, jobApplicationID, application.Status)
	}

	if err := s.applicationRepo.DenyJobApplication(ctx, jobApplicationID, reason); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: application %d", ErrApplicationFinalized, jobApplicationID)
		}
		s.LogError(ctx, err, "Failed to deny job application", slog.Int64("job_application_id", jobApplicationID))
		return err
	}

	s.LogInfo(ctx, "Job application denied", slog.Int64("job_application_id", jobApplicationID))
	return nil
}

// ListProcessedApplications returns the Approved/Denied audit log, optionally
// filtered by posting title, posted date, recruiter or applicant name.
func (s *jobApplicationService) ListProcessedApplications(ctx context.Context, filter portsrepo.ApplicationLogFilter) ([]domain.JobApplication, error) {
	applications, err := s.applicationRepo.ListProcessedApplications(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list processed applications")
		return nil, err
	}
	if applications == nil {
		return []domain.JobApplication{}, nil
	}
	return applications, nil
}
