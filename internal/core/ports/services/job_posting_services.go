package services

import (
	"context"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	"github.com/SscSPs/hr_platform_app/internal/dto"
)

// JobPostingSvcFacade manages recruiter-owned job postings.
type JobPostingSvcFacade interface {
	CreateJobPosting(ctx context.Context, req dto.CreateJobPostingRequest, recruiterID string) (*domain.JobPosting, error)
	GetJobPostingByID(ctx context.Context, jobPostingID int64) (*domain.JobPosting, error)
	ListJobPostings(ctx context.Context) ([]domain.JobPosting, error)
	UpdateJobPosting(ctx context.Context, jobPostingID int64, req dto.UpdateJobPostingRequest) error
	DeleteJobPosting(ctx context.Context, jobPostingID int64) error
}
