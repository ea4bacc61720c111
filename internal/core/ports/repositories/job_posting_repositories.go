package repositories

import (
	"context"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
)

// JobPostingReader defines read operations for job postings.
type JobPostingReader interface {
	FindJobPostingByID(ctx context.Context, jobPostingID int64) (*domain.JobPosting, error)
	ListJobPostings(ctx context.Context) ([]domain.JobPosting, error)
}

// JobPostingWriter defines write operations for job postings.
type JobPostingWriter interface {
	SaveJobPosting(ctx context.Context, posting domain.JobPosting) (*domain.JobPosting, error)
	UpdateJobPosting(ctx context.Context, posting domain.JobPosting) error
	DeleteJobPosting(ctx context.Context, jobPostingID int64) error
}

// JobPostingRepositoryFacade combines all job posting repository interfaces.
type JobPostingRepositoryFacade interface {
	JobPostingReader
	JobPostingWriter
}
