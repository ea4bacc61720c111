package services

import (
	"context"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// JobApplicationSvcFacade is the job-application workflow boundary.
type JobApplicationSvcFacade interface {
	// ApplyForJob creates a pending application for the posting on behalf of
	// the user identified by applicantEmail. The applicant's name is
	// snapshotted at apply time.
	ApplyForJob(ctx context.Context, jobPostingID int64, applicantEmail, resumeURL string) (*domain.JobApplication, error)

	// ListApplicants returns the posting's pending applications.
	ListApplicants(ctx context.Context, jobPostingID int64) ([]domain.JobApplication, error)

	// ApproveApplication hires the applicant: role swap, salary, team
	// membership and the Approved status are applied atomically.
	ApproveApplication(ctx context.Context, jobApplicationID int64, salary decimal.Decimal, teamID int64) error

	// DenyApplication finalizes the application as Denied with a mandatory
	// reason.
	DenyApplication(ctx context.Context, jobApplicationID int64, reason string) error

	// ListProcessedApplications returns the Approved/Denied audit log.
	ListProcessedApplications(ctx context.Context, filter portsrepo.ApplicationLogFilter) ([]domain.JobApplication, error)
}
