package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplicationLogFilter narrows the processed-applications audit view.
// Empty fields are ignored.
type ApplicationLogFilter struct {
	Title         string     // substring match against the posting title
	PostedDate    *time.Time // same-day match against the posting date
	Recruiter     string     // substring match against recruiter name or email
	ApplicantName string     // substring match against the applicant name snapshot
}

// JobApplicationReader defines read operations for job applications.
type JobApplicationReader interface {
	FindJobApplicationByID(ctx context.Context, jobApplicationID int64) (*domain.JobApplication, error)

	// ListPendingByPosting returns the posting's currently actionable
	// applications.
	ListPendingByPosting(ctx context.Context, jobPostingID int64) ([]domain.JobApplication, error)

	// HasPendingApplication reports whether the email (case-insensitive) has a
	// pending application against any posting.
	HasPendingApplication(ctx context.Context, email string) (bool, error)

	// ListProcessedApplications returns Approved and Denied applications
	// matching the filter.
	ListProcessedApplications(ctx context.Context, filter ApplicationLogFilter) ([]domain.JobApplication, error)
}

// JobApplicationWriter defines write operations for job applications.
type JobApplicationWriter interface {
	SaveJobApplication(ctx context.Context, application domain.JobApplication) (*domain.JobApplication, error)

	// DenyJobApplication moves a Pending application to Denied with the given
	// reason. Returns apperrors.ErrNotFound for an unknown id and
	// apperrors.ErrDuplicate when the application is already finalized.
	DenyJobApplication(ctx context.Context, jobApplicationID int64, reason string) error

	// ApproveJobApplication applies the approval's five effects in one
	// database transaction: drop the applicant's "User" role, grant
	// "Employee", set the salary, insert the team membership, and mark the
	// application Approved. Error semantics match DenyJobApplication.
	ApproveJobApplication(ctx context.Context, jobApplicationID int64, applicantUserID string, salary decimal.Decimal, member domain.TeamMember) error
}

// JobApplicationRepositoryFacade combines all job application repository interfaces.
type JobApplicationRepositoryFacade interface {
	JobApplicationReader
	JobApplicationWriter
}
