package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
)

// LeaveRequestReader defines read operations for leave requests.
type LeaveRequestReader interface {
	FindLeaveRequestByID(ctx context.Context, leaveRequestID int64) (*domain.LeaveRequest, error)

	// ListUpcomingByEmployee returns the employee's requests, any status, with
	// EndDate >= asOf, ascending by StartDate.
	ListUpcomingByEmployee(ctx context.Context, employeeID string, asOf time.Time) ([]domain.LeaveRequest, error)

	// ListPendingLeaveRequests returns every pending request across all teams,
	// descending by StartDate. Used by elevated reviewers.
	ListPendingLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error)

	// ListLeaveRequestsByManager returns requests assigned to the manager,
	// descending by StartDate.
	ListLeaveRequestsByManager(ctx context.Context, managerID string) ([]domain.LeaveRequest, error)

	// HasOverlappingRequest reports whether the employee has any request, of
	// any status, whose inclusive range intersects [start, end].
	HasOverlappingRequest(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// CountApprovedTeamOverlaps counts approved requests of the team whose
	// inclusive range intersects [start, end].
	CountApprovedTeamOverlaps(ctx context.Context, teamID int64, start, end time.Time) (int, error)
}

// LeaveRequestWriter defines write operations for leave requests.
type LeaveRequestWriter interface {
	// SaveLeaveRequest inserts the request after re-checking the employee's
	// overlap constraint inside one transaction. Returns
	// apperrors.ErrDuplicate when a concurrent insert produced an overlap.
	SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) (*domain.LeaveRequest, error)

	// UpdateLeaveRequestStatus moves a Pending request to a terminal status.
	// Returns apperrors.ErrNotFound when the id is unknown and
	// apperrors.ErrDuplicate when the request is already finalized.
	UpdateLeaveRequestStatus(ctx context.Context, leaveRequestID int64, status domain.LeaveRequestStatus) error
}

// LeaveRequestRepositoryFacade combines all leave request repository interfaces.
type LeaveRequestRepositoryFacade interface {
	LeaveRequestReader
	LeaveRequestWriter
}
