package services

import (
	"context"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
)

// LeaveRequestSvcFacade is the leave-request workflow boundary. Caller
// identity and elevation are explicit parameters; the service never reads an
// ambient principal.
type LeaveRequestSvcFacade interface {
	// SubmitLeaveRequest validates and persists a new request for the
	// employee. The range is inclusive; start == end is a one-day leave.
	SubmitLeaveRequest(ctx context.Context, employeeID string, startDate, endDate time.Time) (*domain.LeaveRequest, error)

	// ListUpcomingLeaveRequests returns the employee's requests, any status,
	// whose end date has not passed asOf, ascending by start date.
	ListUpcomingLeaveRequests(ctx context.Context, employeeID string, asOf time.Time) ([]domain.LeaveRequest, error)

	// ListLeaveRequestsForReview returns the reviewer's queue: all pending
	// requests for an elevated reviewer, otherwise the requests assigned to
	// the reviewer as manager. Descending by start date.
	ListLeaveRequestsForReview(ctx context.Context, reviewerID string, elevated bool) ([]domain.LeaveRequest, error)

	// DecideLeaveRequest applies a terminal Approve/Reject transition.
	DecideLeaveRequest(ctx context.Context, leaveRequestID int64, reviewerID string, elevated bool, decision domain.LeaveDecision) error
}
