package domain

import "time"

// LeaveRequestStatus is the lifecycle state of a leave request.
// Pending -> Approved | Rejected; both outcomes are terminal.
type LeaveRequestStatus string

const (
	LeaveStatusPending  LeaveRequestStatus = "Pending"
	LeaveStatusApproved LeaveRequestStatus = "Approved"
	LeaveStatusRejected LeaveRequestStatus = "Rejected"
)

// LeaveDecision is a reviewer's verdict on a pending leave request.
type LeaveDecision string

const (
	DecisionApprove LeaveDecision = "Approve"
	DecisionReject  LeaveDecision = "Reject"
)

// LeaveRequest is an employee's request to be away over an inclusive date
// range. ManagerID is a snapshot of the team's manager at submission time and
// does not follow later manager changes.
type LeaveRequest struct {
	LeaveRequestID int64              `json:"leaveRequestID" db:"leave_request_id"`
	EmployeeID     string             `json:"employeeID" db:"employee_id"`
	TeamID         int64              `json:"teamID" db:"team_id"`
	StartDate      time.Time          `json:"startDate" db:"start_date"`
	EndDate        time.Time          `json:"endDate" db:"end_date"`
	Status         LeaveRequestStatus `json:"status" db:"status"`
	ManagerID      string             `json:"managerID" db:"manager_id"`
}

// Overlaps reports whether the request's inclusive range intersects
// [start, end]. A single-day request (StartDate == EndDate) is a one-point
// range.
func (lr LeaveRequest) Overlaps(start, end time.Time) bool {
	return !lr.StartDate.After(end) && !lr.EndDate.Before(start)
}

// IsFinal reports whether the request has reached a terminal status.
func (lr LeaveRequest) IsFinal() bool {
	return lr.Status != LeaveStatusPending
}
