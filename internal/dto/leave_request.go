package dto

import (
	"time"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
)

// CreateLeaveRequestRequest submits a leave range. Dates are inclusive.
type CreateLeaveRequestRequest struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// DecideLeaveRequestRequest carries a reviewer's verdict.
type DecideLeaveRequestRequest struct {
	Decision string `json:"decision" binding:"required,oneof=Approve Reject"`
}

// LeaveRequestResponse is the outward representation of a leave request.
type LeaveRequestResponse struct {
	LeaveRequestID int64     `json:"leaveRequestID"`
	EmployeeID     string    `json:"employeeID"`
	TeamID         int64     `json:"teamID"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Status         string    `json:"status"`
	ManagerID      string    `json:"managerID"`
}

// ListLeaveRequestsResponse wraps a list of leave requests.
type ListLeaveRequestsResponse struct {
	LeaveRequests []LeaveRequestResponse `json:"leaveRequests"`
}

// ToLeaveRequestResponse converts a domain.LeaveRequest to its response DTO.
func ToLeaveRequestResponse(lr *domain.LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		LeaveRequestID: lr.LeaveRequestID,
		EmployeeID:     lr.EmployeeID,
		TeamID:         lr.TeamID,
		StartDate:      lr.StartDate,
		EndDate:        lr.EndDate,
		Status:         string(lr.Status),
		ManagerID:      lr.ManagerID,
	}
}

// ToListLeaveRequestsResponse converts a slice of domain.LeaveRequest.
func ToListLeaveRequestsResponse(requests []domain.LeaveRequest) ListLeaveRequestsResponse {
	responses := make([]LeaveRequestResponse, len(requests))
	for i := range requests {
		responses[i] = ToLeaveRequestResponse(&requests[i])
	}
	return ListLeaveRequestsResponse{LeaveRequests: responses}
}
