package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
)

var (
	ErrNotOnTeam            = errors.New("employee is not a member of any team")
	ErrOverlappingRequest   = errors.New("leave request overlaps an existing request")
	ErrTeamCapacityExceeded = errors.New("team leave capacity exceeded for the requested dates")
	ErrRequestFinalized     = errors.New("leave request has already been finalized")
)

// teamCapacityRatio is the fraction of a team allowed to be on approved leave
// over any date range before further submissions are rejected.
const teamCapacityRatio = 0.05

// leaveRequestService implements the leave-request workflow.
type leaveRequestService struct {
	BaseService
	leaveRepo           portsrepo.LeaveRequestRepositoryFacade
	teamRepo            portsrepo.TeamReader
	capacityGuardActive bool
}

// NewLeaveRequestService creates a new leave request service. The team
// capacity guard is a configurable policy; pass false to disable it.
func NewLeaveRequestService(leaveRepo portsrepo.LeaveRequestRepositoryFacade, teamRepo portsrepo.TeamReader, capacityGuardActive bool) portssvc.LeaveRequestSvcFacade {
	return &leaveRequestService{
		leaveRepo:           leaveRepo,
		teamRepo:            teamRepo,
		capacityGuardActive: capacityGuardActive,
	}
}

var _ portssvc.LeaveRequestSvcFacade = (*leaveRequestService)(nil)

// SubmitLeaveRequest validates and persists a new leave request.
// The personal overlap check counts requests of every status; the capacity
// guard counts approved requests only.
func (s *leaveRequestService) SubmitLeaveRequest(ctx context.Context, employeeID string, startDate, endDate time.Time) (*domain.LeaveRequest, error) {
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date cannot be before start date", apperrors.ErrValidation)
	}

	membership, err := s.teamRepo.FindTeamMembership(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNotOnTeam
		}
		s.LogError(ctx, err, "Failed to resolve team membership", slog.String("employee_id", employeeID))
		return nil, err
	}

	overlaps, err := s.leaveRepo.HasOverlappingRequest(ctx, employeeID, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to check overlapping requests", slog.String("employee_id", employeeID))
		return nil, err
	}
	if overlaps {
		return nil, fmt.Errorf("%w: already requested leave between %s and %s",
			ErrOverlappingRequest, startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))
	}

	if s.capacityGuardActive {
		if err := s.checkTeamCapacity(ctx, membership.TeamID, startDate, endDate); err != nil {
			return nil, err
		}
	}

	team, err := s.teamRepo.FindTeamByID(ctx, membership.TeamID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load team for submission", slog.Int64("team_id", membership.TeamID))
		return nil, err
	}

	request := domain.LeaveRequest{
		EmployeeID: employeeID,
		TeamID:     membership.TeamID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     domain.LeaveStatusPending,
		// Snapshot of the current manager; later manager changes do not
		// retarget this request.
		ManagerID: team.ManagerID,
	}

	saved, err := s.leaveRepo.SaveLeaveRequest(ctx, request)
	if err != nil {
		// The repository re-checks the overlap inside its transaction; a
		// concurrent submission surfaces here as a conflict.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: already requested leave between %s and %s",
				ErrOverlappingRequest, startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))
		}
		s.LogError(ctx, err, "Failed to save leave request", slog.String("employee_id", employeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Leave request submitted",
		slog.Int64("leave_request_id", saved.LeaveRequestID),
		slog.String("employee_id", employeeID),
		slog.String("manager_id", saved.ManagerID))
	return saved, nil
}

// checkTeamCapacity rejects the range when the team already has
// ceil(teamSize * teamCapacityRatio) approved requests overlapping it.
// The ceiling makes the threshold 1 for any team of up to 20 members, so on
// small teams a single approved overlap blocks further requests for those
// dates. That is the intended policy, not an off-by-one.
func (s *leaveRequestService) checkTeamCapacity(ctx context.Context, teamID int64, startDate, endDate time.Time) error {
	teamSize, err := s.teamRepo.CountTeamMembers(ctx, teamID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count team members", slog.Int64("team_id", teamID))
		return err
	}

	approved, err := s.leaveRepo.CountApprovedTeamOverlaps(ctx, teamID, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to count approved team overlaps", slog.Int64("team_id", teamID))
		return err
	}

	threshold := int(math.Ceil(float64(teamSize) * teamCapacityRatio))
	if approved >= threshold {
		return fmt.Errorf("%w: %d of %d team members already approved for overlapping leave",
			ErrTeamCapacityExceeded, approved, teamSize)
	}
	return nil
}

// ListUpcomingLeaveRequests returns the employee's requests, any status, whose
// end date has not passed asOf, ascending by start date.
func (s *leaveRequestService) ListUpcomingLeaveRequests(ctx context.Context, employeeID string, asOf time.Time) ([]domain.LeaveRequest, error) {
	requests, err := s.leaveRepo.ListUpcomingByEmployee(ctx, employeeID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to list upcoming leave requests", slog.String("employee_id", employeeID))
		return nil, err
	}
	if requests == nil {
		return []domain.LeaveRequest{}, nil
	}
	return requests, nil
}

// ListLeaveRequestsForReview returns the reviewer's queue. An elevated
// reviewer sees every pending request; a manager sees only requests assigned
// to them. An empty reviewer without elevation resolves to an empty result.
func (s *leaveRequestService) ListLeaveRequestsForReview(ctx context.Context, reviewerID string, elevated bool) ([]domain.LeaveRequest, error) {
	if elevated {
		requests, err := s.leaveRepo.ListPendingLeaveRequests(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to list pending leave requests")
			return nil, err
		}
		return requests, nil
	}

	if reviewerID == "" {
		return []domain.LeaveRequest{}, nil
	}

	requests, err := s.leaveRepo.ListLeaveRequestsByManager(ctx, reviewerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leave requests for manager", slog.String("manager_id", reviewerID))
		return nil, err
	}
	if requests == nil {
		return []domain.LeaveRequest{}, nil
	}
	return requests, nil
}

// DecideLeaveRequest applies a terminal Approve/Reject transition. Approved
// and Rejected are terminal; a second decision fails without changing state.
func (s *leaveRequestService) DecideLeaveRequest(ctx context.Context, leaveRequestID int64, reviewerID string, elevated bool, decision domain.LeaveDecision) error {
	var status domain.LeaveRequestStatus
	switch decision {
	case domain.DecisionApprove:
		status = domain.LeaveStatusApproved
	case domain.DecisionReject:
		status = domain.LeaveStatusRejected
	default:
		return fmt.Errorf("%w: unknown decision %q", apperrors.ErrValidation, decision)
	}

	request, err := s.leaveRepo.FindLeaveRequestByID(ctx, leaveRequestID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find leave request", slog.Int64("leave_request_id", leaveRequestID))
		}
		return err
	}

	if !elevated && request.ManagerID != reviewerID {
		s.LogWarn(ctx, "Reviewer is not the assigned manager",
			slog.Int64("leave_request_id", leaveRequestID),
			slog.String("reviewer_id", reviewerID))
		return apperrors.ErrForbidden
	}

	if request.IsFinal() {
		return fmt.Errorf("%w: leave request %d is already %s", ErrRequestFinalized, leaveRequestID, request.Status)
	}

	if err := s.leaveRepo.UpdateLeaveRequestStatus(ctx, leaveRequestID, status); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race against another reviewer; the request stays as
			// the first decision left it.
			return fmt.Errorf("%w: leave request %d", ErrRequestFinalized, leaveRequestID)
		}
		s.LogError(ctx, err, "Failed to update leave request status", slog.Int64("leave_request_id", leaveRequestID))
		return err
	}

	s.LogInfo(ctx, "Leave request decided",
		slog.Int64("leave_request_id", leaveRequestID),
		slog.String("status", string(status)),
		slog.String("reviewer_id", reviewerID))
	return nil
}
