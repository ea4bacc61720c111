package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxLeaveRequestRepository struct {
	BaseRepository
}

// newPgxLeaveRequestRepository creates a new repository for leave request data.
func newPgxLeaveRequestRepository(pool PgxPool) portsrepo.LeaveRequestRepositoryFacade {
	return &PgxLeaveRequestRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLeaveRequestRepository implements portsrepo.LeaveRequestRepositoryFacade
var _ portsrepo.LeaveRequestRepositoryFacade = (*PgxLeaveRequestRepository)(nil)

var FULL_LEAVE_REQUEST_SELECT_QUERY = `
SELECT
	lr.leave_request_id, lr.employee_id, lr.team_id, lr.start_date, lr.end_date,
	lr.status, lr.manager_id
FROM leave_requests lr
`

const overlapExistsQuery = `
	SELECT EXISTS (
		SELECT 1 FROM leave_requests
		WHERE employee_id = $1 AND start_date <= $3 AND end_date >= $2
	);
`

func (r *PgxLeaveRequestRepository) getLeaveRequests(ctx context.Context, filterQuery string, args ...any) ([]domain.LeaveRequest, error) {
	query := FULL_LEAVE_REQUEST_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query leave requests", err)
	}
	defer rows.Close()
	requests, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.LeaveRequest])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.LeaveRequest{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect leave request rows", err)
	}
	return requests, nil
}

func (r *PgxLeaveRequestRepository) FindLeaveRequestByID(ctx context.Context, leaveRequestID int64) (*domain.LeaveRequest, error) {
	requests, err := r.getLeaveRequests(ctx, `WHERE lr.leave_request_id = $1`, leaveRequestID)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &requests[0], nil
}

func (r *PgxLeaveRequestRepository) ListUpcomingByEmployee(ctx context.Context, employeeID string, asOf time.Time) ([]domain.LeaveRequest, error) {
	return r.getLeaveRequests(ctx,
		`WHERE lr.employee_id = $1 AND lr.end_date >= $2 ORDER BY lr.start_date;`,
		employeeID, asOf)
}

func (r *PgxLeaveRequestRepository) ListPendingLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	return r.getLeaveRequests(ctx,
		`WHERE lr.status = $1 ORDER BY lr.start_date DESC;`,
		domain.LeaveStatusPending)
}

func (r *PgxLeaveRequestRepository) ListLeaveRequestsByManager(ctx context.Context, managerID string) ([]domain.LeaveRequest, error) {
	return r.getLeaveRequests(ctx,
		`WHERE lr.manager_id = $1 ORDER BY lr.start_date DESC;`,
		managerID)
}

func (r *PgxLeaveRequestRepository) HasOverlappingRequest(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, overlapExistsQuery, employeeID, start, end).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check overlapping leave requests", err)
	}
	return exists, nil
}

func (r *PgxLeaveRequestRepository) CountApprovedTeamOverlaps(ctx context.Context, teamID int64, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM leave_requests
		WHERE team_id = $1 AND status = $2 AND start_date <= $4 AND end_date >= $3;
	`
	var count int
	err := r.Pool.QueryRow(ctx, query, teamID, domain.LeaveStatusApproved, start, end).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count team leave overlaps", err)
	}
	return count, nil
}

// SaveLeaveRequest inserts the request inside a transaction that serializes
// writers on the same employee and re-runs the overlap check, so two
// concurrent submissions with intersecting ranges cannot both land.
func (r *PgxLeaveRequestRepository) SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) (*domain.LeaveRequest, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, request.EmployeeID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock employee leave requests", err)
	}

	var exists bool
	err = tx.QueryRow(ctx, overlapExistsQuery, request.EmployeeID, request.StartDate, request.EndDate).Scan(&exists)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to check overlapping leave requests", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("employee already has a leave request over these dates")
	}

	query := `
		INSERT INTO leave_requests (employee_id, team_id, start_date, end_date, status, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING leave_request_id;
	`
	err = tx.QueryRow(ctx, query,
		request.EmployeeID,
		request.TeamID,
		request.StartDate,
		request.EndDate,
		request.Status,
		request.ManagerID,
	).Scan(&request.LeaveRequestID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save leave request", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &request, nil
}

// UpdateLeaveRequestStatus moves a pending request into a terminal status. The
// status guard in the WHERE clause makes a second decision lose the race
// instead of overwriting the first.
func (r *PgxLeaveRequestRepository) UpdateLeaveRequestStatus(ctx context.Context, leaveRequestID int64, status domain.LeaveRequestStatus) error {
	query := `
		UPDATE leave_requests
		SET status = $2
		WHERE leave_request_id = $1 AND status = $3;
	`
	result, err := r.Pool.Exec(ctx, query, leaveRequestID, status, domain.LeaveStatusPending)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update leave request status", err)
	}
	if result.RowsAffected() == 0 {
		var current domain.LeaveRequestStatus
		err := r.Pool.QueryRow(ctx, `SELECT status FROM leave_requests WHERE leave_request_id = $1;`, leaveRequestID).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("leave request not found")
		}
		if err != nil {
			return apperrors.NewAppError(500, "failed to read leave request status", err)
		}
		return apperrors.NewConflictError("leave request is already " + string(current))
	}
	return nil
}
