package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxTeamRepository struct {
	BaseRepository
}

// newPgxTeamRepository creates a new repository for team and membership data.
func newPgxTeamRepository(pool PgxPool) portsrepo.TeamRepositoryWithTx {
	return &PgxTeamRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTeamRepository implements portsrepo.TeamRepositoryWithTx
var _ portsrepo.TeamRepositoryWithTx = (*PgxTeamRepository)(nil)

var FULL_TEAM_SELECT_QUERY = `
SELECT
	t.team_id, t.name, t.manager_id
FROM teams t
`

func (r *PgxTeamRepository) getTeams(ctx context.Context, filterQuery string, args ...any) ([]domain.Team, error) {
	query := FULL_TEAM_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query teams", err)
	}
	defer rows.Close()
	teams, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Team])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Team{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect team rows", err)
	}
	return teams, nil
}

func (r *PgxTeamRepository) FindTeamByID(ctx context.Context, teamID int64) (*domain.Team, error) {
	teams, err := r.getTeams(ctx, `WHERE t.team_id = $1`, teamID)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &teams[0], nil
}

func (r *PgxTeamRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return r.getTeams(ctx, `ORDER BY t.name;`)
}

func (r *PgxTeamRepository) ListManagedTeams(ctx context.Context, managerID string) ([]domain.Team, error) {
	return r.getTeams(ctx, `WHERE t.manager_id = $1 ORDER BY t.name;`, managerID)
}

func (r *PgxTeamRepository) getTeamMembers(ctx context.Context, filterQuery string, args ...any) ([]domain.TeamMember, error) {
	query := `SELECT tm.team_id, tm.user_id, tm.joined_at FROM team_members tm ` + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query team members", err)
	}
	defer rows.Close()
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.TeamMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.TeamMember{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect team member rows", err)
	}
	return members, nil
}

func (r *PgxTeamRepository) FindTeamMembership(ctx context.Context, userID string) (*domain.TeamMember, error) {
	members, err := r.getTeamMembers(ctx, `WHERE tm.user_id = $1 ORDER BY tm.joined_at LIMIT 1;`, userID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &members[0], nil
}

func (r *PgxTeamRepository) ListTeamMemberships(ctx context.Context, userID string) ([]domain.TeamMember, error) {
	return r.getTeamMembers(ctx, `WHERE tm.user_id = $1 ORDER BY tm.joined_at;`, userID)
}

func (r *PgxTeamRepository) ListTeamMembers(ctx context.Context, teamID int64) ([]domain.TeamMember, error) {
	return r.getTeamMembers(ctx, `WHERE tm.team_id = $1 ORDER BY tm.joined_at;`, teamID)
}

func (r *PgxTeamRepository) CountTeamMembers(ctx context.Context, teamID int64) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM team_members WHERE team_id = $1;`, teamID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count team members", err)
	}
	return count, nil
}

func (r *PgxTeamRepository) SaveTeam(ctx context.Context, team domain.Team) (*domain.Team, error) {
	query := `
		INSERT INTO teams (name, manager_id)
		VALUES ($1, $2)
		RETURNING team_id;
	`
	err := r.Pool.QueryRow(ctx, query, team.Name, team.ManagerID).Scan(&team.TeamID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("team " + team.Name + " already exists")
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewValidationFailedError("manager " + team.ManagerID + " does not exist")
		}
		return nil, apperrors.NewAppError(500, "failed to save team "+team.Name, err)
	}
	return &team, nil
}

func (r *PgxTeamRepository) UpdateTeam(ctx context.Context, team domain.Team) error {
	query := `
		UPDATE teams
		SET name = $2, manager_id = $3
		WHERE team_id = $1;
	`
	result, err := r.Pool.Exec(ctx, query, team.TeamID, team.Name, team.ManagerID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("team " + team.Name + " already exists")
		}
		if isForeignKeyViolation(err) {
			return apperrors.NewValidationFailedError("manager " + team.ManagerID + " does not exist")
		}
		return apperrors.NewAppError(500, "failed to update team", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team not found")
	}
	return nil
}

func (r *PgxTeamRepository) DeleteTeam(ctx context.Context, teamID int64) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM teams WHERE team_id = $1;`, teamID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete team", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team not found")
	}
	return nil
}

const addTeamMemberQuery = `
	INSERT INTO team_members (team_id, user_id, joined_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (team_id, user_id) DO NOTHING;
`

func (r *PgxTeamRepository) AddTeamMember(ctx context.Context, member domain.TeamMember) error {
	_, err := r.Pool.Exec(ctx, addTeamMemberQuery, member.TeamID, member.UserID, member.JoinedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add user "+member.UserID+" to team", err)
	}
	return nil
}

func (r *PgxTeamRepository) RemoveTeamMember(ctx context.Context, teamID int64, userID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2;`, teamID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove user "+userID+" from team", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("membership not found")
	}
	return nil
}

func (r *PgxTeamRepository) AddTeamMemberInTx(ctx context.Context, tx pgx.Tx, member domain.TeamMember) error {
	_, err := tx.Exec(ctx, addTeamMemberQuery, member.TeamID, member.UserID, member.JoinedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add user "+member.UserID+" to team", err)
	}
	return nil
}
