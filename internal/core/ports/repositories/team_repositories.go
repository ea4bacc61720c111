package repositories

import (
	"context"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TeamReader defines read operations for teams and memberships.
type TeamReader interface {
	FindTeamByID(ctx context.Context, teamID int64) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
	ListManagedTeams(ctx context.Context, managerID string) ([]domain.Team, error)

	// FindTeamMembership returns the user's first membership row, or
	// apperrors.ErrNotFound when the user is not on any team.
	FindTeamMembership(ctx context.Context, userID string) (*domain.TeamMember, error)

	ListTeamMemberships(ctx context.Context, userID string) ([]domain.TeamMember, error)
	ListTeamMembers(ctx context.Context, teamID int64) ([]domain.TeamMember, error)
	CountTeamMembers(ctx context.Context, teamID int64) (int, error)
}

// TeamWriter defines write operations for teams and memberships. All
// TeamMember mutations in the system go through this interface.
type TeamWriter interface {
	SaveTeam(ctx context.Context, team domain.Team) (*domain.Team, error)
	UpdateTeam(ctx context.Context, team domain.Team) error
	DeleteTeam(ctx context.Context, teamID int64) error

	AddTeamMember(ctx context.Context, member domain.TeamMember) error
	RemoveTeamMember(ctx context.Context, teamID int64, userID string) error
}

// TeamTxWriter exposes the membership write the job-application approval runs
// inside its transaction.
type TeamTxWriter interface {
	AddTeamMemberInTx(ctx context.Context, tx pgx.Tx, member domain.TeamMember) error
}

// TeamRepositoryFacade combines all team repository interfaces.
type TeamRepositoryFacade interface {
	TeamReader
	TeamWriter
}

// TeamRepositoryWithTx extends TeamRepositoryFacade with in-transaction writes.
type TeamRepositoryWithTx interface {
	TeamRepositoryFacade
	TeamTxWriter
}
