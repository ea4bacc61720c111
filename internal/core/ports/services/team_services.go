package services

import (
	"context"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	"github.com/SscSPs/hr_platform_app/internal/dto"
)

// TeamSvcFacade manages teams and is the single ownership boundary for
// TeamMember rows: every membership mutation in the system funnels through it
// (the approval workflow included).
type TeamSvcFacade interface {
	CreateTeam(ctx context.Context, req dto.CreateTeamRequest) (*domain.Team, error)
	GetTeamByID(ctx context.Context, teamID int64) (*domain.Team, error)
	GetTeamDetails(ctx context.Context, teamID int64) (*domain.Team, []domain.TeamMember, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
	ListManagedTeams(ctx context.Context, managerID string) ([]domain.Team, error)
	UpdateTeam(ctx context.Context, teamID int64, req dto.UpdateTeamRequest) error
	DeleteTeam(ctx context.Context, teamID int64) error

	AddTeamMember(ctx context.Context, teamID int64, userID string) error
	RemoveTeamMember(ctx context.Context, teamID int64, userID string) error
	ListTeamMemberships(ctx context.Context, userID string) ([]domain.TeamMember, error)

	// IsManagerOfUser reports whether managerID manages a team the target
	// user belongs to.
	IsManagerOfUser(ctx context.Context, managerID, targetUserID string) (bool, error)
}
