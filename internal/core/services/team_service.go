package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
	"github.com/SscSPs/hr_platform_app/internal/dto"
)

// teamService owns teams and team membership. It is the only writer of
// TeamMember rows outside the approval transaction, which reuses the same
// repository write.
type teamService struct {
	BaseService
	teamRepo portsrepo.TeamRepositoryFacade
	userRepo portsrepo.UserReader
}

// NewTeamService creates a new team service.
func NewTeamService(teamRepo portsrepo.TeamRepositoryFacade, userRepo portsrepo.UserReader) portssvc.TeamSvcFacade {
	return &teamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

var _ portssvc.TeamSvcFacade = (*teamService)(nil)

// CreateTeam creates a team under an existing manager.
func (s *teamService) CreateTeam(ctx context.Context, req dto.CreateTeamRequest) (*domain.Team, error) {
	if _, err := s.userRepo.FindUserByID(ctx, req.ManagerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve manager", slog.String("manager_id", req.ManagerID))
		}
		return nil, err
	}

	team := domain.Team{
		Name:      req.Name,
		ManagerID: req.ManagerID,
	}

	saved, err := s.teamRepo.SaveTeam(ctx, team)
	if err != nil {
		s.LogError(ctx, err, "Failed to save team", slog.String("team_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Team created", slog.Int64("team_id", saved.TeamID), slog.String("manager_id", saved.ManagerID))
	return saved, nil
}

// GetTeamByID retrieves a team by its ID.
func (s *teamService) GetTeamByID(ctx context.Context, teamID int64) (*domain.Team, error) {
	team, err := s.teamRepo.FindTeamByID(ctx, teamID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find team", slog.Int64("team_id", teamID))
		}
		return nil, err
	}
	return team, nil
}

// GetTeamDetails retrieves a team with its current members.
func (s *teamService) GetTeamDetails(ctx context.Context, teamID int64) (*domain.Team, []domain.TeamMember, error) {
	team, err := s.teamRepo.FindTeamByID(ctx, teamID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find team", slog.Int64("team_id", teamID))
		}
		return nil, nil, err
	}

	members, err := s.teamRepo.ListTeamMembers(ctx, teamID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list team members", slog.Int64("team_id", teamID))
		return nil, nil, err
	}
	if members == nil {
		members = []domain.TeamMember{}
	}
	return team, members, nil
}

// ListTeams retrieves all teams.
func (s *teamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.teamRepo.ListTeams(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list teams")
		return nil, err
	}
	if teams == nil {
		return []domain.Team{}, nil
	}
	return teams, nil
}

// ListManagedTeams retrieves the teams managed by the given user.
func (s *teamService) ListManagedTeams(ctx context.Context, managerID string) ([]domain.Team, error) {
	teams, err := s.teamRepo.ListManagedTeams(ctx, managerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list managed teams", slog.String("manager_id", managerID))
		return nil, err
	}
	if teams == nil {
		return []domain.Team{}, nil
	}
	return teams, nil
}

// UpdateTeam renames a team or re-points its manager. Pending leave requests
// keep their snapshotted manager.
func (s *teamService) UpdateTeam(ctx context.Context, teamID int64, req dto.UpdateTeamRequest) error {
	team, err := s.teamRepo.FindTeamByID(ctx, teamID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find team", slog.Int64("team_id", teamID))
		}
		return err
	}

	if req.ManagerID != team.ManagerID {
		if _, err := s.userRepo.FindUserByID(ctx, req.ManagerID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to resolve new manager", slog.String("manager_id", req.ManagerID))
			}
			return err
		}
	}

	team.Name = req.Name
	team.ManagerID = req.ManagerID

	if err := s.teamRepo.UpdateTeam(ctx, *team); err != nil {
		s.LogError(ctx, err, "Failed to update team", slog.Int64("team_id", teamID))
		return err
	}

	s.LogInfo(ctx, "Team updated", slog.Int64("team_id", teamID))
	return nil
}

// DeleteTeam removes a team.
func (s *teamService) DeleteTeam(ctx context.Context, teamID int64) error {
	if err := s.teamRepo.DeleteTeam(ctx, teamID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete team", slog.Int64("team_id", teamID))
		}
		return err
	}
	s.LogInfo(ctx, "Team deleted", slog.Int64("team_id", teamID))
	return nil
}

// AddTeamMember adds a user to a team.
func (s *teamService) AddTeamMember(ctx context.Context, teamID int64, userID string) error {
	if _, err := s.teamRepo.FindTeamByID(ctx, teamID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}

	member := domain.TeamMember{
		TeamID:   teamID,
		UserID:   userID,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.teamRepo.AddTeamMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to add team member", slog.Int64("team_id", teamID), slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "Team member added", slog.Int64("team_id", teamID), slog.String("user_id", userID))
	return nil
}

// RemoveTeamMember removes a user from a team.
func (s *teamService) RemoveTeamMember(ctx context.Context, teamID int64, userID string) error {
	if err := s.teamRepo.RemoveTeamMember(ctx, teamID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to remove team member", slog.Int64("team_id", teamID), slog.String("user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "Team member removed", slog.Int64("team_id", teamID), slog.String("user_id", userID))
	return nil
}

// ListTeamMemberships retrieves all teams the user belongs to.
func (s *teamService) ListTeamMemberships(ctx context.Context, userID string) ([]domain.TeamMember, error) {
	memberships, err := s.teamRepo.ListTeamMemberships(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list team memberships", slog.String("user_id", userID))
		return nil, err
	}
	if memberships == nil {
		return []domain.TeamMember{}, nil
	}
	return memberships, nil
}

// IsManagerOfUser reports whether managerID manages any team the target user
// belongs to.
func (s *teamService) IsManagerOfUser(ctx context.Context, managerID, targetUserID string) (bool, error) {
	teams, err := s.teamRepo.ListManagedTeams(ctx, managerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list managed teams", slog.String("manager_id", managerID))
		return false, err
	}

	memberships, err := s.teamRepo.ListTeamMemberships(ctx, targetUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list target memberships", slog.String("user_id", targetUserID))
		return false, err
	}

	for _, team := range teams {
		for _, m := range memberships {
			if m.TeamID == team.TeamID {
				return true, nil
			}
		}
	}
	return false, nil
}
