package dto

import (
	"time"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
)

// CreateTeamRequest creates a team under a manager.
type CreateTeamRequest struct {
	Name      string `json:"name" binding:"required,min=3,max=100"`
	ManagerID string `json:"managerID" binding:"required"`
}

// UpdateTeamRequest renames a team or re-points its manager. Re-pointing the
// manager does not retarget already-submitted leave requests.
type UpdateTeamRequest struct {
	Name      string `json:"name" binding:"required,min=3,max=100"`
	ManagerID string `json:"managerID" binding:"required"`
}

// AddTeamMemberRequest adds a user to a team.
type AddTeamMemberRequest struct {
	UserID string `json:"userID" binding:"required"`
}

// TeamResponse is the outward representation of a team.
type TeamResponse struct {
	TeamID    int64  `json:"teamID"`
	Name      string `json:"name"`
	ManagerID string `json:"managerID"`
}

// TeamMemberResponse is the outward representation of a membership.
type TeamMemberResponse struct {
	TeamID   int64     `json:"teamID"`
	UserID   string    `json:"userID"`
	JoinedAt time.Time `json:"joinedAt"`
}

// TeamDetailResponse is a team with its current members.
type TeamDetailResponse struct {
	TeamResponse
	Members []TeamMemberResponse `json:"members"`
}

// ListTeamsResponse wraps a list of teams.
type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

// ToTeamResponse converts a domain.Team to its response DTO.
func ToTeamResponse(t *domain.Team) TeamResponse {
	return TeamResponse{TeamID: t.TeamID, Name: t.Name, ManagerID: t.ManagerID}
}

// ToTeamDetailResponse converts a team and its memberships.
func ToTeamDetailResponse(t *domain.Team, members []domain.TeamMember) TeamDetailResponse {
	memberResponses := make([]TeamMemberResponse, len(members))
	for i, m := range members {
		memberResponses[i] = TeamMemberResponse{TeamID: m.TeamID, UserID: m.UserID, JoinedAt: m.JoinedAt}
	}
	return TeamDetailResponse{TeamResponse: ToTeamResponse(t), Members: memberResponses}
}

// ToListTeamsResponse converts a slice of domain.Team.
func ToListTeamsResponse(teams []domain.Team) ListTeamsResponse {
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = ToTeamResponse(&teams[i])
	}
	return ListTeamsResponse{Teams: responses}
}
