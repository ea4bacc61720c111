package domain

import "time"

// Team groups employees under a single manager. ManagerID is a reference to a
// user, not a membership row; the manager does not have to be a member.
type Team struct {
	TeamID    int64  `json:"teamID" db:"team_id"`
	Name      string `json:"name" db:"name"`
	ManagerID string `json:"managerID" db:"manager_id"`
}

// TeamMember is a user's current membership in a team.
type TeamMember struct {
	TeamID   int64     `json:"teamID" db:"team_id"`
	UserID   string    `json:"userID" db:"user_id"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}
