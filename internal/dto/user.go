package dto

import (
	"time"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateUserRequest defines the data required to register a user.
type CreateUserRequest struct {
	FirstName string   `json:"firstName" binding:"required,min=2,max=50"`
	LastName  string   `json:"lastName" binding:"required,min=2,max=50"`
	Email     string   `json:"email" binding:"required,email,min=5,max=100"`
	Password  string   `json:"password" binding:"required,min=8"`
	Roles     []string `json:"roles" binding:"omitempty,dive,oneof=Admin Manager HR Recruiter Employee User"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero values.
type UpdateUserRequest struct {
	FirstName *string  `json:"firstName" binding:"omitempty,min=2,max=50"`
	LastName  *string  `json:"lastName" binding:"omitempty,min=2,max=50"`
	Email     *string  `json:"email" binding:"omitempty,email,min=5,max=100"`
	Roles     []string `json:"roles" binding:"omitempty,dive,oneof=Admin Manager HR Recruiter Employee User"`
}

// ModifyRoleRequest grants a role to a user.
type ModifyRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=Admin Manager HR Recruiter Employee User"`
}

// UpdateSalaryRequest sets a user's salary.
type UpdateSalaryRequest struct {
	Salary decimal.Decimal `json:"salary" binding:"required"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Search string `form:"search"`
	Team   string `form:"team"`
	Role   string `form:"role" binding:"omitempty,oneof=Admin Manager HR Recruiter Employee User"`
}

// UserResponse is the outward representation of a user.
type UserResponse struct {
	UserID    string          `json:"userID"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Salary    decimal.Decimal `json:"salary"`
	Roles     []string        `json:"roles,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User, roles []domain.Role) UserResponse {
	roleNames := make([]string, len(roles))
	for i, r := range roles {
		roleNames[i] = string(r)
	}
	return UserResponse{
		UserID:    user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Salary:    user.Salary,
		Roles:     roleNames,
		CreatedAt: user.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i], nil)
	}
	return ListUsersResponse{Users: userResponses}
}
