package services

import (
	"context"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	"github.com/SscSPs/hr_platform_app/internal/dto"
	"github.com/shopspring/decimal"
)

// UserSvcFacade is the identity-provider surface: user lookup, role
// membership and administrative edits.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, filter portsrepo.UserSearchFilter) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error

	GetUserRoles(ctx context.Context, userID string) ([]domain.Role, error)
	AddRoleToUser(ctx context.Context, userID string, role domain.Role) error
	RemoveRoleFromUser(ctx context.Context, userID string, role domain.Role) error

	UpdateSalary(ctx context.Context, userID string, salary decimal.Decimal) error

	// VerifyCredentials authenticates a local account by email and password.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error)
}
