package repositories

import (
	"context"

	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserSearchFilter narrows ListUsers results. Empty fields are ignored.
type UserSearchFilter struct {
	Term     string // matches first name, last name, full name or email, case-insensitive
	TeamName string // substring match against a team the user belongs to
	Role     domain.Role
}

// UserReader defines read operations against the identity store.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail matches case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	ListUsers(ctx context.Context, filter UserSearchFilter) ([]domain.User, error)

	// ListUserRoles returns the names of all roles held by the user.
	ListUserRoles(ctx context.Context, userID string) ([]domain.Role, error)
}

// UserWriter defines write operations against the identity store.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	UpdateSalary(ctx context.Context, userID string, salary decimal.Decimal) error
	DeleteUser(ctx context.Context, userID string) error

	// AddUserRole is a no-op when the user already holds the role.
	AddUserRole(ctx context.Context, userID string, role domain.Role) error

	// RemoveUserRole is a no-op when the user does not hold the role.
	RemoveUserRole(ctx context.Context, userID string, role domain.Role) error
}

// UserTxWriter exposes the writes the job-application approval runs inside its
// transaction.
type UserTxWriter interface {
	UpdateSalaryInTx(ctx context.Context, tx pgx.Tx, userID string, salary decimal.Decimal) error
	AddUserRoleInTx(ctx context.Context, tx pgx.Tx, userID string, role domain.Role) error
	RemoveUserRoleInTx(ctx context.Context, tx pgx.Tx, userID string, role domain.Role) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// UserRepositoryWithTx extends UserRepositoryFacade with in-transaction writes.
type UserRepositoryWithTx interface {
	UserRepositoryFacade
	UserTxWriter
}
