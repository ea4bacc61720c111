package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_platform_app/internal/core/ports/services"
	"github.com/SscSPs/hr_platform_app/internal/dto"
	"github.com/SscSPs/hr_platform_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// userService is the identity-provider surface: accounts, credentials and
// role membership.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a local account. Email must be unique
// (case-insensitive). New accounts without explicit roles get the generic
// applicant role.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	_, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, req.Email)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email uniqueness", slog.String("email", req.Email))
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Salary:       decimal.Zero,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, err
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{string(domain.RoleUser)}
	}
	for _, role := range roles {
		if err := s.userRepo.AddUserRole(ctx, user.UserID, domain.Role(role)); err != nil {
			s.LogError(ctx, err, "Failed to assign role to new user",
				slog.String("user_id", user.UserID), slog.String("role", role))
			return nil, err
		}
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID))
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email, case-insensitively.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email", slog.String("email", email))
		}
		return nil, err
	}
	return user, nil
}

// ListUsers retrieves users matching the search filter.
func (s *userService) ListUsers(ctx context.Context, filter portsrepo.UserSearchFilter) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// UpdateUser edits names, email and role set. Snapshot fields on existing
// leave requests and applications are not rewritten.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user", slog.String("user_id", userID))
		}
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindUserByEmail(ctx, *req.Email); err == nil {
			return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, *req.Email)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	if req.Roles != nil {
		if err := s.syncRoles(ctx, userID, req.Roles); err != nil {
			return nil, err
		}
	}

	s.LogInfo(ctx, "User updated", slog.String("user_id", userID))
	return user, nil
}

// syncRoles reconciles the user's role set against the desired list.
func (s *userService) syncRoles(ctx context.Context, userID string, desired []string) error {
	current, err := s.userRepo.ListUserRoles(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list current roles", slog.String("user_id", userID))
		return err
	}

	want := make(map[domain.Role]bool, len(desired))
	for _, r := range desired {
		want[domain.Role(r)] = true
	}
	have := make(map[domain.Role]bool, len(current))
	for _, r := range current {
		have[r] = true
	}

	for role := range want {
		if !have[role] {
			if err := s.userRepo.AddUserRole(ctx, userID, role); err != nil {
				return err
			}
		}
	}
	for role := range have {
		if !want[role] {
			if err := s.userRepo.RemoveUserRole(ctx, userID, role); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeleteUser removes an account.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

// GetUserRoles lists the user's role names.
func (s *userService) GetUserRoles(ctx context.Context, userID string) ([]domain.Role, error) {
	roles, err := s.userRepo.ListUserRoles(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list user roles", slog.String("user_id", userID))
		return nil, err
	}
	if roles == nil {
		return []domain.Role{}, nil
	}
	return roles, nil
}

// AddRoleToUser grants a named role; granting an already-held role is a no-op.
func (s *userService) AddRoleToUser(ctx context.Context, userID string, role domain.Role) error {
	return s.userRepo.AddUserRole(ctx, userID, role)
}

// RemoveRoleFromUser revokes a named role; revoking an unheld role is a no-op.
func (s *userService) RemoveRoleFromUser(ctx context.Context, userID string, role domain.Role) error {
	return s.userRepo.RemoveUserRole(ctx, userID, role)
}

// UpdateSalary sets a user's salary.
func (s *userService) UpdateSalary(ctx context.Context, userID string, salary decimal.Decimal) error {
	if salary.IsNegative() {
		return fmt.Errorf("%w: salary cannot be negative", apperrors.ErrValidation)
	}
	if err := s.userRepo.UpdateSalary(ctx, userID, salary); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update salary", slog.String("user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "Salary updated", slog.String("user_id", userID))
	return nil
}

// VerifyCredentials authenticates a local account. Both an unknown email and
// a wrong password surface as ErrForbidden so callers cannot probe accounts.
func (s *userService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}
