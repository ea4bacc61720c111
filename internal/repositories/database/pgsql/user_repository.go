package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/hr_platform_app/internal/apperrors"
	"github.com/SscSPs/hr_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_platform_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user and role data.
func newPgxUserRepository(pool PgxPool) portsrepo.UserRepositoryWithTx {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryWithTx
var _ portsrepo.UserRepositoryWithTx = (*PgxUserRepository)(nil)

var FULL_USER_SELECT_QUERY = `
SELECT
	u.user_id, u.first_name, u.last_name, u.email, u.password_hash, u.salary, u.created_at
FROM users u
`

func (r *PgxUserRepository) getUsers(ctx context.Context, filterQuery string, args ...any) ([]domain.User, error) {
	query := FULL_USER_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.User{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect user rows", err)
	}
	return users, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE LOWER(u.email) = LOWER($1)`, email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context, filter portsrepo.UserSearchFilter) ([]domain.User, error) {
	filterQuery := `WHERE 1=1`
	var args []any

	if filter.Term != "" {
		args = append(args, "%"+filter.Term+"%")
		p := "$" + strconv.Itoa(len(args))
		filterQuery += ` AND (u.first_name ILIKE ` + p +
			` OR u.last_name ILIKE ` + p +
			` OR u.first_name || ' ' || u.last_name ILIKE ` + p +
			` OR u.email ILIKE ` + p + `)`
	}
	if filter.TeamName != "" {
		args = append(args, "%"+filter.TeamName+"%")
		p := "$" + strconv.Itoa(len(args))
		filterQuery += ` AND EXISTS (
			SELECT 1 FROM team_members tm
			JOIN teams t ON t.team_id = tm.team_id
			WHERE tm.user_id = u.user_id AND t.name ILIKE ` + p + `)`
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		p := "$" + strconv.Itoa(len(args))
		filterQuery += ` AND EXISTS (
			SELECT 1 FROM user_roles ur
			JOIN roles r ON r.role_id = ur.role_id
			WHERE ur.user_id = u.user_id AND r.name = ` + p + `)`
	}
	filterQuery += ` ORDER BY u.first_name, u.last_name;`

	return r.getUsers(ctx, filterQuery, args...)
}

func (r *PgxUserRepository) ListUserRoles(ctx context.Context, userID string) ([]domain.Role, error) {
	query := `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.role_id
		WHERE ur.user_id = $1
		ORDER BY r.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query roles for user "+userID, err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan role row", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating role rows", err)
	}
	return roles, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, first_name, last_name, email, password_hash, salary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Salary,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("email " + user.Email + " is already registered")
		}
		return apperrors.NewAppError(500, "failed to save user "+user.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4
		WHERE user_id = $1;
	`
	result, err := r.Pool.Exec(ctx, query, user.UserID, user.FirstName, user.LastName, user.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("email " + user.Email + " is already registered")
		}
		return apperrors.NewAppError(500, "failed to update user "+user.UserID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + user.UserID + " not found")
	}
	return nil
}

func (r *PgxUserRepository) UpdateSalary(ctx context.Context, userID string, salary decimal.Decimal) error {
	result, err := r.Pool.Exec(ctx, `UPDATE users SET salary = $2 WHERE user_id = $1;`, userID, salary)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update salary for user "+userID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + userID + " not found")
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete user "+userID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + userID + " not found")
	}
	return nil
}

const addUserRoleQuery = `
	INSERT INTO user_roles (user_id, role_id)
	SELECT $1, r.role_id FROM roles r WHERE r.name = $2
	ON CONFLICT (user_id, role_id) DO NOTHING;
`

const removeUserRoleQuery = `
	DELETE FROM user_roles
	WHERE user_id = $1
	AND role_id = (SELECT role_id FROM roles WHERE name = $2);
`

func (r *PgxUserRepository) AddUserRole(ctx context.Context, userID string, role domain.Role) error {
	_, err := r.Pool.Exec(ctx, addUserRoleQuery, userID, role)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add role "+string(role)+" to user "+userID, err)
	}
	return nil
}

func (r *PgxUserRepository) RemoveUserRole(ctx context.Context, userID string, role domain.Role) error {
	_, err := r.Pool.Exec(ctx, removeUserRoleQuery, userID, role)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove role "+string(role)+" from user "+userID, err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateSalaryInTx(ctx context.Context, tx pgx.Tx, userID string, salary decimal.Decimal) error {
	result, err := tx.Exec(ctx, `UPDATE users SET salary = $2 WHERE user_id = $1;`, userID, salary)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update salary for user "+userID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + userID + " not found")
	}
	return nil
}

func (r *PgxUserRepository) AddUserRoleInTx(ctx context.Context, tx pgx.Tx, userID string, role domain.Role) error {
	_, err := tx.Exec(ctx, addUserRoleQuery, userID, role)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add role "+string(role)+" to user "+userID, err)
	}
	return nil
}

func (r *PgxUserRepository) RemoveUserRoleInTx(ctx context.Context, tx pgx.Tx, userID string, role domain.Role) error {
	_, err := tx.Exec(ctx, removeUserRoleQuery, userID, role)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove role "+string(role)+" from user "+userID, err)
	}
	return nil
}
