// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cardledger/internal/domain"
	"cardledger/internal/repository"
	"cardledger/internal/util"

	"github.com/jmoiron/sqlx"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	// Methods receive a DBExecutor directly, so no *sqlx.DB is held here.
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{}
}

// CreateUser inserts a new user record using the provided DBExecutor.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (user_id, email, first_name, last_name, password)
              VALUES ($1, $2, $3, $4, $5)`
	if _, err := q.ExecContext(ctx, query, user.UserID, user.Email, user.FirstName, user.LastName, user.Password); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves the user holding the given email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT user_id, email, first_name, last_name, password FROM users WHERE email = $1`
	err := q.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// UpdateEmail sets a user's email address.
func (r *UserRepository) UpdateEmail(ctx context.Context, q repository.DBExecutor, userID, email string) (int64, error) {
	query := `UPDATE users SET email = $1 WHERE user_id = $2`
	result, err := q.ExecContext(ctx, query, email, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update email for user %s: %w", userID, err)
	}
	return rowsAffected(result, "update email")
}

// UpdatePassword sets a user's credential hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, q repository.DBExecutor, userID, passwordHash string) (int64, error) {
	query := `UPDATE users SET password = $1 WHERE user_id = $2`
	result, err := q.ExecContext(ctx, query, passwordHash, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	return rowsAffected(result, "update password")
}

// UpdateName sets the provided name fields, keeping the current value for any
// nil argument.
func (r *UserRepository) UpdateName(ctx context.Context, q repository.DBExecutor, userID string, firstName, lastName *string) (int64, error) {
	query := `UPDATE users
              SET first_name = COALESCE($1, first_name),
                  last_name  = COALESCE($2, last_name)
              WHERE user_id = $3`
	result, err := q.ExecContext(ctx, query, firstName, lastName, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update name for user %s: %w", userID, err)
	}
	return rowsAffected(result, "update name")
}

func rowsAffected(result sql.Result, op string) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected for %s: %w", op, err)
	}
	return n, nil
}
