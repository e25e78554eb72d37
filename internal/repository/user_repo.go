// internal/repository/user_repo.go
package repository

import (
	"context"

	"cardledger/internal/domain"
)

// UserRepository defines the interface for user record operations. Every
// method takes a DBExecutor so mutations can run inside a caller-owned
// transaction.
type UserRepository interface {
	// CreateUser inserts a new user record.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByEmail retrieves the user holding the given email, or
	// util.ErrNotFound when no record matches.
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
	// UpdateEmail sets a user's email and returns the number of rows affected.
	UpdateEmail(ctx context.Context, q DBExecutor, userID, email string) (int64, error)
	// UpdatePassword sets a user's credential hash and returns the number of rows affected.
	UpdatePassword(ctx context.Context, q DBExecutor, userID, passwordHash string) (int64, error)
	// UpdateName sets the provided name fields (nil means keep current) and
	// returns the number of rows affected.
	UpdateName(ctx context.Context, q DBExecutor, userID string, firstName, lastName *string) (int64, error)
}
