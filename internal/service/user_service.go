// internal/service/user_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"cardledger/internal/domain"
	"cardledger/internal/repository"
	"cardledger/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// UserService defines user record mutations. Every mutation runs inside one
// database transaction so the email-uniqueness check and the write are atomic
// with respect to other concurrent mutations on the same email.
type UserService interface {
	// Create signs up a new user and returns the generated user ID.
	Create(ctx context.Context, email, firstName, lastName, password string) (string, error)
	// UpdateEmail changes a user's email. Re-submitting the user's own
	// current email succeeds (idempotent self-update).
	UpdateEmail(ctx context.Context, userID, email string) error
	// UpdateName changes the provided name fields (nil means keep current).
	UpdateName(ctx context.Context, userID string, firstName, lastName *string) error
	// UpdatePassword replaces a user's credential hash.
	UpdatePassword(ctx context.Context, userID, password string) error
}

type userService struct {
	tx   repository.TxRunner
	repo repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(tx repository.TxRunner, repo repository.UserRepository) UserService {
	return &userService{
		tx:   tx,
		repo: repo,
	}
}

// checkEmail enforces email uniqueness inside the caller's transaction.
// The change is idempotent exactly when the caller is re-submitting their own
// current email: callerID was provided, the record found for the email is the
// caller's, and its email equals the candidate. The create path passes an
// empty callerID, so it can never be idempotent.
func (s *userService) checkEmail(ctx context.Context, q repository.DBExecutor, email, callerID string) error {
	existing, err := s.repo.GetUserByEmail(ctx, q, email)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("check email: %w", err)
	}

	idempotentChange := callerID != "" && existing.UserID == callerID && existing.Email == email
	if !idempotentChange {
		return fmt.Errorf("%w: %s", util.ErrDuplicateEmail, email)
	}
	return nil
}

func (s *userService) Create(ctx context.Context, email, firstName, lastName, password string) (string, error) {
	if !util.ValidateEmail(email) {
		return "", fmt.Errorf("%w: %s", util.ErrInvalidEmail, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("create user: failed to hash password: %w", err)
	}

	user := domain.NewUser(email, firstName, lastName, string(hash))
	err = s.tx.WithinTx(ctx, func(q repository.DBExecutor) error {
		if err := s.checkEmail(ctx, q, email, ""); err != nil {
			return err
		}
		return s.repo.CreateUser(ctx, q, user)
	})
	if err != nil {
		return "", err
	}
	return user.UserID, nil
}

func (s *userService) UpdateEmail(ctx context.Context, userID, email string) error {
	if !util.ValidateEmail(email) {
		return fmt.Errorf("%w: %s", util.ErrInvalidEmail, email)
	}

	return s.tx.WithinTx(ctx, func(q repository.DBExecutor) error {
		if err := s.checkEmail(ctx, q, email, userID); err != nil {
			return err
		}
		rows, err := s.repo.UpdateEmail(ctx, q, userID, email)
		if err != nil {
			return fmt.Errorf("update email: %w", err)
		}
		if rows == 0 {
			return util.ErrUserNotFound
		}
		return nil
	})
}

func (s *userService) UpdateName(ctx context.Context, userID string, firstName, lastName *string) error {
	if firstName == nil && lastName == nil {
		return fmt.Errorf("%w: one of firstName or lastName must be provided", util.ErrInvalidInput)
	}

	return s.tx.WithinTx(ctx, func(q repository.DBExecutor) error {
		rows, err := s.repo.UpdateName(ctx, q, userID, firstName, lastName)
		if err != nil {
			return fmt.Errorf("update name: %w", err)
		}
		if rows == 0 {
			return util.ErrUserNotFound
		}
		return nil
	})
}

func (s *userService) UpdatePassword(ctx context.Context, userID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("update password: failed to hash password: %w", err)
	}

	return s.tx.WithinTx(ctx, func(q repository.DBExecutor) error {
		rows, err := s.repo.UpdatePassword(ctx, q, userID, string(hash))
		if err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if rows == 0 {
			return util.ErrUserNotFound
		}
		return nil
	})
}
