// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrMerchantNotFound = errors.New("merchant not found")
	ErrBalanceNotFound  = errors.New("no balance information for user")
	ErrDuplicateEmail   = errors.New("duplicate email")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidPeriod    = errors.New("invalid time period")
	ErrInvalidInput     = errors.New("invalid input provided")
	ErrCacheUnavailable = errors.New("balance cache unavailable")
)

// IsError reports whether err matches target in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
