// internal/repository/merchant_repo.go
package repository

import (
	"context"

	"cardledger/internal/domain"
)

// MerchantRepository defines read access to merchant records.
type MerchantRepository interface {
	// GetMerchantByID retrieves a merchant, or util.ErrNotFound when absent.
	GetMerchantByID(ctx context.Context, q DBExecutor, merchantID string) (*domain.Merchant, error)
}
