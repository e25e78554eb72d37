// internal/repository/transaction_repo.go
package repository

import (
	"context"
	"time"

	"cardledger/internal/domain"
)

// TransactionRepository defines read access to the transaction ledger.
// Ledger entries are never written by this service.
type TransactionRepository interface {
	// SumAmountsByOwner returns the signed sum of entry amounts grouped by
	// user, scanning the whole ledger. Used once, by cache hydration.
	SumAmountsByOwner(ctx context.Context, q DBExecutor) ([]domain.OwnerBalance, error)
	// GetByMerchant retrieves a user's entries against one merchant.
	GetByMerchant(ctx context.Context, q DBExecutor, userID, merchantID string) ([]domain.Transaction, error)
	// GetByTimeRange retrieves a user's entries with timestamps in [start, end].
	GetByTimeRange(ctx context.Context, q DBExecutor, userID string, start, end time.Time) ([]domain.Transaction, error)
	// SummarizeByMerchant computes a user's spend per merchant name.
	SummarizeByMerchant(ctx context.Context, q DBExecutor, userID string) (domain.MerchantSummary, error)
}
