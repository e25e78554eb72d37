// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"cardledger/internal/domain"
	"cardledger/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements repository.TransactionRepository for
// PostgreSQL. The ledger is read-only from this service's point of view.
type TransactionRepository struct {
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &TransactionRepository{}
}

// ownerSumRow carries one aggregate row. SUM over bigint comes back as
// NUMERIC, so it is scanned through decimal before converting to cents.
type ownerSumRow struct {
	UserID string          `db:"user_id"`
	Total  decimal.Decimal `db:"total"`
}

// SumAmountsByOwner scans the whole ledger and returns the signed sum of
// amounts per user.
func (r *TransactionRepository) SumAmountsByOwner(ctx context.Context, q repository.DBExecutor) ([]domain.OwnerBalance, error) {
	rows := []ownerSumRow{}
	query := `SELECT user_id, SUM(amount_in_cents) AS total
              FROM transactions
              GROUP BY user_id`
	if err := q.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to sum ledger amounts by owner: %w", err)
	}

	balances := make([]domain.OwnerBalance, 0, len(rows))
	for _, row := range rows {
		balances = append(balances, domain.OwnerBalance{
			UserID:       row.UserID,
			TotalInCents: row.Total.IntPart(),
		})
	}
	return balances, nil
}

// GetByMerchant retrieves a user's ledger entries against one merchant.
func (r *TransactionRepository) GetByMerchant(ctx context.Context, q repository.DBExecutor, userID, merchantID string) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT transaction_id, user_id, merchant_id, amount_in_cents, timestamp
              FROM transactions
              WHERE user_id = $1 AND merchant_id = $2
              ORDER BY timestamp DESC`
	if err := q.SelectContext(ctx, &transactions, query, userID, merchantID); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for user %s and merchant %s: %w", userID, merchantID, err)
	}
	return transactions, nil
}

// GetByTimeRange retrieves a user's ledger entries with timestamps in [start, end].
func (r *TransactionRepository) GetByTimeRange(ctx context.Context, q repository.DBExecutor, userID string, start, end time.Time) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT transaction_id, user_id, merchant_id, amount_in_cents, timestamp
              FROM transactions
              WHERE user_id = $1 AND timestamp BETWEEN $2 AND $3
              ORDER BY timestamp DESC`
	if err := q.SelectContext(ctx, &transactions, query, userID, start, end); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for user %s in period: %w", userID, err)
	}
	return transactions, nil
}

type merchantSumRow struct {
	Name  string          `db:"name"`
	Total decimal.Decimal `db:"total"`
}

// SummarizeByMerchant computes the amount "spent" at each merchant. Debits
// are negative and credits positive, so the sign is inverted to render
// amounts from the merchant's perspective. The "Bank" merchant will appear
// negative for accounts with a positive balance.
func (r *TransactionRepository) SummarizeByMerchant(ctx context.Context, q repository.DBExecutor, userID string) (domain.MerchantSummary, error) {
	rows := []merchantSumRow{}
	query := `SELECT m.name AS name, SUM(t.amount_in_cents) AS total
              FROM transactions t
              INNER JOIN merchants m ON t.merchant_id = m.merchant_id
              WHERE t.user_id = $1
              GROUP BY m.name`
	if err := q.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to summarize transactions for user %s: %w", userID, err)
	}

	summary := make(domain.MerchantSummary, len(rows))
	for _, row := range rows {
		summary[row.Name] = -row.Total.IntPart()
	}
	return summary, nil
}
