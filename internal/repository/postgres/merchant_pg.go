// internal/repository/postgres/merchant_pg.go
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

// MerchantRepository implements repository.MerchantRepository for PostgreSQL.
type MerchantRepository struct {
}

// NewMerchantRepository creates a new MerchantRepository.
func NewMerchantRepository(db *sqlx.DB) repository.MerchantRepository {
	return &MerchantRepository{}
}

// GetMerchantByID retrieves a merchant by its ID.
func (r *MerchantRepository) GetMerchantByID(ctx context.Context, q repository.DBExecutor, merchantID string) (*domain.Merchant, error) {
	var merchant domain.Merchant
	query := `SELECT merchant_id, name, latitude, longitude, address FROM merchants WHERE merchant_id = $1`
	err := q.GetContext(ctx, &merchant, query, merchantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get merchant %s: %w", merchantID, err)
	}
	return &merchant, nil
}
