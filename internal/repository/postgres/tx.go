// internal/repository/postgres/tx.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cardledger/internal/repository"

	"github.com/jmoiron/sqlx"
)

// TxManager implements repository.TxRunner over a *sqlx.DB. The database
// runs at read committed; a unique index on users.email backstops the
// in-transaction uniqueness check against commits racing past each other.
type TxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTx runs fn inside a single database transaction. An error from fn
// rolls the transaction back and is returned unchanged, so sentinel errors
// survive for the caller to inspect.
func (m *TxManager) WithinTx(ctx context.Context, fn func(q repository.DBExecutor) error) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rollback failed: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
