// internal/cache/balance.go
package cache

import (
	"context"
	"fmt"
	"log/slog"

	"cardledger/internal/domain"
	"cardledger/internal/util"
)

// LoadFunc produces the ledger aggregate the cache is built from.
type LoadFunc func(ctx context.Context) ([]domain.OwnerBalance, error)

// BalanceCache holds the per-user net balance computed once from the
// transaction ledger. Hydration runs in a single goroutine and publishes its
// result exactly once by closing done; every reader shares that one
// computation. There is no refresh or invalidation path: the snapshot is the
// balance as of the hydration instant, and a hydration failure is terminal
// for this process (restart to recover).
type BalanceCache struct {
	done     chan struct{}
	balances map[string]int64
	err      error
}

// Hydrate kicks off the ledger scan and returns immediately. Callers block
// in Lookup until the scan completes.
func Hydrate(ctx context.Context, logger *slog.Logger, load LoadFunc) *BalanceCache {
	c := &BalanceCache{done: make(chan struct{})}

	go func() {
		// Fields are written before done is closed, so post-close reads
		// need no lock.
		defer close(c.done)

		totals, err := load(ctx)
		if err != nil {
			c.err = err
			logger.Error("Balance cache hydration failed", "error", err)
			return
		}

		balances := make(map[string]int64, len(totals))
		for _, t := range totals {
			balances[t.UserID] = t.TotalInCents
		}
		c.balances = balances
		logger.Info("Balance cache hydrated", "users", len(balances))
	}()

	return c
}

// Lookup returns the cached balance for ownerID, waiting for hydration to
// finish first. An owner with no ledger entries yields util.ErrBalanceNotFound,
// which is distinct from a zero balance. If hydration failed, every lookup
// returns util.ErrCacheUnavailable rather than treating the cache as empty.
func (c *BalanceCache) Lookup(ctx context.Context, ownerID string) (int64, error) {
	select {
	case <-c.done:
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	if c.err != nil {
		return 0, fmt.Errorf("%w: %v", util.ErrCacheUnavailable, c.err)
	}

	balance, ok := c.balances[ownerID]
	if !ok {
		return 0, util.ErrBalanceNotFound
	}
	return balance, nil
}
