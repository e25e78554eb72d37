// internal/service/transaction_service_test.go
package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardledger/internal/cache"
	"cardledger/internal/domain"
	"cardledger/internal/repository"
	"cardledger/internal/util"
)

// MockTransactionRepository is a mock implementation of repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SumAmountsByOwner(ctx context.Context, q repository.DBExecutor) ([]domain.OwnerBalance, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnerBalance), args.Error(1)
}

func (m *MockTransactionRepository) GetByMerchant(ctx context.Context, q repository.DBExecutor, userID, merchantID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, q, userID, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetByTimeRange(ctx context.Context, q repository.DBExecutor, userID string, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, q, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SummarizeByMerchant(ctx context.Context, q repository.DBExecutor, userID string) (domain.MerchantSummary, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.MerchantSummary), args.Error(1)
}

func hydratedCache(t *testing.T, balances map[string]int64) *cache.BalanceCache {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := cache.Hydrate(context.Background(), logger, func(ctx context.Context) ([]domain.OwnerBalance, error) {
		owners := make([]domain.OwnerBalance, 0, len(balances))
		for id, total := range balances {
			owners = append(owners, domain.OwnerBalance{UserID: id, TotalInCents: total})
		}
		return owners, nil
	})
	return c
}

func TestAuthorizeBoundaries(t *testing.T) {
	svc := NewTransactionService(nil, new(MockTransactionRepository), hydratedCache(t, map[string]int64{
		"alice": 1000,
	}))

	tests := []struct {
		name   string
		amount int64
		want   domain.AuthorizationDecision
	}{
		{name: "amount below balance is approved", amount: 999, want: domain.DecisionApproved},
		{name: "amount exactly exhausting balance is declined", amount: 1000, want: domain.DecisionDeclined},
		{name: "amount overdrawing balance is declined", amount: 1001, want: domain.DecisionDeclined},
		{name: "zero amount against positive balance is approved", amount: 0, want: domain.DecisionApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := svc.Authorize(context.Background(), "alice", tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decision)
		})
	}
}

func TestAuthorizeUnknownUserIsNotFoundNotDeclined(t *testing.T) {
	svc := NewTransactionService(nil, new(MockTransactionRepository), hydratedCache(t, map[string]int64{
		"alice": 1000,
	}))

	decision, err := svc.Authorize(context.Background(), "stranger", 1)
	assert.ErrorIs(t, err, util.ErrBalanceNotFound)
	assert.Empty(t, decision)
}

func TestAuthorizeNegativeAmountIsRejected(t *testing.T) {
	svc := NewTransactionService(nil, new(MockTransactionRepository), hydratedCache(t, map[string]int64{
		"alice": 1000,
	}))

	_, err := svc.Authorize(context.Background(), "alice", -1)
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestAuthorizeIsPureOverTheSnapshot(t *testing.T) {
	svc := NewTransactionService(nil, new(MockTransactionRepository), hydratedCache(t, map[string]int64{
		"alice": 1000,
	}))

	// Repeated identical calls yield identical decisions; the snapshot is
	// never decremented by an approval.
	for i := 0; i < 50; i++ {
		decision, err := svc.Authorize(context.Background(), "alice", 999)
		require.NoError(t, err)
		assert.Equal(t, domain.DecisionApproved, decision)
	}

	balance, err := svc.GetBalance(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)
}

func TestGetByTimeRangeValidatesPeriod(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := NewTransactionService(nil, repo, hydratedCache(t, nil))

	_, err := svc.GetByTimeRange(context.Background(), "alice", "2020-01-02", "2020-01-01")
	assert.ErrorIs(t, err, util.ErrInvalidPeriod)

	_, err = svc.GetByTimeRange(context.Background(), "alice", "01-01-2020", "2020-02-01")
	assert.ErrorIs(t, err, util.ErrInvalidPeriod)

	repo.AssertNotCalled(t, "GetByTimeRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetByTimeRangePassesParsedDates(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := NewTransactionService(nil, repo, hydratedCache(t, nil))

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)
	expected := []domain.Transaction{{TransactionID: "t1", UserID: "alice", AmountInCents: -500}}

	repo.On("GetByTimeRange", mock.Anything, nil, "alice", start, end).Return(expected, nil)

	got, err := svc.GetByTimeRange(context.Background(), "alice", "2020-01-01", "2020-02-01")
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	repo.AssertExpectations(t)
}

func TestSummarizeReturnsRepositoryResult(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := NewTransactionService(nil, repo, hydratedCache(t, nil))

	repo.On("SummarizeByMerchant", mock.Anything, nil, "alice").Return(domain.MerchantSummary{"Coffee": 1200}, nil)

	summary, err := svc.Summarize(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), summary["Coffee"])
}
