// internal/service/transaction_service.go
package service

import (
	"context"
	"fmt"

	"cardledger/internal/cache"
	"cardledger/internal/domain"
	"cardledger/internal/repository"
	"cardledger/internal/util"
)

// TransactionService defines ledger read and spend-authorization logic.
type TransactionService interface {
	// Authorize decides whether a proposed debit of amountInCents against the
	// user's cached balance is approved. It never writes: the snapshot is
	// advisory, and the proposed transaction is not persisted.
	Authorize(ctx context.Context, userID string, amountInCents int64) (domain.AuthorizationDecision, error)
	// GetBalance returns the user's cached net balance.
	GetBalance(ctx context.Context, userID string) (int64, error)
	// GetByMerchant returns the user's ledger entries against one merchant.
	GetByMerchant(ctx context.Context, userID, merchantID string) ([]domain.Transaction, error)
	// GetByTimeRange returns the user's ledger entries between two yyyy-MM-dd dates.
	GetByTimeRange(ctx context.Context, userID, start, end string) ([]domain.Transaction, error)
	// Summarize returns the user's spend per merchant name.
	Summarize(ctx context.Context, userID string) (domain.MerchantSummary, error)
}

type transactionService struct {
	dbExecutor repository.DBExecutor
	repo       repository.TransactionRepository
	balances   *cache.BalanceCache
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	dbExecutor repository.DBExecutor,
	repo repository.TransactionRepository,
	balances *cache.BalanceCache,
) TransactionService {
	return &transactionService{
		dbExecutor: dbExecutor,
		repo:       repo,
		balances:   balances,
	}
}

// Authorize is a pure decision over the balance snapshot: approved iff the
// remaining balance after the debit would be strictly positive. A debit that
// exactly exhausts the balance is declined. An unknown user is a not-found
// error, not a decline.
func (s *transactionService) Authorize(ctx context.Context, userID string, amountInCents int64) (domain.AuthorizationDecision, error) {
	if amountInCents < 0 {
		return "", fmt.Errorf("%w: amount must be a non-negative number of cents", util.ErrInvalidInput)
	}

	balance, err := s.balances.Lookup(ctx, userID)
	if err != nil {
		return "", err
	}

	if balance-amountInCents > 0 {
		return domain.DecisionApproved, nil
	}
	return domain.DecisionDeclined, nil
}

func (s *transactionService) GetBalance(ctx context.Context, userID string) (int64, error) {
	return s.balances.Lookup(ctx, userID)
}

func (s *transactionService) GetByMerchant(ctx context.Context, userID, merchantID string) ([]domain.Transaction, error) {
	transactions, err := s.repo.GetByMerchant(ctx, s.dbExecutor, userID, merchantID)
	if err != nil {
		return nil, fmt.Errorf("get by merchant: %w", err)
	}
	return transactions, nil
}

func (s *transactionService) GetByTimeRange(ctx context.Context, userID, start, end string) ([]domain.Transaction, error) {
	startDate, endDate, err := util.ValidatePeriod(start, end)
	if err != nil {
		return nil, err
	}

	transactions, err := s.repo.GetByTimeRange(ctx, s.dbExecutor, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("get by time range: %w", err)
	}
	return transactions, nil
}

func (s *transactionService) Summarize(ctx context.Context, userID string) (domain.MerchantSummary, error) {
	summary, err := s.repo.SummarizeByMerchant(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	return summary, nil
}
