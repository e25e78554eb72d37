// internal/service/merchant_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"cardledger/internal/domain"
	"cardledger/internal/repository"
	"cardledger/internal/util"
)

// MerchantService defines merchant read logic.
type MerchantService interface {
	GetMerchant(ctx context.Context, merchantID string) (*domain.Merchant, error)
}

type merchantService struct {
	dbExecutor repository.DBExecutor
	repo       repository.MerchantRepository
}

// NewMerchantService creates a new MerchantService.
func NewMerchantService(dbExecutor repository.DBExecutor, repo repository.MerchantRepository) MerchantService {
	return &merchantService{
		dbExecutor: dbExecutor,
		repo:       repo,
	}
}

func (s *merchantService) GetMerchant(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	merchant, err := s.repo.GetMerchantByID(ctx, s.dbExecutor, merchantID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrMerchantNotFound
		}
		return nil, fmt.Errorf("get merchant: %w", err)
	}
	return merchant, nil
}
