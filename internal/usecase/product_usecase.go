package usecase

import (
	"fmt"

	"github.com/enaszrekat/reuse-market-app/internal/entity"
	"github.com/enaszrekat/reuse-market-app/internal/repo/persistent"
	"github.com/enaszrekat/reuse-market-app/pkg/logger"
)

type ProductUseCase interface {
	ListProducts() ([]*entity.Product, error)
	ListUserProducts(userID int64) ([]*entity.Product, error)
}

type productUseCase struct {
	productRepo persistent.ProductRepository
	logger      *logger.Logger
}

func NewProductUseCase(productRepo persistent.ProductRepository, logger *logger.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *productUseCase) ListProducts() ([]*entity.Product, error) {
	products, err := uc.productRepo.ListApproved()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (uc *productUseCase) ListUserProducts(userID int64) ([]*entity.Product, error) {
	if userID <= 0 {
		return nil, ErrInvalidUser
	}

	products, err := uc.productRepo.ListApprovedByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for user %d: %w", userID, err)
	}
	return products, nil
}
