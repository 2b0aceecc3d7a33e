package cloudz

import (
	"context"
	"fmt"

	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SetBalance - ручная установка баланса админом. При нулевой разнице записи нет
func (s *LoyaltyService) SetBalance(ctx context.Context, userId uuid.UUID, balance int64) (*models.LedgerEntry, error) {
	if balance < 0 {
		return nil, fmt.Errorf("balance %d must not be negative: %w", balance, models.ErrInvalidAmount)
	}

	unlock := s.locks.Lock(userId)
	defer unlock()

	account, err := s.db.GetAccount(ctx, userId)
	if err != nil {
		return nil, err
	}
	delta := balance - account.Balance
	if delta == 0 {
		return nil, nil
	}
	entry, err := s.appendEntry(ctx, userId, models.AdminAdjustment, delta,
		fmt.Sprintf("Admin set balance to %d", balance), "")
	if err != nil {
		return nil, err
	}
	s.logger.Info("Admin balance adjustment",
		zap.String("user", userId.String()),
		zap.Int64("from", account.Balance),
		zap.Int64("to", balance))
	return &entry, nil
}

// Товары

func (s *LoyaltyService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if product.Name == "" || product.Price < 0 || product.Stock < 0 {
		return models.Product{}, fmt.Errorf("product %q: %w", product.Name, models.ErrInvalidProduct)
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := s.db.CreateProduct(ctx, product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *LoyaltyService) GetProduct(ctx context.Context, id uuid.UUID) (models.Product, error) {
	return s.db.GetProduct(ctx, id)
}

func (s *LoyaltyService) ListProducts(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	products, err := s.db.ListProducts(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// остаток не может уйти ниже нуля
func (s *LoyaltyService) AdjustStock(ctx context.Context, id uuid.UUID, delta int64) (models.Product, error) {
	if delta == 0 {
		return s.db.GetProduct(ctx, id)
	}
	return s.db.AdjustStock(ctx, id, delta)
}
