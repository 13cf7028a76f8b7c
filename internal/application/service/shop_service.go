package service

import (
	"context"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/repository"
	"github.com/tavolo/tavolo-api/pkg/apperror"
)

// ShopService manages the single-row shop profile
type ShopService struct {
	shopRepo repository.ShopRepository
}

// NewShopService creates a new shop service
func NewShopService(shopRepo repository.ShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

// GetShop returns the shop profile
func (s *ShopService) GetShop(ctx context.Context) (*entity.Shop, error) {
	shop, err := s.shopRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.NewNotFoundError("Shop profile")
	}
	return shop, nil
}

// UpdateShopInput represents the update shop input
type UpdateShopInput struct {
	Name          *string
	Address       *string
	Phone         *string
	TaxID         *string
	Currency      *string
	ReceiptFooter *string
}

// UpdateShop updates the shop profile printed on receipts
func (s *ShopService) UpdateShop(ctx context.Context, input *UpdateShopInput) (*entity.Shop, error) {
	shop, err := s.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.Address != nil {
		shop.Address = *input.Address
	}
	if input.Phone != nil {
		shop.Phone = *input.Phone
	}
	if input.TaxID != nil {
		shop.TaxID = *input.TaxID
	}
	if input.Currency != nil {
		shop.Currency = *input.Currency
	}
	if input.ReceiptFooter != nil {
		shop.ReceiptFooter = *input.ReceiptFooter
	}

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}
