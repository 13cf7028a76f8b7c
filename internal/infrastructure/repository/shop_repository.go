package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	domainRepo "github.com/tavolo/tavolo-api/internal/domain/repository"
)

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *gorm.DB) domainRepo.ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Get(ctx context.Context) (*entity.Shop, error) {
	var shop entity.Shop
	err := dbFrom(ctx, r.db).First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shop, err
}

func (r *shopRepository) Save(ctx context.Context, shop *entity.Shop) error {
	return dbFrom(ctx, r.db).Save(shop).Error
}
