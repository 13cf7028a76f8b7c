package repository

import (
	"context"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
)

// ShopRepository defines the interface for the single-row shop profile
type ShopRepository interface {
	Get(ctx context.Context) (*entity.Shop, error)
	Save(ctx context.Context, shop *entity.Shop) error
}
