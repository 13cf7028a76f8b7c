package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	"github.com/tavolo/tavolo-api/pkg/pagination"
)

// ItemRepository defines the interface for menu item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ItemFilterParams) ([]entity.Item, int64, error)
}

// ItemFilterParams contains filtering parameters for item queries
type ItemFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Category      *enum.ItemCategory
	SubcategoryID *uuid.UUID
	ActiveOnly    bool
}

// SubcategoryRepository defines the interface for subcategory data operations
type SubcategoryRepository interface {
	Create(ctx context.Context, sub *entity.Subcategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error)
	GetByName(ctx context.Context, name string) (*entity.Subcategory, error)
	Update(ctx context.Context, sub *entity.Subcategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Subcategory, error)
}
