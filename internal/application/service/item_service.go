package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	"github.com/tavolo/tavolo-api/internal/domain/repository"
	"github.com/tavolo/tavolo-api/pkg/apperror"
	"github.com/tavolo/tavolo-api/pkg/pagination"
)

// ItemService handles menu item operations
type ItemService struct {
	itemRepo repository.ItemRepository
	subRepo  repository.SubcategoryRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository, subRepo repository.SubcategoryRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo, subRepo: subRepo}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	Name          string
	Price         float64
	Category      enum.ItemCategory
	SubcategoryID *uuid.UUID
}

// CreateItem creates a new menu item
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	if !input.Category.Valid() {
		return nil, apperror.NewBadRequestError("Category must be kot or bot")
	}
	if input.SubcategoryID != nil {
		sub, err := s.subRepo.GetByID(ctx, *input.SubcategoryID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, apperror.NewNotFoundError("Subcategory")
		}
	}

	item := &entity.Item{
		Name:          input.Name,
		Category:      input.Category,
		SubcategoryID: input.SubcategoryID,
		Active:        true,
	}
	item.SetPriceFromDecimal(input.Price)

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItemInput represents the update item input
type UpdateItemInput struct {
	Name          *string
	Price         *float64
	Category      *enum.ItemCategory
	SubcategoryID *uuid.UUID
	Active        *bool
}

// UpdateItem updates a menu item. History lines hold value copies, so price
// and name edits never alter settled bills.
func (s *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		item.SetPriceFromDecimal(*input.Price)
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, apperror.NewBadRequestError("Category must be kot or bot")
		}
		item.Category = *input.Category
	}
	if input.SubcategoryID != nil {
		sub, err := s.subRepo.GetByID(ctx, *input.SubcategoryID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, apperror.NewNotFoundError("Subcategory")
		}
		item.SubcategoryID = input.SubcategoryID
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem soft-deletes a menu item
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}
	return s.itemRepo.Delete(ctx, id)
}

// GetItem retrieves a menu item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists menu items with filtering
func (s *ItemService) ListItems(ctx context.Context, params *repository.ItemFilterParams) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}
