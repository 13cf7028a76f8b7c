package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	domainRepo "github.com/tavolo/tavolo-api/internal/domain/repository"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	return dbFrom(ctx, r.db).Create(item).Error
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item entity.Item
	err := dbFrom(ctx, r.db).
		Preload("Subcategory").
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	return dbFrom(ctx, r.db).Save(item).Error
}

func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Item{}, "id = ?", id).Error
}

func (r *itemRepository) List(ctx context.Context, params *domainRepo.ItemFilterParams) ([]entity.Item, int64, error) {
	var items []entity.Item
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Item{})

	if params.Search != "" {
		query = query.Where("name LIKE ?", "%"+params.Search+"%")
	}
	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}
	if params.SubcategoryID != nil {
		query = query.Where("subcategory_id = ?", *params.SubcategoryID)
	}
	if params.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Subcategory").
		Order("name ASC").
		Find(&items).Error

	return items, total, err
}

type subcategoryRepository struct {
	db *gorm.DB
}

// NewSubcategoryRepository creates a new subcategory repository
func NewSubcategoryRepository(db *gorm.DB) domainRepo.SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

func (r *subcategoryRepository) Create(ctx context.Context, sub *entity.Subcategory) error {
	return dbFrom(ctx, r.db).Create(sub).Error
}

func (r *subcategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	var sub entity.Subcategory
	err := dbFrom(ctx, r.db).First(&sub, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sub, err
}

func (r *subcategoryRepository) GetByName(ctx context.Context, name string) (*entity.Subcategory, error) {
	var sub entity.Subcategory
	err := dbFrom(ctx, r.db).First(&sub, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sub, err
}

func (r *subcategoryRepository) Update(ctx context.Context, sub *entity.Subcategory) error {
	return dbFrom(ctx, r.db).Save(sub).Error
}

func (r *subcategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Subcategory{}, "id = ?", id).Error
}

func (r *subcategoryRepository) List(ctx context.Context) ([]entity.Subcategory, error) {
	var subs []entity.Subcategory
	err := dbFrom(ctx, r.db).Order("name ASC").Find(&subs).Error
	return subs, err
}
