package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/repository"
	"github.com/tavolo/tavolo-api/pkg/apperror"
)

// SubcategoryService handles subcategory operations
type SubcategoryService struct {
	subRepo repository.SubcategoryRepository
}

// NewSubcategoryService creates a new subcategory service
func NewSubcategoryService(subRepo repository.SubcategoryRepository) *SubcategoryService {
	return &SubcategoryService{subRepo: subRepo}
}

// CreateSubcategory creates a new subcategory
func (s *SubcategoryService) CreateSubcategory(ctx context.Context, name string) (*entity.Subcategory, error) {
	existing, err := s.subRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Subcategory already exists")
	}

	sub := &entity.Subcategory{Name: name}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// UpdateSubcategory renames a subcategory
func (s *SubcategoryService) UpdateSubcategory(ctx context.Context, id uuid.UUID, name string) (*entity.Subcategory, error) {
	sub, err := s.subRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NewNotFoundError("Subcategory")
	}

	sub.Name = name
	if err := s.subRepo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// DeleteSubcategory removes a subcategory
func (s *SubcategoryService) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	sub, err := s.subRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return apperror.NewNotFoundError("Subcategory")
	}
	return s.subRepo.Delete(ctx, id)
}

// ListSubcategories returns all subcategories
func (s *SubcategoryService) ListSubcategories(ctx context.Context) ([]entity.Subcategory, error) {
	return s.subRepo.List(ctx)
}
