package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sky_delivery_backend/internal/apperrors"
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sky_delivery_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sky_delivery_backend/internal/core/ports/services"
	"github.com/SscSPs/sky_delivery_backend/internal/dto"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	dishRepo     portsrepo.DishReader
}

// NewCategoryService creates the category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, dishRepo portsrepo.DishReader) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo, dishRepo: dishRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	categoryType := domain.CategoryType(req.Type)
	if !categoryType.Valid() {
		return nil, fmt.Errorf("%w: unknown category type %d", apperrors.ErrValidation, req.Type)
	}

	// New categories start disabled until someone enables them.
	category := &domain.Category{
		Type:   categoryType,
		Name:   req.Name,
		Sort:   req.Sort,
		Status: domain.StatusDisabled,
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category in service: %w", err)
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	categoryType := domain.CategoryType(req.Type)
	if !categoryType.Valid() {
		return nil, fmt.Errorf("%w: unknown category type %d", apperrors.ErrValidation, req.Type)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category for update: %w", err)
	}

	category.Type = categoryType
	category.Name = req.Name
	category.Sort = req.Sort
	if err := s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category in service: %w", err)
	}
	return category, nil
}

func (s *categoryService) SetCategoryStatus(ctx context.Context, categoryID int64, status int) error {
	if err := validateStatus(status); err != nil {
		return err
	}
	if err := s.categoryRepo.UpdateCategoryStatus(ctx, &domain.Category{ID: categoryID, Status: status}); err != nil {
		return fmt.Errorf("failed to set category status in service: %w", err)
	}
	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	count, err := s.dishRepo.CountDishesByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to check dishes of category: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: category %d is linked to %d dishes", apperrors.ErrValidation, categoryID, count)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category in service: %w", err)
	}
	s.LogInfo(ctx, "Category deleted", slog.Int64("category_id", categoryID))
	return nil
}

func (s *categoryService) ListCategories(ctx context.Context, query domain.CategoryQuery) (domain.Page[domain.Category], error) {
	page, err := s.categoryRepo.ListCategories(ctx, query)
	if err != nil {
		return domain.Page[domain.Category]{}, fmt.Errorf("failed to list categories in service: %w", err)
	}
	if page.Records == nil {
		page.Records = []domain.Category{}
	}
	return page, nil
}

func (s *categoryService) ListCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	if categoryType != 0 && !categoryType.Valid() {
		return nil, fmt.Errorf("%w: unknown category type %d", apperrors.ErrValidation, categoryType)
	}
	categories, err := s.categoryRepo.ListEnabledCategoriesByType(ctx, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories by type in service: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}
