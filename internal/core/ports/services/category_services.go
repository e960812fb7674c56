package services

import (
	"context"

	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	"github.com/SscSPs/sky_delivery_backend/internal/dto"
)

// CategoryReaderSvc defines read operations for categories.
type CategoryReaderSvc interface {
	ListCategories(ctx context.Context, query domain.CategoryQuery) (domain.Page[domain.Category], error)
	ListCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for categories.
type CategoryWriterSvc interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error)
	SetCategoryStatus(ctx context.Context, categoryID int64, status int) error
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
