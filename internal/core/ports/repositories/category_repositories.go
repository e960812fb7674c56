package repositories

import (
	"context"

	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	ListCategories(ctx context.Context, query domain.CategoryQuery) (domain.Page[domain.Category], error)
	// ListEnabledCategoriesByType returns enabled categories ordered by sort; a zero type matches all.
	ListEnabledCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory inserts a new category and sets its ID. Audited as INSERT.
	SaveCategory(ctx context.Context, category *domain.Category) error
	// UpdateCategory updates type, name and sort. Audited as UPDATE.
	UpdateCategory(ctx context.Context, category *domain.Category) error
	// UpdateCategoryStatus updates only the status. Audited as UPDATE.
	UpdateCategoryStatus(ctx context.Context, category *domain.Category) error
	// DeleteCategory removes a category. Not audited.
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
