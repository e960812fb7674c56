package repositories

import (
	"context"

	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
)

// DishReader defines read operations for dish data
type DishReader interface {
	FindDishByID(ctx context.Context, dishID int64) (*domain.Dish, error)
	ListDishes(ctx context.Context, query domain.DishQuery) (domain.Page[domain.Dish], error)
	// CountDishesByCategory counts dishes referencing a category.
	CountDishesByCategory(ctx context.Context, categoryID int64) (int64, error)
}

// DishWriter defines write operations for dish data
type DishWriter interface {
	// SaveDish inserts a new dish and sets its ID. Audited as INSERT.
	SaveDish(ctx context.Context, dish *domain.Dish) error
	// UpdateDish updates the editable dish fields. Audited as UPDATE.
	UpdateDish(ctx context.Context, dish *domain.Dish) error
	// UpdateDishStatus updates only the status. Audited as UPDATE.
	UpdateDishStatus(ctx context.Context, dish *domain.Dish) error
}

// DishRepositoryFacade combines all dish-related repository interfaces
type DishRepositoryFacade interface {
	DishReader
	DishWriter
}
