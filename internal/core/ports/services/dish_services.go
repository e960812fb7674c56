package services

import (
	"context"

	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	"github.com/SscSPs/sky_delivery_backend/internal/dto"
)

// DishReaderSvc defines read operations for dishes.
type DishReaderSvc interface {
	GetDishByID(ctx context.Context, dishID int64) (*domain.Dish, error)
	ListDishes(ctx context.Context, query domain.DishQuery) (domain.Page[domain.Dish], error)
}

// DishWriterSvc defines write operations for dishes.
type DishWriterSvc interface {
	CreateDish(ctx context.Context, req dto.CreateDishRequest) (*domain.Dish, error)
	UpdateDish(ctx context.Context, dishID int64, req dto.UpdateDishRequest) (*domain.Dish, error)
	SetDishStatus(ctx context.Context, dishID int64, status int) error
}

// DishSvcFacade combines all dish-related service interfaces
type DishSvcFacade interface {
	DishReaderSvc
	DishWriterSvc
}
