package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/sky_delivery_backend/internal/apperrors"
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sky_delivery_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sky_delivery_backend/internal/core/ports/services"
	"github.com/SscSPs/sky_delivery_backend/internal/dto"
	"github.com/shopspring/decimal"
)

type dishService struct {
	BaseService
	dishRepo     portsrepo.DishRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewDishService creates the dish service.
func NewDishService(dishRepo portsrepo.DishRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.DishSvcFacade {
	return &dishService{dishRepo: dishRepo, categoryRepo: categoryRepo}
}

var _ portssvc.DishSvcFacade = (*dishService)(nil)

// validateDish checks the price and that the category exists and holds dishes.
func (s *dishService) validateDish(ctx context.Context, categoryID int64, price decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", apperrors.ErrValidation)
	}
	if price.Exponent() < -2 {
		return fmt.Errorf("%w: price has more than two decimal places", apperrors.ErrValidation)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to get category %d for dish: %w", categoryID, err)
	}
	if category.Type != domain.CategoryTypeDish {
		return fmt.Errorf("%w: category %d is not a dish category", apperrors.ErrValidation, categoryID)
	}
	return nil
}

func (s *dishService) CreateDish(ctx context.Context, req dto.CreateDishRequest) (*domain.Dish, error) {
	if err := s.validateDish(ctx, req.CategoryID, req.Price); err != nil {
		return nil, err
	}

	dish := &domain.Dish{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Status:      domain.StatusDisabled,
	}
	if err := s.dishRepo.SaveDish(ctx, dish); err != nil {
		return nil, fmt.Errorf("failed to create dish in service: %w", err)
	}
	return dish, nil
}

func (s *dishService) UpdateDish(ctx context.Context, dishID int64, req dto.UpdateDishRequest) (*domain.Dish, error) {
	if err := s.validateDish(ctx, req.CategoryID, req.Price); err != nil {
		return nil, err
	}

	dish, err := s.dishRepo.FindDishByID(ctx, dishID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dish for update: %w", err)
	}

	dish.Name = req.Name
	dish.CategoryID = req.CategoryID
	dish.Price = req.Price
	dish.Image = req.Image
	dish.Description = req.Description
	if err := s.dishRepo.UpdateDish(ctx, dish); err != nil {
		return nil, fmt.Errorf("failed to update dish in service: %w", err)
	}
	return dish, nil
}

func (s *dishService) SetDishStatus(ctx context.Context, dishID int64, status int) error {
	if err := validateStatus(status); err != nil {
		return err
	}
	if err := s.dishRepo.UpdateDishStatus(ctx, &domain.Dish{ID: dishID, Status: status}); err != nil {
		return fmt.Errorf("failed to set dish status in service: %w", err)
	}
	return nil
}

func (s *dishService) GetDishByID(ctx context.Context, dishID int64) (*domain.Dish, error) {
	dish, err := s.dishRepo.FindDishByID(ctx, dishID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dish by ID in service: %w", err)
	}
	return dish, nil
}

func (s *dishService) ListDishes(ctx context.Context, query domain.DishQuery) (domain.Page[domain.Dish], error) {
	page, err := s.dishRepo.ListDishes(ctx, query)
	if err != nil {
		return domain.Page[domain.Dish]{}, fmt.Errorf("failed to list dishes in service: %w", err)
	}
	if page.Records == nil {
		page.Records = []domain.Dish{}
	}
	return page, nil
}
