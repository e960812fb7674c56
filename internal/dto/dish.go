package dto

import (
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDishRequest defines the data needed to create a new dish.
type CreateDishRequest struct {
	Name        string          `json:"name" binding:"required,max=32"`
	CategoryID  int64           `json:"categoryId" binding:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image" binding:"omitempty,url"`
	Description string          `json:"description" binding:"max=255"`
}

// UpdateDishRequest defines the editable fields of a dish.
type UpdateDishRequest struct {
	Name        string          `json:"name" binding:"required,max=32"`
	CategoryID  int64           `json:"categoryId" binding:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image" binding:"omitempty,url"`
	Description string          `json:"description" binding:"max=255"`
}

// DishPageQuery filters the paged dish listing.
type DishPageQuery struct {
	PageQuery
	Name       string `form:"name"`
	CategoryID *int64 `form:"categoryId" binding:"omitempty,min=1"`
	Status     *int   `form:"status" binding:"omitempty,oneof=0 1"`
}

// ToDomain converts the query into the repository filter.
func (q DishPageQuery) ToDomain() domain.DishQuery {
	page, pageSize := q.Normalize()
	return domain.DishQuery{Name: q.Name, CategoryID: q.CategoryID, Status: q.Status, Page: page, PageSize: pageSize}
}

// DishResponse defines the data returned for a dish.
type DishResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	CategoryID  int64           `json:"categoryId"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Status      int             `json:"status"`
	AuditResponse
}

// ToDishResponse converts a domain.Dish to DishResponse DTO
func ToDishResponse(d *domain.Dish) DishResponse {
	return DishResponse{
		ID:            d.ID,
		Name:          d.Name,
		CategoryID:    d.CategoryID,
		Price:         d.Price,
		Image:         d.Image,
		Description:   d.Description,
		Status:        d.Status,
		AuditResponse: ToAuditResponse(d.AuditFields),
	}
}
