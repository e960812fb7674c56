package domain

import "github.com/shopspring/decimal"

// Dish is a menu item.
type Dish struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	CategoryID  int64           `json:"categoryId"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Status      int             `json:"status"`
	AuditFields
}

// DishQuery filters a paged dish listing. Nil pointers match all.
type DishQuery struct {
	Name       string
	CategoryID *int64
	Status     *int
	Page       int
	PageSize   int
}
