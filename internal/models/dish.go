package models

import "github.com/shopspring/decimal"

// Dish maps a row of the dish table.
type Dish struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	CategoryID  int64           `db:"category_id"`
	Price       decimal.Decimal `db:"price"` // NUMERIC(10,2)
	Image       string          `db:"image"`
	Description string          `db:"description"`
	Status      int             `db:"status"`
	AuditFields
}
