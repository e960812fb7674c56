package domain

// CategoryType distinguishes dish categories from set-meal categories.
type CategoryType int

const (
	CategoryTypeDish    CategoryType = 1
	CategoryTypeSetmeal CategoryType = 2
)

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeDish || t == CategoryTypeSetmeal
}

// Category groups dishes or set meals on the menu.
type Category struct {
	ID     int64        `json:"id"`
	Type   CategoryType `json:"type"`
	Name   string       `json:"name"`
	Sort   int          `json:"sort"`
	Status int          `json:"status"`
	AuditFields
}

// CategoryQuery filters a paged category listing. A zero Type matches all.
type CategoryQuery struct {
	Name     string
	Type     CategoryType
	Page     int
	PageSize int
}
