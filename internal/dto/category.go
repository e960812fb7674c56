package dto

import "github.com/SscSPs/sky_delivery_backend/internal/core/domain"

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Type int    `json:"type" binding:"required,oneof=1 2"`
	Name string `json:"name" binding:"required,max=32"`
	Sort int    `json:"sort" binding:"min=0"`
}

// UpdateCategoryRequest defines the editable fields of a category.
type UpdateCategoryRequest struct {
	Type int    `json:"type" binding:"required,oneof=1 2"`
	Name string `json:"name" binding:"required,max=32"`
	Sort int    `json:"sort" binding:"min=0"`
}

// CategoryPageQuery filters the paged category listing.
type CategoryPageQuery struct {
	PageQuery
	Name string `form:"name"`
	Type int    `form:"type" binding:"omitempty,oneof=1 2"`
}

// ToDomain converts the query into the repository filter.
func (q CategoryPageQuery) ToDomain() domain.CategoryQuery {
	page, pageSize := q.Normalize()
	return domain.CategoryQuery{Name: q.Name, Type: domain.CategoryType(q.Type), Page: page, PageSize: pageSize}
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID     int64  `json:"id"`
	Type   int    `json:"type"`
	Name   string `json:"name"`
	Sort   int    `json:"sort"`
	Status int    `json:"status"`
	AuditResponse
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:            c.ID,
		Type:          int(c.Type),
		Name:          c.Name,
		Sort:          c.Sort,
		Status:        c.Status,
		AuditResponse: ToAuditResponse(c.AuditFields),
	}
}

// ToListCategoryResponse converts a slice of domain categories.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
