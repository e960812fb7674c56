package dto

import "github.com/SscSPs/sky_delivery_backend/internal/core/domain"

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PageQuery holds paging query parameters shared by list endpoints.
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1"`
}

// Normalize returns page and pageSize with defaults applied and pageSize capped.
func (q PageQuery) Normalize() (page, pageSize int) {
	page, pageSize = q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// PageResponse is one page of a listing.
type PageResponse[T any] struct {
	Total   int64 `json:"total"`
	Records []T   `json:"records"`
}

// ToPageResponse converts a domain page using convert for each record.
func ToPageResponse[D any, R any](page domain.Page[D], convert func(*D) R) PageResponse[R] {
	records := make([]R, len(page.Records))
	for i := range page.Records {
		records[i] = convert(&page.Records[i])
	}
	return PageResponse[R]{Total: page.Total, Records: records}
}

// AuditResponse is the audit part of every entity response.
type AuditResponse struct {
	CreateTime DateTime `json:"createTime"`
	CreateUser int64    `json:"createUser"`
	UpdateTime DateTime `json:"updateTime"`
	UpdateUser int64    `json:"updateUser"`
}

// ToAuditResponse converts domain audit fields.
func ToAuditResponse(a domain.AuditFields) AuditResponse {
	return AuditResponse{
		CreateTime: DateTime(a.CreateTime),
		CreateUser: a.CreateUser,
		UpdateTime: DateTime(a.UpdateTime),
		UpdateUser: a.UpdateUser,
	}
}

// StatusQuery is the query part of the status toggling endpoints.
type StatusQuery struct {
	ID int64 `form:"id" binding:"required,min=1"`
}
