package dto

import "github.com/SscSPs/sky_delivery_backend/internal/core/domain"

// EmployeeLoginRequest defines the credentials for an admin login.
type EmployeeLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// EmployeeLoginResponse is returned after a successful login.
type EmployeeLoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"userName"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// CreateEmployeeRequest defines the data needed to create a new employee.
type CreateEmployeeRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Name     string `json:"name" binding:"required,max=32"`
	Phone    string `json:"phone" binding:"required,phone"`
	Sex      string `json:"sex" binding:"required,oneof=0 1"`
	IDNumber string `json:"idNumber" binding:"required,idnumber"`
}

// UpdateEmployeeRequest defines the editable fields of an employee.
type UpdateEmployeeRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Name     string `json:"name" binding:"required,max=32"`
	Phone    string `json:"phone" binding:"required,phone"`
	Sex      string `json:"sex" binding:"required,oneof=0 1"`
	IDNumber string `json:"idNumber" binding:"required,idnumber"`
}

// EmployeePageQuery filters the paged employee listing.
type EmployeePageQuery struct {
	PageQuery
	Name string `form:"name"`
}

// ToDomain converts the query into the repository filter.
func (q EmployeePageQuery) ToDomain() domain.EmployeeQuery {
	page, pageSize := q.Normalize()
	return domain.EmployeeQuery{Name: q.Name, Page: page, PageSize: pageSize}
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Sex      string `json:"sex"`
	IDNumber string `json:"idNumber"`
	Status   int    `json:"status"`
	AuditResponse
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Username:      e.Username,
		Name:          e.Name,
		Phone:         e.Phone,
		Sex:           e.Sex,
		IDNumber:      e.IDNumber,
		Status:        e.Status,
		AuditResponse: ToAuditResponse(e.AuditFields),
	}
}
