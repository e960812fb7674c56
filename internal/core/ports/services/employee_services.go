package services

import (
	"context"

	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	"github.com/SscSPs/sky_delivery_backend/internal/dto"
)

// EmployeeAuthSvc authenticates back-office employees.
type EmployeeAuthSvc interface {
	// Login verifies credentials and returns the employee on success.
	Login(ctx context.Context, req dto.EmployeeLoginRequest) (*domain.Employee, error)
}

// EmployeeReaderSvc defines read operations for employees.
type EmployeeReaderSvc interface {
	GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context, query domain.EmployeeQuery) (domain.Page[domain.Employee], error)
}

// EmployeeWriterSvc defines write operations for employees.
type EmployeeWriterSvc interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	SetEmployeeStatus(ctx context.Context, employeeID int64, status int) error
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeAuthSvc
	EmployeeReaderSvc
	EmployeeWriterSvc
}
