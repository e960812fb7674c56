package repositories

import (
	"context"

	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by ID.
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)

	// FindEmployeeByUsername retrieves an employee by login name.
	FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error)

	// ListEmployees retrieves one page of employees filtered by name.
	ListEmployees(ctx context.Context, query domain.EmployeeQuery) (domain.Page[domain.Employee], error)
}

// EmployeeWriter defines write operations for employee data.
// Every method is an audited write: the entity's audit fields are filled before it runs.
type EmployeeWriter interface {
	// SaveEmployee inserts a new employee and sets its ID. Audited as INSERT.
	SaveEmployee(ctx context.Context, employee *domain.Employee) error

	// UpdateEmployee updates the editable profile fields. Audited as UPDATE.
	UpdateEmployee(ctx context.Context, employee *domain.Employee) error

	// UpdateEmployeeStatus updates only the status. Audited as UPDATE.
	UpdateEmployeeStatus(ctx context.Context, employee *domain.Employee) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
