package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sky_delivery_backend/internal/apperrors"
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sky_delivery_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sky_delivery_backend/internal/core/ports/services"
	"github.com/SscSPs/sky_delivery_backend/internal/dto"
	"github.com/SscSPs/sky_delivery_backend/internal/utils"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates the employee service. Audit fields are not set
// here; employeeRepo is expected to be an audited repository.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) Login(ctx context.Context, req dto.EmployeeLoginRequest) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up employee for login: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, employee.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	if !employee.IsEnabled() {
		return nil, apperrors.ErrAccountLocked
	}

	s.LogInfo(ctx, "Employee logged in", slog.Int64("employee_id", employee.ID))
	return employee, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	hash, err := utils.HashPassword(domain.DefaultEmployeePassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	employee := &domain.Employee{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
		Phone:        req.Phone,
		Sex:          req.Sex,
		IDNumber:     req.IDNumber,
		Status:       domain.StatusEnabled,
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee in service: %w", err)
	}

	s.LogInfo(ctx, "Employee created", slog.Int64("new_employee_id", employee.ID))
	return employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee for update: %w", err)
	}

	employee.Username = req.Username
	employee.Name = req.Name
	employee.Phone = req.Phone
	employee.Sex = req.Sex
	employee.IDNumber = req.IDNumber

	if err := s.employeeRepo.UpdateEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee in service: %w", err)
	}
	return employee, nil
}

func (s *employeeService) SetEmployeeStatus(ctx context.Context, employeeID int64, status int) error {
	if err := validateStatus(status); err != nil {
		return err
	}

	employee := &domain.Employee{ID: employeeID, Status: status}
	if err := s.employeeRepo.UpdateEmployeeStatus(ctx, employee); err != nil {
		return fmt.Errorf("failed to set employee status in service: %w", err)
	}

	s.LogInfo(ctx, "Employee status changed", slog.Int64("target_employee_id", employeeID), slog.Int("status", status))
	return nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee by ID in service: %w", err)
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, query domain.EmployeeQuery) (domain.Page[domain.Employee], error) {
	page, err := s.employeeRepo.ListEmployees(ctx, query)
	if err != nil {
		return domain.Page[domain.Employee]{}, fmt.Errorf("failed to list employees in service: %w", err)
	}
	if page.Records == nil {
		page.Records = []domain.Employee{}
	}
	return page, nil
}
