package handlers_test

import (
	"context"

	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sky_delivery_backend/internal/core/ports/services"
	"github.com/SscSPs/sky_delivery_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) Login(ctx context.Context, req dto.EmployeeLoginRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context, query domain.EmployeeQuery) (domain.Page[domain.Employee], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.Page[domain.Employee]), args.Error(1)
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) SetEmployeeStatus(ctx context.Context, employeeID int64, status int) error {
	return m.Called(ctx, employeeID, status).Error(0)
}

// Ensure mock implements the interface
var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context, query domain.CategoryQuery) (domain.Page[domain.Category], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.Page[domain.Category]), args.Error(1)
}

func (m *MockCategoryService) ListCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	args := m.Called(ctx, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) SetCategoryStatus(ctx context.Context, categoryID int64, status int) error {
	return m.Called(ctx, categoryID, status).Error(0)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	return m.Called(ctx, categoryID).Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock DishService ---
type MockDishService struct {
	mock.Mock
}

func (m *MockDishService) GetDishByID(ctx context.Context, dishID int64) (*domain.Dish, error) {
	args := m.Called(ctx, dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *MockDishService) ListDishes(ctx context.Context, query domain.DishQuery) (domain.Page[domain.Dish], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.Page[domain.Dish]), args.Error(1)
}

func (m *MockDishService) CreateDish(ctx context.Context, req dto.CreateDishRequest) (*domain.Dish, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *MockDishService) UpdateDish(ctx context.Context, dishID int64, req dto.UpdateDishRequest) (*domain.Dish, error) {
	args := m.Called(ctx, dishID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *MockDishService) SetDishStatus(ctx context.Context, dishID int64, status int) error {
	return m.Called(ctx, dishID, status).Error(0)
}

var _ portssvc.DishSvcFacade = (*MockDishService)(nil)

// --- Mock UploadService ---
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, originalFilename string, data []byte) (string, error) {
	args := m.Called(ctx, originalFilename, data)
	return args.String(0), args.Error(1)
}

var _ portssvc.UploadSvc = (*MockUploadService)(nil)
