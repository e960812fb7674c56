package services_test

import (
	"context"

	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sky_delivery_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

var _ portsrepo.EmployeeRepositoryFacade = (*MockEmployeeRepository)(nil)

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, query domain.EmployeeQuery) (domain.Page[domain.Employee], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.Page[domain.Employee]), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee *domain.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee *domain.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployeeStatus(ctx context.Context, employee *domain.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, query domain.CategoryQuery) (domain.Page[domain.Category], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.Page[domain.Category]), args.Error(1)
}

func (m *MockCategoryRepository) ListEnabledCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	args := m.Called(ctx, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) UpdateCategoryStatus(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	return m.Called(ctx, categoryID).Error(0)
}

// --- Mock DishRepository ---
type MockDishRepository struct {
	mock.Mock
}

var _ portsrepo.DishRepositoryFacade = (*MockDishRepository)(nil)

func (m *MockDishRepository) FindDishByID(ctx context.Context, dishID int64) (*domain.Dish, error) {
	args := m.Called(ctx, dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *MockDishRepository) ListDishes(ctx context.Context, query domain.DishQuery) (domain.Page[domain.Dish], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.Page[domain.Dish]), args.Error(1)
}

func (m *MockDishRepository) CountDishesByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDishRepository) SaveDish(ctx context.Context, dish *domain.Dish) error {
	return m.Called(ctx, dish).Error(0)
}

func (m *MockDishRepository) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	return m.Called(ctx, dish).Error(0)
}

func (m *MockDishRepository) UpdateDishStatus(ctx context.Context, dish *domain.Dish) error {
	return m.Called(ctx, dish).Error(0)
}

// --- Mock ObjectStore ---
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) PutObject(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, objectName, contentType, data)
	return args.String(0), args.Error(1)
}

func repositoriesForTest() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo: new(MockEmployeeRepository),
		CategoryRepo: new(MockCategoryRepository),
		DishRepo:     new(MockDishRepository),
	}
}
