package audited_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/sky_delivery_backend/internal/apperrors"
	"github.com/SscSPs/sky_delivery_backend/internal/core/autofill"
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	"github.com/SscSPs/sky_delivery_backend/internal/middleware"
	"github.com/SscSPs/sky_delivery_backend/internal/repositories/audited"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

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

// --- Test Suite ---
type AuditedRepositoryTestSuite struct {
	suite.Suite
	now          time.Time
	ctx          context.Context
	mockEmployee *MockEmployeeRepository
	mockCategory *MockCategoryRepository
	employees    *audited.EmployeeRepository
	categories   *audited.CategoryRepository
}

func (suite *AuditedRepositoryTestSuite) SetupTest() {
	suite.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.ctx = middleware.WithEmployeeID(context.Background(), 42)
	filler := autofill.New(autofill.WithClock(func() time.Time { return suite.now }))

	suite.mockEmployee = new(MockEmployeeRepository)
	suite.mockCategory = new(MockCategoryRepository)
	suite.employees = audited.NewEmployeeRepository(suite.mockEmployee, filler)
	suite.categories = audited.NewCategoryRepository(suite.mockCategory, filler)
}

func (suite *AuditedRepositoryTestSuite) TestSaveEmployee_FillsAllFieldsBeforeInsert() {
	employee := &domain.Employee{Username: "lisi"}

	suite.mockEmployee.On("SaveEmployee", suite.ctx, mock.MatchedBy(func(e *domain.Employee) bool {
		return e.CreateUser == 42 && e.UpdateUser == 42 && e.CreateTime.Equal(suite.now) && e.UpdateTime.Equal(suite.now)
	})).Return(nil).Once()

	suite.Require().NoError(suite.employees.SaveEmployee(suite.ctx, employee))
	suite.Equal(int64(42), employee.CreateUser)
	suite.mockEmployee.AssertExpectations(suite.T())
}

func (suite *AuditedRepositoryTestSuite) TestUpdateEmployeeStatus_FillsOnlyUpdateFields() {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	employee := &domain.Employee{ID: 5, Status: domain.StatusDisabled, AuditFields: domain.AuditFields{CreateTime: created, CreateUser: 1}}

	suite.mockEmployee.On("UpdateEmployeeStatus", suite.ctx, employee).Return(nil).Once()

	suite.Require().NoError(suite.employees.UpdateEmployeeStatus(suite.ctx, employee))
	suite.Equal(created, employee.CreateTime)
	suite.Equal(int64(1), employee.CreateUser)
	suite.Equal(suite.now, employee.UpdateTime)
	suite.Equal(int64(42), employee.UpdateUser)
	suite.mockEmployee.AssertExpectations(suite.T())
}

func (suite *AuditedRepositoryTestSuite) TestWriteWithoutActor_DoesNotReachStorage() {
	err := suite.employees.UpdateEmployee(context.Background(), &domain.Employee{ID: 5})

	suite.Require().ErrorIs(err, apperrors.ErrMissingActorContext)
	suite.mockEmployee.AssertNotCalled(suite.T(), "UpdateEmployee", mock.Anything, mock.Anything)
}

func (suite *AuditedRepositoryTestSuite) TestReadsPassThrough() {
	expected := &domain.Employee{ID: 7}
	suite.mockEmployee.On("FindEmployeeByID", context.Background(), int64(7)).Return(expected, nil).Once()

	got, err := suite.employees.FindEmployeeByID(context.Background(), 7)

	suite.Require().NoError(err)
	suite.Same(expected, got)
	suite.mockEmployee.AssertExpectations(suite.T())
}

func (suite *AuditedRepositoryTestSuite) TestDeleteCategory_IsNotAudited() {
	suite.mockCategory.On("DeleteCategory", context.Background(), int64(3)).Return(nil).Once()

	suite.Require().NoError(suite.categories.DeleteCategory(context.Background(), 3))
	suite.mockCategory.AssertExpectations(suite.T())
}

func (suite *AuditedRepositoryTestSuite) TestUpdateCategory_FillsUpdateFields() {
	category := &domain.Category{ID: 3, Name: "Noodles"}
	suite.mockCategory.On("UpdateCategory", suite.ctx, category).Return(nil).Once()

	suite.Require().NoError(suite.categories.UpdateCategory(suite.ctx, category))
	suite.True(category.CreateTime.IsZero())
	suite.Zero(category.CreateUser)
	suite.Equal(suite.now, category.UpdateTime)
	suite.Equal(int64(42), category.UpdateUser)
}

func TestAuditedRepositories(t *testing.T) {
	suite.Run(t, new(AuditedRepositoryTestSuite))
}
