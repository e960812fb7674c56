package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/sky_delivery_backend/internal/apperrors"
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sky_delivery_backend/internal/core/ports/services"
	"github.com/SscSPs/sky_delivery_backend/internal/core/services"
	"github.com/SscSPs/sky_delivery_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	mockDishRepo     *MockDishRepository
	service          portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockDishRepo = new(MockDishRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo, suite.mockDishRepo)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_StartsDisabled() {
	ctx := context.Background()
	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c *domain.Category) bool {
		return c.Name == "Drinks" && c.Type == domain.CategoryTypeDish && c.Status == domain.StatusDisabled
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{Type: 1, Name: "Drinks", Sort: 2})

	suite.Require().NoError(err)
	suite.Equal(2, category.Sort)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_InvalidType() {
	_, err := suite.service.CreateCategory(context.Background(), dto.CreateCategoryRequest{Type: 5, Name: "X"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory() {
	ctx := context.Background()
	existing := &domain.Category{ID: 2, Type: domain.CategoryTypeDish, Name: "Old", Status: domain.StatusEnabled}
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, int64(2)).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("UpdateCategory", ctx, existing).Return(nil).Once()

	category, err := suite.service.UpdateCategory(ctx, 2, dto.UpdateCategoryRequest{Type: 2, Name: "Combos", Sort: 1})

	suite.Require().NoError(err)
	suite.Equal(domain.CategoryTypeSetmeal, category.Type)
	suite.Equal(domain.StatusEnabled, category.Status)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_BlockedByDishes() {
	ctx := context.Background()
	suite.mockDishRepo.On("CountDishesByCategory", ctx, int64(3)).Return(int64(2), nil).Once()

	err := suite.service.DeleteCategory(ctx, 3)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()
	suite.mockDishRepo.On("CountDishesByCategory", ctx, int64(3)).Return(int64(0), nil).Once()
	suite.mockCategoryRepo.On("DeleteCategory", ctx, int64(3)).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteCategory(ctx, 3))
	suite.mockCategoryRepo.AssertExpectations(suite.T())
	suite.mockDishRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestSetCategoryStatus_InvalidStatus() {
	err := suite.service.SetCategoryStatus(context.Background(), 1, 2)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CategoryServiceTestSuite) TestListCategoriesByType() {
	ctx := context.Background()
	suite.mockCategoryRepo.On("ListEnabledCategoriesByType", ctx, domain.CategoryTypeSetmeal).Return(nil, nil).Once()

	categories, err := suite.service.ListCategoriesByType(ctx, domain.CategoryTypeSetmeal)
	suite.Require().NoError(err)
	suite.NotNil(categories)

	_, err = suite.service.ListCategoriesByType(ctx, domain.CategoryType(9))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
