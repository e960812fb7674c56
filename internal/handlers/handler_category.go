package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sky_delivery_backend/internal/core/ports/services"
	"github.com/SscSPs/sky_delivery_backend/internal/dto"
	"github.com/SscSPs/sky_delivery_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/category")
	{
		categories.POST("", h.createCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("", h.deleteCategory)
		categories.GET("/page", h.listCategories)
		categories.GET("/list", h.listCategoriesByType)
		categories.POST("/status/:status", h.setCategoryStatus)
	}
}

// createCategory godoc
// @Summary Create a category
// @Description New categories start disabled
// @Tags category
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already exists"
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /category [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to create category")
		return
	}

	logger.Info("Category created successfully", slog.Int64("category_id", category.ID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Update a category
// @Tags category
// @Accept  json
// @Produce  json
// @Param   id path int true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Category details"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /category/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Fails while dishes still belong to the category
// @Tags category
// @Param   id query int true "Category ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Category still linked to dishes"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /category [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.StatusQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), query.ID); err != nil {
		respondWithServiceError(c, logger, err, "Failed to delete category")
		return
	}

	c.Status(http.StatusNoContent)
}

// listCategories godoc
// @Summary List categories
// @Tags category
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   pageSize query int false "Page size" default(10)
// @Param   name query string false "Name contains"
// @Param   type query int false "1 dish, 2 setmeal"
// @Success 200 {object} dto.PageResponse[dto.CategoryResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /category/page [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.CategoryPageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query params for ListCategories", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.categoryService.ListCategories(c.Request.Context(), query.ToDomain())
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToPageResponse(page, dto.ToCategoryResponse))
}

// listCategoriesByType godoc
// @Summary List enabled categories of a type
// @Description Without type all enabled categories are returned
// @Tags category
// @Produce  json
// @Param   type query int false "1 dish, 2 setmeal"
// @Success 200 {array} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /category/list [get]
func (h *categoryHandler) listCategoriesByType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query struct {
		Type int `form:"type" binding:"omitempty,oneof=1 2"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	categories, err := h.categoryService.ListCategoriesByType(c.Request.Context(), domain.CategoryType(query.Type))
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// setCategoryStatus godoc
// @Summary Enable or disable a category
// @Tags category
// @Param   status path int true "1 to enable, 0 to disable"
// @Param   id query int true "Category ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /category/status/{status} [post]
func (h *categoryHandler) setCategoryStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, ok := parseStatusParam(c)
	if !ok {
		return
	}
	var query dto.StatusQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	if err := h.categoryService.SetCategoryStatus(c.Request.Context(), query.ID, status); err != nil {
		respondWithServiceError(c, logger, err, "Failed to set category status")
		return
	}

	c.Status(http.StatusNoContent)
}
