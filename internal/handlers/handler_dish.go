package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sky_delivery_backend/internal/core/ports/services"
	"github.com/SscSPs/sky_delivery_backend/internal/dto"
	"github.com/SscSPs/sky_delivery_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dishHandler handles HTTP requests related to dishes.
type dishHandler struct {
	dishService portssvc.DishSvcFacade
}

func newDishHandler(ds portssvc.DishSvcFacade) *dishHandler {
	return &dishHandler{dishService: ds}
}

// registerDishRoutes registers routes related to dishes.
func registerDishRoutes(rg *gin.RouterGroup, dishService portssvc.DishSvcFacade) {
	h := newDishHandler(dishService)

	dishes := rg.Group("/dish")
	{
		dishes.POST("", h.createDish)
		dishes.GET("/page", h.listDishes)
		dishes.GET("/:id", h.getDish)
		dishes.PUT("/:id", h.updateDish)
		dishes.POST("/status/:status", h.setDishStatus)
	}
}

// createDish godoc
// @Summary Create a dish
// @Description New dishes start disabled. The category must be a dish category.
// @Tags dish
// @Accept  json
// @Produce  json
// @Param   dish body dto.CreateDishRequest true "Dish details"
// @Success 201 {object} dto.DishResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Name already exists"
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /dish [post]
func (h *dishHandler) createDish(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDish", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	dish, err := h.dishService.CreateDish(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to create dish")
		return
	}

	logger.Info("Dish created successfully", slog.Int64("dish_id", dish.ID))
	c.JSON(http.StatusCreated, dto.ToDishResponse(dish))
}

// getDish godoc
// @Summary Get a dish by ID
// @Tags dish
// @Produce  json
// @Param   id path int true "Dish ID"
// @Success 200 {object} dto.DishResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /dish/{id} [get]
func (h *dishHandler) getDish(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dishID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dish, err := h.dishService.GetDishByID(c.Request.Context(), dishID)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to retrieve dish")
		return
	}

	c.JSON(http.StatusOK, dto.ToDishResponse(dish))
}

// listDishes godoc
// @Summary List dishes
// @Tags dish
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   pageSize query int false "Page size" default(10)
// @Param   name query string false "Name contains"
// @Param   categoryId query int false "Category ID"
// @Param   status query int false "0 disabled, 1 enabled"
// @Success 200 {object} dto.PageResponse[dto.DishResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /dish/page [get]
func (h *dishHandler) listDishes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.DishPageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query params for ListDishes", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.dishService.ListDishes(c.Request.Context(), query.ToDomain())
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to list dishes")
		return
	}

	c.JSON(http.StatusOK, dto.ToPageResponse(page, dto.ToDishResponse))
}

// updateDish godoc
// @Summary Update a dish
// @Tags dish
// @Accept  json
// @Produce  json
// @Param   id path int true "Dish ID"
// @Param   dish body dto.UpdateDishRequest true "Dish details"
// @Success 200 {object} dto.DishResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /dish/{id} [put]
func (h *dishHandler) updateDish(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dishID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDish", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	dish, err := h.dishService.UpdateDish(c.Request.Context(), dishID, req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to update dish")
		return
	}

	c.JSON(http.StatusOK, dto.ToDishResponse(dish))
}

// setDishStatus godoc
// @Summary Put a dish on or off sale
// @Tags dish
// @Param   status path int true "1 to enable, 0 to disable"
// @Param   id query int true "Dish ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /dish/status/{status} [post]
func (h *dishHandler) setDishStatus(c *gin.Context) {
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

	if err := h.dishService.SetDishStatus(c.Request.Context(), query.ID, status); err != nil {
		respondWithServiceError(c, logger, err, "Failed to set dish status")
		return
	}

	c.Status(http.StatusNoContent)
}
