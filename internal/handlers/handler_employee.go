package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/sky_delivery_backend/internal/core/ports/services"
	"github.com/SscSPs/sky_delivery_backend/internal/dto"
	"github.com/SscSPs/sky_delivery_backend/internal/middleware"
	"github.com/SscSPs/sky_delivery_backend/internal/platform/config"
	"github.com/SscSPs/sky_delivery_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
	jwtSecret       string
	jwtDuration     time.Duration
	jwtIssuer       string
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade, cfg *config.Config) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
		jwtSecret:       cfg.JWTSecret,
		jwtDuration:     cfg.JWTExpiryDuration,
		jwtIssuer:       cfg.JWTIssuer,
	}
}

// registerEmployeeRoutes registers routes related to employees.
// loginLimit is applied to the login route only.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, cfg *config.Config, loginLimit gin.HandlerFunc) {
	h := newEmployeeHandler(employeeService, cfg)

	employees := rg.Group("/employee")
	{
		employees.POST("/login", loginLimit, h.login)
		employees.POST("/logout", h.logout)
		employees.POST("", h.createEmployee)
		employees.GET("/page", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.POST("/status/:status", h.setEmployeeStatus)
	}
}

// login godoc
// @Summary Employee login
// @Description Authenticates an employee and returns a JWT token.
// @Tags employee
// @Accept json
// @Produce json
// @Param login body dto.EmployeeLoginRequest true "Login Credentials"
// @Success 200 {object} dto.EmployeeLoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Account disabled"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /employee/login [post]
func (h *employeeHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EmployeeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	employee, err := h.employeeService.Login(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to log in")
		return
	}

	token, _, err := utils.GenerateEmployeeJWT(employee.ID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.EmployeeLoginResponse{
		ID:       employee.ID,
		Username: employee.Username,
		Name:     employee.Name,
		Token:    token,
	})
}

// logout godoc
// @Summary Employee logout
// @Description Tokens are stateless, the client discards its token.
// @Tags employee
// @Success 204 "No Content"
// @Security AdminToken
// @Router /employee/logout [post]
func (h *employeeHandler) logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// createEmployee godoc
// @Summary Create a new employee
// @Description Creates an enabled employee with the default password
// @Tags employee
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username already exists"
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /employee [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create employee", slog.String("username", req.Username))
	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags employee
// @Produce  json
// @Param   id path int true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /employee/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to retrieve employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Description Pages through employees, optionally filtered by name
// @Tags employee
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   pageSize query int false "Page size" default(10)
// @Param   name query string false "Name contains"
// @Success 200 {object} dto.PageResponse[dto.EmployeeResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /employee/page [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.EmployeePageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query params for ListEmployees", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.employeeService.ListEmployees(c.Request.Context(), query.ToDomain())
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToPageResponse(page, dto.ToEmployeeResponse))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Updates profile fields. Password and status are not changed.
// @Tags employee
// @Accept  json
// @Produce  json
// @Param   id path int true "Employee ID"
// @Param   employee body dto.UpdateEmployeeRequest true "Employee details"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /employee/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("target_employee_id", employeeID))
	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to update employee")
		return
	}

	logger.Info("Employee updated successfully")
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// setEmployeeStatus godoc
// @Summary Enable or disable an employee
// @Tags employee
// @Param   status path int true "1 to enable, 0 to disable"
// @Param   id query int true "Employee ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security AdminToken
// @Router /employee/status/{status} [post]
func (h *employeeHandler) setEmployeeStatus(c *gin.Context) {
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

	if err := h.employeeService.SetEmployeeStatus(c.Request.Context(), query.ID, status); err != nil {
		respondWithServiceError(c, logger, err, "Failed to set employee status")
		return
	}

	logger.Info("Employee status changed", slog.Int64("target_employee_id", query.ID), slog.Int("status", status))
	c.Status(http.StatusNoContent)
}
