package handlers

import (
	"net/http"

	"github.com/SscSPs/sky_delivery_backend/cmd/docs"
	portssvc "github.com/SscSPs/sky_delivery_backend/internal/core/ports/services"
	"github.com/SscSPs/sky_delivery_backend/internal/middleware"
	"github.com/SscSPs/sky_delivery_backend/internal/platform/config"
	"github.com/SscSPs/sky_delivery_backend/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// employeeLoginPath is the only admin route reachable without a token.
const employeeLoginPath = "/admin/employee/login"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupAdminRoutes(r, cfg, services, posthogClient); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAdminRoutes configures the /admin group and delegates to specific entity route registrations
func setupAdminRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	admin := r.Group("/admin",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.AdminTokenName, employeeLoginPath),
		middleware.PosthogMiddleware(posthogClient),
	)

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}

	registerEmployeeRoutes(admin, services.Employee, cfg, middleware.RateLimit(loginLimiter))
	registerCategoryRoutes(admin, services.Category)
	registerDishRoutes(admin, services.Dish)
	registerCommonRoutes(admin, services.Upload, cfg.Storage.MaxUploadBytes)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/admin"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// old admin front ends link to knife4j's /doc.html
	r.GET("/doc.html", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
}
