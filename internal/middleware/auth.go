package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/sky_delivery_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates admin JWT tokens.
// The token is read from tokenHeader first and from "Authorization: Bearer" otherwise.
// Requests whose path is listed in publicPaths skip authentication.
func AuthMiddleware(jwtSecret, tokenHeader string, publicPaths ...string) gin.HandlerFunc {
	public := make(map[string]bool, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = true
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		if public[c.Request.URL.Path] {
			c.Next()
			return
		}

		tokenString, ok := extractToken(c, tokenHeader)
		if !ok {
			logger.Warn("Admin token missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		employeeID, err := utils.ParseEmployeeJWT(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			} else if errors.Is(err, utils.ErrInvalidSubject) {
				msg = "Invalid token claims"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		ctx := WithEmployeeID(c.Request.Context(), employeeID)
		ctx = WithLogger(ctx, logger.With(slog.Int64("employee_id", employeeID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func extractToken(c *gin.Context, tokenHeader string) (string, bool) {
	if tokenHeader != "" {
		if v := strings.TrimSpace(c.GetHeader(tokenHeader)); v != "" {
			return v, true
		}
	}
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
