package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// employeeIDKey is the key used to store the authenticated employee's ID in the request context.
const employeeIDKey = contextKey("employeeID")

// WithEmployeeID returns a copy of ctx carrying the acting employee's ID.
func WithEmployeeID(ctx context.Context, employeeID int64) context.Context {
	return context.WithValue(ctx, employeeIDKey, employeeID)
}

// GetEmployeeIDFromCtx retrieves the acting employee's ID from a standard context.
func GetEmployeeIDFromCtx(ctx context.Context) (int64, bool) {
	if ctx == nil {
		return 0, false
	}
	employeeID, ok := ctx.Value(employeeIDKey).(int64)
	return employeeID, ok
}

// GetEmployeeIDFromContext retrieves the authenticated employee ID from the Gin request.
func GetEmployeeIDFromContext(c *gin.Context) (int64, bool) {
	return GetEmployeeIDFromCtx(c.Request.Context())
}
