package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/sky_delivery_backend/internal/middleware"
	"github.com/SscSPs/sky_delivery_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// newAuthRouter echoes the employee ID the auth middleware put on the request context.
func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret, "token", "/admin/employee/login"))
	echo := func(c *gin.Context) {
		id, ok := middleware.GetEmployeeIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"employee_id": id, "authenticated": ok})
	}
	r.GET("/admin/employee/1", echo)
	r.POST("/admin/employee/login", echo)
	return r
}

func signedToken(t *testing.T, employeeID int64, expiry time.Duration) string {
	token, _, err := utils.GenerateEmployeeJWT(employeeID, testSecret, expiry, "test")
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	router := newAuthRouter()

	tests := []struct {
		name     string
		method   string
		path     string
		headers  map[string]string
		wantCode int
		wantBody string
	}{
		{name: "token header", method: http.MethodGet, path: "/admin/employee/1", headers: map[string]string{"token": signedToken(t, 5, time.Hour)}, wantCode: http.StatusOK, wantBody: `{"employee_id":5,"authenticated":true}`},
		{name: "bearer header", method: http.MethodGet, path: "/admin/employee/1", headers: map[string]string{"Authorization": "Bearer " + signedToken(t, 6, time.Hour)}, wantCode: http.StatusOK, wantBody: `{"employee_id":6,"authenticated":true}`},
		{name: "missing token", method: http.MethodGet, path: "/admin/employee/1", wantCode: http.StatusUnauthorized, wantBody: `{"error":"Authorization token required"}`},
		{name: "malformed bearer", method: http.MethodGet, path: "/admin/employee/1", headers: map[string]string{"Authorization": "Token abc"}, wantCode: http.StatusUnauthorized, wantBody: `{"error":"Authorization token required"}`},
		{name: "expired", method: http.MethodGet, path: "/admin/employee/1", headers: map[string]string{"token": signedToken(t, 5, -time.Minute)}, wantCode: http.StatusUnauthorized, wantBody: `{"error":"Token has expired"}`},
		{name: "garbage", method: http.MethodGet, path: "/admin/employee/1", headers: map[string]string{"token": "abc.def.ghi"}, wantCode: http.StatusUnauthorized, wantBody: `{"error":"Invalid token"}`},
		{name: "public login path", method: http.MethodPost, path: "/admin/employee/login", wantCode: http.StatusOK, wantBody: `{"employee_id":0,"authenticated":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestEmployeeIDContext(t *testing.T) {
	_, ok := middleware.GetEmployeeIDFromCtx(context.Background())
	assert.False(t, ok)

	id, ok := middleware.GetEmployeeIDFromCtx(middleware.WithEmployeeID(context.Background(), 9))
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)
}

func TestStructuredLoggingMiddleware_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slogDiscard()))
	r.GET("/ping", func(c *gin.Context) {
		assert.NotNil(t, middleware.GetLoggerFromCtx(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewMemoryLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/login", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = middleware.NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
