package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sky_delivery_backend/internal/apperrors"
	"github.com/SscSPs/sky_delivery_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// validateStatus rejects anything but enabled/disabled.
func validateStatus(status int) error {
	if status != 0 && status != 1 {
		return fmt.Errorf("%w: status must be 0 or 1, got %d", apperrors.ErrValidation, status)
	}
	return nil
}
