// Package autofill populates audit fields on entities right before they are
// written. Repository decorators call Fill for every write tagged as an
// insert or an update.
package autofill

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/SscSPs/sky_delivery_backend/internal/apperrors"
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	"github.com/SscSPs/sky_delivery_backend/internal/middleware"
)

// Filler sets CreateTime/CreateUser/UpdateTime/UpdateUser on entities.
// It holds no per-call state and is safe for concurrent use.
type Filler struct {
	now    func() time.Time
	strict bool
}

// Option configures a Filler.
type Option func(*Filler)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(f *Filler) {
		if now != nil {
			f.now = now
		}
	}
}

// WithStrict controls whether fill failures are returned (true, the default)
// or logged and dropped so the write goes ahead with whatever was filled.
func WithStrict(strict bool) Option {
	return func(f *Filler) {
		f.strict = strict
	}
}

// New creates a Filler. It is strict and uses time.Now unless configured otherwise.
func New(opts ...Option) *Filler {
	f := &Filler{now: time.Now, strict: true}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fill populates the audit fields of args[0] for the given operation.
// An empty args is a no-op. The actor is the employee attached to ctx.
func (f *Filler) Fill(ctx context.Context, kind domain.OperationType, args ...any) error {
	if len(args) == 0 {
		return nil
	}

	err := f.fill(ctx, kind, args[0])
	if err == nil || f.strict {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Error("Audit field fill failed, continuing with write",
		slog.String("operation", string(kind)),
		slog.String("entity_type", fmt.Sprintf("%T", args[0])),
		slog.String("error", err.Error()),
	)
	return nil
}

func (f *Filler) fill(ctx context.Context, kind domain.OperationType, target any) error {
	entity, ok := target.(domain.Auditable)
	if !ok || isNilPointer(target) {
		return fmt.Errorf("%w: %T", apperrors.ErrSchemaMismatch, target)
	}

	if kind != domain.OperationInsert && kind != domain.OperationUpdate {
		return fmt.Errorf("%w: unknown operation type %q", apperrors.ErrValidation, kind)
	}

	employeeID, ok := middleware.GetEmployeeIDFromCtx(ctx)
	if !ok {
		return apperrors.ErrMissingActorContext
	}

	now := f.now()
	if kind == domain.OperationInsert {
		entity.SetCreateTime(now)
		entity.SetCreateUser(employeeID)
	}
	entity.SetUpdateTime(now)
	entity.SetUpdateUser(employeeID)
	return nil
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Wrap returns next preceded by a Fill of its entity argument. When Fill
// fails next is not called.
func Wrap[T any](f *Filler, kind domain.OperationType, next func(context.Context, T) error) func(context.Context, T) error {
	return func(ctx context.Context, entity T) error {
		if err := f.Fill(ctx, kind, entity); err != nil {
			return fmt.Errorf("failed to fill audit fields: %w", err)
		}
		return next(ctx, entity)
	}
}
