package autofill_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/sky_delivery_backend/internal/apperrors"
	"github.com/SscSPs/sky_delivery_backend/internal/core/autofill"
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	"github.com/SscSPs/sky_delivery_backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickingClock returns a later time on every call, so a filler that read the
// clock more than once per Fill would produce mismatched timestamps.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := current
		current = current.Add(time.Second)
		return t
	}
}

func TestFill_InsertSetsAllFields(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	f := autofill.New(autofill.WithClock(tickingClock(t1)))
	ctx := middleware.WithEmployeeID(context.Background(), 1)

	e := &domain.Employee{Name: "Zhang San"}
	require.NoError(t, f.Fill(ctx, domain.OperationInsert, e))

	assert.Equal(t, t1, e.CreateTime)
	assert.Equal(t, t1, e.UpdateTime)
	assert.Equal(t, int64(1), e.CreateUser)
	assert.Equal(t, int64(1), e.UpdateUser)
	assert.Equal(t, "Zhang San", e.Name)
}

func TestFill_UpdateLeavesCreateFieldsUntouched(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	f := autofill.New(autofill.WithClock(func() time.Time { return t2 }))
	ctx := middleware.WithEmployeeID(context.Background(), 2)

	c := &domain.Category{
		Name:        "Drinks",
		AuditFields: domain.AuditFields{CreateTime: t0, CreateUser: 7},
	}
	require.NoError(t, f.Fill(ctx, domain.OperationUpdate, c))

	assert.Equal(t, t0, c.CreateTime)
	assert.Equal(t, int64(7), c.CreateUser)
	assert.Equal(t, t2, c.UpdateTime)
	assert.Equal(t, int64(2), c.UpdateUser)
}

func TestFill_EmptyArgsIsNoop(t *testing.T) {
	f := autofill.New()
	assert.NoError(t, f.Fill(context.Background(), domain.OperationInsert))
}

func TestFill_OnlyFirstArgumentIsFilled(t *testing.T) {
	f := autofill.New()
	ctx := middleware.WithEmployeeID(context.Background(), 3)

	first, second := &domain.Dish{}, &domain.Dish{}
	require.NoError(t, f.Fill(ctx, domain.OperationInsert, first, second))

	assert.Equal(t, int64(3), first.CreateUser)
	assert.Zero(t, second.CreateUser)
	assert.True(t, second.UpdateTime.IsZero())
}

func TestFill_Errors(t *testing.T) {
	ctx := middleware.WithEmployeeID(context.Background(), 1)

	tests := []struct {
		name    string
		ctx     context.Context
		kind    domain.OperationType
		arg     any
		wantErr error
	}{
		{name: "value without setters", ctx: ctx, kind: domain.OperationInsert, arg: domain.Employee{}, wantErr: apperrors.ErrSchemaMismatch},
		{name: "unrelated type", ctx: ctx, kind: domain.OperationUpdate, arg: "not an entity", wantErr: apperrors.ErrSchemaMismatch},
		{name: "nil entity pointer", ctx: ctx, kind: domain.OperationInsert, arg: (*domain.Employee)(nil), wantErr: apperrors.ErrSchemaMismatch},
		{name: "nil argument", ctx: ctx, kind: domain.OperationInsert, arg: nil, wantErr: apperrors.ErrSchemaMismatch},
		{name: "unknown operation", ctx: ctx, kind: domain.OperationType("DELETE"), arg: &domain.Employee{}, wantErr: apperrors.ErrValidation},
		{name: "no actor", ctx: context.Background(), kind: domain.OperationInsert, arg: &domain.Employee{}, wantErr: apperrors.ErrMissingActorContext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := autofill.New().Fill(tt.ctx, tt.kind, tt.arg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFill_MissingActorLeavesEntityUntouched(t *testing.T) {
	e := &domain.Employee{}
	err := autofill.New().Fill(context.Background(), domain.OperationInsert, e)

	require.ErrorIs(t, err, apperrors.ErrMissingActorContext)
	assert.Equal(t, domain.AuditFields{}, e.AuditFields)
}

func TestFill_LenientModeSwallowsErrors(t *testing.T) {
	f := autofill.New(autofill.WithStrict(false))

	assert.NoError(t, f.Fill(context.Background(), domain.OperationInsert, &domain.Employee{}))
	assert.NoError(t, f.Fill(context.Background(), domain.OperationInsert, struct{}{}))
}

func TestFill_ConcurrentActorsDoNotMix(t *testing.T) {
	f := autofill.New()
	const workers = 64

	entities := make([]*domain.Employee, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		entities[i] = &domain.Employee{}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx := middleware.WithEmployeeID(context.Background(), int64(i+1))
			assert.NoError(t, f.Fill(ctx, domain.OperationInsert, entities[i]))
		}(i)
	}
	wg.Wait()

	for i, e := range entities {
		assert.Equal(t, int64(i+1), e.CreateUser)
		assert.Equal(t, int64(i+1), e.UpdateUser)
		assert.Equal(t, e.CreateTime, e.UpdateTime)
	}
}

func TestWrap(t *testing.T) {
	fixed := time.Date(2024, 5, 5, 5, 5, 0, 0, time.UTC)
	f := autofill.New(autofill.WithClock(func() time.Time { return fixed }))

	t.Run("fills before calling next", func(t *testing.T) {
		var seen domain.AuditFields
		save := autofill.Wrap(f, domain.OperationInsert, func(_ context.Context, e *domain.Employee) error {
			seen = e.AuditFields
			return nil
		})

		e := &domain.Employee{}
		require.NoError(t, save(middleware.WithEmployeeID(context.Background(), 9), e))
		assert.Equal(t, domain.AuditFields{CreateTime: fixed, CreateUser: 9, UpdateTime: fixed, UpdateUser: 9}, seen)
	})

	t.Run("does not call next when fill fails", func(t *testing.T) {
		called := false
		save := autofill.Wrap(f, domain.OperationInsert, func(_ context.Context, _ *domain.Employee) error {
			called = true
			return nil
		})

		err := save(context.Background(), &domain.Employee{})
		assert.ErrorIs(t, err, apperrors.ErrMissingActorContext)
		assert.False(t, called)
	})

	t.Run("returns next error", func(t *testing.T) {
		wantErr := errors.New("db down")
		save := autofill.Wrap(f, domain.OperationUpdate, func(_ context.Context, _ *domain.Dish) error {
			return wantErr
		})

		err := save(middleware.WithEmployeeID(context.Background(), 1), &domain.Dish{})
		assert.ErrorIs(t, err, wantErr)
	})
}
