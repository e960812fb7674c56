package pgsql

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	var empty whereBuilder
	assert.Equal(t, "", empty.String())
	clause, args := empty.page(1, 10)
	assert.Equal(t, " LIMIT $1 OFFSET $2", clause)
	assert.Equal(t, []any{10, 0}, args)

	var where whereBuilder
	where.add("name ILIKE ?", "%tofu%")
	where.add("category_id = ?", int64(3))
	where.add("status = ?", 1)

	assert.Equal(t, " WHERE name ILIKE $1 AND category_id = $2 AND status = $3", where.String())
	clause, args = where.page(3, 20)
	assert.Equal(t, " LIMIT $4 OFFSET $5", clause)
	assert.Equal(t, []any{"%tofu%", int64(3), 1, 20, 40}, args)
	assert.Len(t, where.args, 3, "page must not grow the filter arguments")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(fmt.Errorf("plain")))
}
