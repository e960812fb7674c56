package pgsql

import (
	"github.com/SscSPs/sky_delivery_backend/internal/core/autofill"
	portsrepo "github.com/SscSPs/sky_delivery_backend/internal/core/ports/repositories"
	"github.com/SscSPs/sky_delivery_backend/internal/repositories/audited"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the pgx repositories and wraps every one of
// them so audited writes get their audit fields filled by filler.
func NewRepositoryProvider(dbPool *pgxpool.Pool, filler *autofill.Filler) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo: audited.NewEmployeeRepository(newPgxEmployeeRepository(dbPool), filler),
		CategoryRepo: audited.NewCategoryRepository(newPgxCategoryRepository(dbPool), filler),
		DishRepo:     audited.NewDishRepository(newPgxDishRepository(dbPool), filler),
	}
}
