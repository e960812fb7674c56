package audited

import (
	"context"

	"github.com/SscSPs/sky_delivery_backend/internal/core/autofill"
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sky_delivery_backend/internal/core/ports/repositories"
)

// EmployeeRepository fills audit fields on employee writes.
type EmployeeRepository struct {
	portsrepo.EmployeeRepositoryFacade
	filler *autofill.Filler
}

// NewEmployeeRepository wraps next.
func NewEmployeeRepository(next portsrepo.EmployeeRepositoryFacade, filler *autofill.Filler) *EmployeeRepository {
	return &EmployeeRepository{EmployeeRepositoryFacade: next, filler: filler}
}

var _ portsrepo.EmployeeRepositoryFacade = (*EmployeeRepository)(nil)

func (r *EmployeeRepository) SaveEmployee(ctx context.Context, employee *domain.Employee) error {
	return autofill.Wrap(r.filler, domain.OperationInsert, r.EmployeeRepositoryFacade.SaveEmployee)(ctx, employee)
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, employee *domain.Employee) error {
	return autofill.Wrap(r.filler, domain.OperationUpdate, r.EmployeeRepositoryFacade.UpdateEmployee)(ctx, employee)
}

func (r *EmployeeRepository) UpdateEmployeeStatus(ctx context.Context, employee *domain.Employee) error {
	return autofill.Wrap(r.filler, domain.OperationUpdate, r.EmployeeRepositoryFacade.UpdateEmployeeStatus)(ctx, employee)
}
