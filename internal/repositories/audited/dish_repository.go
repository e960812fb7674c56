package audited

import (
	"context"

	"github.com/SscSPs/sky_delivery_backend/internal/core/autofill"
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sky_delivery_backend/internal/core/ports/repositories"
)

// DishRepository fills audit fields on dish writes.
type DishRepository struct {
	portsrepo.DishRepositoryFacade
	filler *autofill.Filler
}

func NewDishRepository(next portsrepo.DishRepositoryFacade, filler *autofill.Filler) *DishRepository {
	return &DishRepository{DishRepositoryFacade: next, filler: filler}
}

var _ portsrepo.DishRepositoryFacade = (*DishRepository)(nil)

func (r *DishRepository) SaveDish(ctx context.Context, dish *domain.Dish) error {
	return autofill.Wrap(r.filler, domain.OperationInsert, r.DishRepositoryFacade.SaveDish)(ctx, dish)
}

func (r *DishRepository) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	return autofill.Wrap(r.filler, domain.OperationUpdate, r.DishRepositoryFacade.UpdateDish)(ctx, dish)
}

func (r *DishRepository) UpdateDishStatus(ctx context.Context, dish *domain.Dish) error {
	return autofill.Wrap(r.filler, domain.OperationUpdate, r.DishRepositoryFacade.UpdateDishStatus)(ctx, dish)
}
