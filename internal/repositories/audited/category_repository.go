package audited

import (
	"context"

	"github.com/SscSPs/sky_delivery_backend/internal/core/autofill"
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sky_delivery_backend/internal/core/ports/repositories"
)

// CategoryRepository fills audit fields on category writes. DeleteCategory is not audited.
type CategoryRepository struct {
	portsrepo.CategoryRepositoryFacade
	filler *autofill.Filler
}

func NewCategoryRepository(next portsrepo.CategoryRepositoryFacade, filler *autofill.Filler) *CategoryRepository {
	return &CategoryRepository{CategoryRepositoryFacade: next, filler: filler}
}

var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

func (r *CategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	return autofill.Wrap(r.filler, domain.OperationInsert, r.CategoryRepositoryFacade.SaveCategory)(ctx, category)
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return autofill.Wrap(r.filler, domain.OperationUpdate, r.CategoryRepositoryFacade.UpdateCategory)(ctx, category)
}

func (r *CategoryRepository) UpdateCategoryStatus(ctx context.Context, category *domain.Category) error {
	return autofill.Wrap(r.filler, domain.OperationUpdate, r.CategoryRepositoryFacade.UpdateCategoryStatus)(ctx, category)
}
