package mapping

import (
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	"github.com/SscSPs/sky_delivery_backend/internal/models"
)

func ToModelDish(d domain.Dish) models.Dish {
	return models.Dish{
		ID:          d.ID,
		Name:        d.Name,
		CategoryID:  d.CategoryID,
		Price:       d.Price,
		Image:       d.Image,
		Description: d.Description,
		Status:      d.Status,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainDish(m models.Dish) domain.Dish {
	return domain.Dish{
		ID:          m.ID,
		Name:        m.Name,
		CategoryID:  m.CategoryID,
		Price:       m.Price,
		Image:       m.Image,
		Description: m.Description,
		Status:      m.Status,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainDishSlice(ms []models.Dish) []domain.Dish {
	ds := make([]domain.Dish, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDish(m)
	}
	return ds
}
