package mapping

import (
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	"github.com/SscSPs/sky_delivery_backend/internal/models"
)

func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		ID:          d.ID,
		Type:        int(d.Type),
		Name:        d.Name,
		Sort:        d.Sort,
		Status:      d.Status,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		ID:          m.ID,
		Type:        domain.CategoryType(m.Type),
		Name:        m.Name,
		Sort:        m.Sort,
		Status:      m.Status,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
