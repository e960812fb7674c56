package mapping

import (
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	"github.com/SscSPs/sky_delivery_backend/internal/models"
)

func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		ID:           d.ID,
		Name:         d.Name,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Phone:        d.Phone,
		Sex:          d.Sex,
		IDNumber:     d.IDNumber,
		Status:       d.Status,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		ID:           m.ID,
		Name:         m.Name,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Phone:        m.Phone,
		Sex:          m.Sex,
		IDNumber:     m.IDNumber,
		Status:       m.Status,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
