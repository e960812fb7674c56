package mapping

import (
	"github.com/SscSPs/sky_delivery_backend/internal/core/domain"
	"github.com/SscSPs/sky_delivery_backend/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreateTime: d.CreateTime,
		CreateUser: d.CreateUser,
		UpdateTime: d.UpdateTime,
		UpdateUser: d.UpdateUser,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreateTime: m.CreateTime,
		CreateUser: m.CreateUser,
		UpdateTime: m.UpdateTime,
		UpdateUser: m.UpdateUser,
	}
}
