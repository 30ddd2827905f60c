package mapping

import (
	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	"github.com/hlmsouza/home_ledger_app/internal/models"
)

// ToModelPersonUser converts a domain PersonUser to a model PersonUser.
func ToModelPersonUser(d domain.PersonUser) models.PersonUser {
	return models.PersonUser{
		PersonUserID: d.PersonUserID,
		Email:        d.Email,
		AuthUserID:   d.AuthUserID,
		Name:         d.Name,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPersonUser converts a model PersonUser to a domain PersonUser.
func ToDomainPersonUser(m models.PersonUser) domain.PersonUser {
	return domain.PersonUser{
		PersonUserID: m.PersonUserID,
		Email:        m.Email,
		AuthUserID:   m.AuthUserID,
		Name:         m.Name,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
