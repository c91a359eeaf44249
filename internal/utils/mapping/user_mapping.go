package mapping

import (
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/SscSPs/invoice_management_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	roles := make([]string, len(d.Roles))
	for i, r := range d.Roles {
		roles[i] = string(r)
	}
	return models.User{
		UserID:            d.UserID,
		Email:             d.Email,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		PasswordHash:      d.PasswordHash,
		AuthProvider:      string(d.AuthProvider),
		ProviderUserID:    d.ProviderUserID,
		Roles:             roles,
		AccessFailedCount: d.AccessFailedCount,
		LockoutEnd:        d.LockoutEnd,
		CreatedAt:         d.CreatedAt,
		LastUpdatedAt:     d.LastUpdatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	roles := make([]domain.Role, len(m.Roles))
	for i, r := range m.Roles {
		roles[i] = domain.Role(r)
	}
	return domain.User{
		UserID:            m.UserID,
		Email:             m.Email,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		PasswordHash:      m.PasswordHash,
		AuthProvider:      domain.AuthProvider(m.AuthProvider),
		ProviderUserID:    m.ProviderUserID,
		Roles:             roles,
		AccessFailedCount: m.AccessFailedCount,
		LockoutEnd:        m.LockoutEnd,
		CreatedAt:         m.CreatedAt,
		LastUpdatedAt:     m.LastUpdatedAt,
	}
}
