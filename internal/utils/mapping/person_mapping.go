package mapping

import (
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/SscSPs/invoice_management_app/internal/models"
)

// ToModelPerson converts a domain Person to a model Person
func ToModelPerson(d domain.Person) models.Person {
	return models.Person{
		PersonID:             d.PersonID,
		Name:                 d.Name,
		IdentificationNumber: d.IdentificationNumber,
		TaxNumber:            d.TaxNumber,
		AccountNumber:        d.AccountNumber,
		BankCode:             d.BankCode,
		IBAN:                 d.IBAN,
		Telephone:            d.Telephone,
		Mail:                 d.Mail,
		Street:               d.Street,
		Zip:                  d.Zip,
		City:                 d.City,
		Country:              string(d.Country),
		Note:                 d.Note,
		Hidden:               d.Hidden,
	}
}

// ToDomainPerson converts a model Person to a domain Person
func ToDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		PersonID:             m.PersonID,
		Name:                 m.Name,
		IdentificationNumber: m.IdentificationNumber,
		TaxNumber:            m.TaxNumber,
		AccountNumber:        m.AccountNumber,
		BankCode:             m.BankCode,
		IBAN:                 m.IBAN,
		Telephone:            m.Telephone,
		Mail:                 m.Mail,
		Street:               m.Street,
		Zip:                  m.Zip,
		City:                 m.City,
		Country:              domain.Country(m.Country),
		Note:                 m.Note,
		Hidden:               m.Hidden,
	}
}

// ToDomainPersonSlice converts a slice of model Persons to a slice of domain Persons
func ToDomainPersonSlice(ms []models.Person) []domain.Person {
	ds := make([]domain.Person, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPerson(m)
	}
	return ds
}
