package dto

import (
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
)

// PersonRequest defines the data needed to create or update a person.
// On update the identification number is ignored and the original one is kept.
type PersonRequest struct {
	Name                 string         `json:"name" binding:"required,min=2,max=100"`
	IdentificationNumber string         `json:"identificationNumber" binding:"required,len=8"`
	TaxNumber            string         `json:"taxNumber" binding:"required,min=4,max=20"`
	AccountNumber        string         `json:"accountNumber" binding:"required,min=2,max=16"`
	BankCode             string         `json:"bankCode" binding:"required,len=4"`
	IBAN                 string         `json:"iban" binding:"required,len=24"`
	Telephone            string         `json:"telephone" binding:"required,max=20,phone"`
	Mail                 string         `json:"mail" binding:"required,email"`
	Street               string         `json:"street" binding:"required,max=50"`
	Zip                  string         `json:"zip" binding:"required,min=4,max=6"`
	City                 string         `json:"city" binding:"required,max=30"`
	Country              domain.Country `json:"country" binding:"required,oneof=CZECHIA SLOVAKIA"`
	Note                 string         `json:"note" binding:"max=150"`
}

// ToDomain converts the request into a visible domain.Person without an ID.
func (r PersonRequest) ToDomain() domain.Person {
	return domain.Person{
		Name:                 r.Name,
		IdentificationNumber: r.IdentificationNumber,
		TaxNumber:            r.TaxNumber,
		AccountNumber:        r.AccountNumber,
		BankCode:             r.BankCode,
		IBAN:                 r.IBAN,
		Telephone:            r.Telephone,
		Mail:                 r.Mail,
		Street:               r.Street,
		Zip:                  r.Zip,
		City:                 r.City,
		Country:              r.Country,
		Note:                 r.Note,
	}
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	PersonID             int64          `json:"_id"`
	Name                 string         `json:"name"`
	IdentificationNumber string         `json:"identificationNumber"`
	TaxNumber            string         `json:"taxNumber"`
	AccountNumber        string         `json:"accountNumber"`
	BankCode             string         `json:"bankCode"`
	IBAN                 string         `json:"iban"`
	Telephone            string         `json:"telephone"`
	Mail                 string         `json:"mail"`
	Street               string         `json:"street"`
	Zip                  string         `json:"zip"`
	City                 string         `json:"city"`
	Country              domain.Country `json:"country"`
	Note                 string         `json:"note"`
	Hidden               bool           `json:"hidden"`
}

// ToPersonResponse converts a domain.Person to PersonResponse DTO
func ToPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{
		PersonID:             p.PersonID,
		Name:                 p.Name,
		IdentificationNumber: p.IdentificationNumber,
		TaxNumber:            p.TaxNumber,
		AccountNumber:        p.AccountNumber,
		BankCode:             p.BankCode,
		IBAN:                 p.IBAN,
		Telephone:            p.Telephone,
		Mail:                 p.Mail,
		Street:               p.Street,
		Zip:                  p.Zip,
		City:                 p.City,
		Country:              p.Country,
		Note:                 p.Note,
		Hidden:               p.Hidden,
	}
}

// ToListPersonResponse converts a slice of domain.Person to a slice of PersonResponse DTOs
func ToListPersonResponse(persons []domain.Person) []PersonResponse {
	res := make([]PersonResponse, len(persons))
	for i := range persons {
		res[i] = ToPersonResponse(&persons[i])
	}
	return res
}
