package services

import (
	"context"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/SscSPs/invoice_management_app/internal/dto"
)

// PersonReaderSvc defines read operations for persons
type PersonReaderSvc interface {
	// ListPersons returns every visible person ordered by ID.
	ListPersons(ctx context.Context) ([]domain.Person, error)

	// GetPersonByID returns a person regardless of its hidden flag.
	GetPersonByID(ctx context.Context, personID int64) (*domain.Person, error)

	// GetPersonStatistics returns the revenue of every visible person.
	GetPersonStatistics(ctx context.Context) ([]domain.PersonStatistic, error)
}

// PersonWriterSvc defines write operations for persons
type PersonWriterSvc interface {
	// CreatePerson stores a new person and returns it with its assigned ID.
	CreatePerson(ctx context.Context, req dto.PersonRequest) (*domain.Person, error)

	// UpdatePerson supersedes a person with a new version and returns it.
	UpdatePerson(ctx context.Context, personID int64, req dto.PersonRequest) (*domain.Person, error)

	// DeletePerson hides a person. Hiding an already hidden person succeeds.
	DeletePerson(ctx context.Context, personID int64) error
}

// PersonSvcFacade combines all person-related service interfaces
type PersonSvcFacade interface {
	PersonReaderSvc
	PersonWriterSvc
}
