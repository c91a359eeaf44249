package repositories

import (
	"context"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
)

// PersonReader defines read operations for person data
type PersonReader interface {
	// FindPersons retrieves all persons with the given hidden flag, ordered by ID.
	FindPersons(ctx context.Context, hidden bool) ([]domain.Person, error)

	// FindPersonByID retrieves a person regardless of its hidden flag.
	FindPersonByID(ctx context.Context, personID int64) (*domain.Person, error)

	// CountPersons returns the number of stored person rows.
	CountPersons(ctx context.Context) (int64, error)
}

// PersonWriter defines write operations for person data
type PersonWriter interface {
	// SavePerson inserts a new person and returns it with its assigned ID.
	SavePerson(ctx context.Context, person domain.Person) (*domain.Person, error)

	// MarkPersonHidden sets the hidden flag. It succeeds on an already hidden person.
	MarkPersonHidden(ctx context.Context, personID int64) error

	// ReplacePerson atomically inserts the new version of a person and hides the original.
	// It returns ErrNotFound for an unknown ID and ErrConflict if the original is already hidden.
	ReplacePerson(ctx context.Context, personID int64, replacement domain.Person) (*domain.Person, error)
}

// PersonStatisticsReader defines aggregate queries over persons
type PersonStatisticsReader interface {
	// GetPersonStatistics returns the revenue of every visible person.
	GetPersonStatistics(ctx context.Context) ([]domain.PersonStatistic, error)
}

// PersonRepositoryFacade combines all person-related repository interfaces
type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
	PersonStatisticsReader
}
