package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoice_management_app/internal/models"
	"github.com/SscSPs/invoice_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const personColumns = `person_id, name, identification_number, tax_number, account_number, bank_code,
	iban, telephone, mail, street, zip, city, country, note, hidden`

type PgxPersonRepository struct {
	BaseRepository
}

func newPgxPersonRepository(db DBTX) *PgxPersonRepository {
	return &PgxPersonRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxPersonRepository implements portsrepo.PersonRepositoryFacade
var _ portsrepo.PersonRepositoryFacade = (*PgxPersonRepository)(nil)

func scanPerson(row rowScanner, m *models.Person) error {
	return row.Scan(
		&m.PersonID,
		&m.Name,
		&m.IdentificationNumber,
		&m.TaxNumber,
		&m.AccountNumber,
		&m.BankCode,
		&m.IBAN,
		&m.Telephone,
		&m.Mail,
		&m.Street,
		&m.Zip,
		&m.City,
		&m.Country,
		&m.Note,
		&m.Hidden,
	)
}

func insertPerson(ctx context.Context, q querier, m models.Person) (int64, error) {
	query := `
		INSERT INTO persons (name, identification_number, tax_number, account_number, bank_code, iban,
			telephone, mail, street, zip, city, country, note, hidden)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING person_id;
	`
	var id int64
	err := q.QueryRow(ctx, query,
		m.Name,
		m.IdentificationNumber,
		m.TaxNumber,
		m.AccountNumber,
		m.BankCode,
		m.IBAN,
		m.Telephone,
		m.Mail,
		m.Street,
		m.Zip,
		m.City,
		m.Country,
		m.Note,
		m.Hidden,
	).Scan(&id)
	if err != nil {
		return 0, wrapPgError("failed to insert person", err)
	}
	return id, nil
}

func (r *PgxPersonRepository) FindPersons(ctx context.Context, hidden bool) ([]domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE hidden = $1 ORDER BY person_id;`
	rows, err := r.Pool.Query(ctx, query, hidden)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	modelPersons := []models.Person{}
	for rows.Next() {
		var m models.Person
		if err := scanPerson(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		modelPersons = append(modelPersons, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", err)
	}

	return mapping.ToDomainPersonSlice(modelPersons), nil
}

func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, personID int64) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE person_id = $1;`
	var m models.Person
	if err := scanPerson(r.Pool.QueryRow(ctx, query, personID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find person by ID %d: %w", personID, err)
	}
	person := mapping.ToDomainPerson(m)
	return &person, nil
}

func (r *PgxPersonRepository) CountPersons(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM persons;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}
	return count, nil
}

func (r *PgxPersonRepository) SavePerson(ctx context.Context, person domain.Person) (*domain.Person, error) {
	m := mapping.ToModelPerson(person)
	id, err := insertPerson(ctx, r.Pool, m)
	if err != nil {
		return nil, err
	}
	m.PersonID = id
	saved := mapping.ToDomainPerson(m)
	return &saved, nil
}

func (r *PgxPersonRepository) MarkPersonHidden(ctx context.Context, personID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE persons SET hidden = TRUE WHERE person_id = $1;`, personID)
	if err != nil {
		return fmt.Errorf("failed to mark person hidden: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("person %d: %w", personID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPersonRepository) ReplacePerson(ctx context.Context, personID int64, replacement domain.Person) (*domain.Person, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored once the transaction is committed
	defer r.Rollback(ctx, tx)

	// Lock the original so concurrent updates of the same version serialize.
	lockQuery := `SELECT ` + personColumns + ` FROM persons WHERE person_id = $1 FOR UPDATE;`
	var original models.Person
	if err := scanPerson(tx.QueryRow(ctx, lockQuery, personID), &original); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock person %d: %w", personID, err)
	}
	if original.Hidden {
		return nil, fmt.Errorf("person %d is hidden or superseded: %w", personID, apperrors.ErrConflict)
	}

	next := mapping.ToDomainPerson(original).NewVersion(replacement)
	m := mapping.ToModelPerson(next)
	newID, err := insertPerson(ctx, tx, m)
	if err != nil {
		return nil, err
	}
	m.PersonID = newID

	if _, err := tx.Exec(ctx, `UPDATE persons SET hidden = TRUE WHERE person_id = $1;`, personID); err != nil {
		return nil, fmt.Errorf("failed to hide superseded person %d: %w", personID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	saved := mapping.ToDomainPerson(m)
	return &saved, nil
}

func (r *PgxPersonRepository) GetPersonStatistics(ctx context.Context) ([]domain.PersonStatistic, error) {
	query := `
		SELECT p.person_id, p.name, COALESCE(SUM(i.price), 0) AS revenue
		FROM persons p
		LEFT JOIN invoices i ON i.seller_id = p.person_id
		WHERE p.hidden = FALSE
		GROUP BY p.person_id, p.name
		ORDER BY p.person_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query person statistics: %w", err)
	}
	defer rows.Close()

	stats := []domain.PersonStatistic{}
	for rows.Next() {
		var s domain.PersonStatistic
		if err := rows.Scan(&s.PersonID, &s.PersonName, &s.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan person statistic row: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person statistic rows: %w", err)
	}
	return stats, nil
}
