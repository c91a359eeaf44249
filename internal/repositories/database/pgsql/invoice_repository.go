package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoice_management_app/internal/models"
	"github.com/SscSPs/invoice_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// invoiceSelect joins both parties so a single row carries the whole invoice.
const invoiceSelect = `
	SELECT i.invoice_id, i.invoice_number, i.issued, i.due_date, i.product, i.price, i.note, i.buyer_id, i.seller_id,
		b.person_id, b.name, b.identification_number, b.tax_number, b.account_number, b.bank_code,
		b.iban, b.telephone, b.mail, b.street, b.zip, b.city, b.country, b.note, b.hidden,
		s.person_id, s.name, s.identification_number, s.tax_number, s.account_number, s.bank_code,
		s.iban, s.telephone, s.mail, s.street, s.zip, s.city, s.country, s.note, s.hidden
	FROM invoices i
	JOIN persons b ON b.person_id = i.buyer_id
	JOIN persons s ON s.person_id = i.seller_id`

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db DBTX) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row rowScanner) (domain.Invoice, error) {
	var m models.Invoice
	var buyer, seller models.Person
	err := row.Scan(
		&m.InvoiceID, &m.InvoiceNumber, &m.Issued, &m.DueDate, &m.Product, &m.Price, &m.Note, &m.BuyerID, &m.SellerID,
		&buyer.PersonID, &buyer.Name, &buyer.IdentificationNumber, &buyer.TaxNumber, &buyer.AccountNumber, &buyer.BankCode,
		&buyer.IBAN, &buyer.Telephone, &buyer.Mail, &buyer.Street, &buyer.Zip, &buyer.City, &buyer.Country, &buyer.Note, &buyer.Hidden,
		&seller.PersonID, &seller.Name, &seller.IdentificationNumber, &seller.TaxNumber, &seller.AccountNumber, &seller.BankCode,
		&seller.IBAN, &seller.Telephone, &seller.Mail, &seller.Street, &seller.Zip, &seller.City, &seller.Country, &seller.Note, &seller.Hidden,
	)
	if err != nil {
		return domain.Invoice{}, err
	}
	return mapping.ToDomainInvoice(m, &buyer, &seller), nil
}

func (r *PgxInvoiceRepository) queryInvoices(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

// escapeLike escapes LIKE wildcards so the product filter is a plain substring match.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildInvoiceFilterQuery composes the WHERE clause from the set predicates of the filter.
func buildInvoiceFilterQuery(filter domain.InvoiceFilter) (string, []any) {
	conditions := []string{}
	args := []any{}

	next := func() string {
		return "$" + strconv.Itoa(len(args))
	}

	if filter.BuyerID != nil {
		args = append(args, *filter.BuyerID)
		conditions = append(conditions, "i.buyer_id = "+next())
	}
	if filter.SellerID != nil {
		args = append(args, *filter.SellerID)
		conditions = append(conditions, "i.seller_id = "+next())
	}
	if filter.Product != nil && *filter.Product != "" {
		args = append(args, escapeLike(*filter.Product))
		conditions = append(conditions, "i.product ILIKE '%' || "+next()+" || '%'")
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, "i.price >= "+next())
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, "i.price <= "+next())
	}

	query := invoiceSelect
	if len(conditions) > 0 {
		query += "\n\tWHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, filter.EffectiveLimit())
	query += "\n\tORDER BY i.invoice_id LIMIT " + next() + ";"
	return query, args
}

func (r *PgxInvoiceRepository) FindInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	query, args := buildInvoiceFilterQuery(filter)
	return r.queryInvoices(ctx, query, args...)
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	query := invoiceSelect + "\n\tWHERE i.invoice_id = $1;"
	inv, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %d: %w", invoiceID, err)
	}
	return &inv, nil
}

func (r *PgxInvoiceRepository) FindInvoicesByIdentification(ctx context.Context, identificationNumber string, subject domain.Subject, limit int) ([]domain.Invoice, error) {
	var column string
	switch subject {
	case domain.SubjectSeller:
		column = "s.identification_number"
	case domain.SubjectBuyer:
		column = "b.identification_number"
	default:
		return nil, fmt.Errorf("unknown subject %q: %w", subject, apperrors.ErrValidation)
	}
	query := invoiceSelect + "\n\tWHERE " + column + " = $1\n\tORDER BY i.issued DESC, i.invoice_id DESC LIMIT $2;"
	return r.queryInvoices(ctx, query, identificationNumber, limit)
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (int64, error) {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (invoice_number, issued, due_date, product, price, note, buyer_id, seller_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING invoice_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.InvoiceNumber,
		m.Issued,
		m.DueDate,
		m.Product,
		m.Price,
		m.Note,
		m.BuyerID,
		m.SellerID,
	).Scan(&id)
	if err != nil {
		return 0, wrapPgError("failed to insert invoice", err)
	}
	return id, nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET invoice_number = $1, issued = $2, due_date = $3, product = $4, price = $5, note = $6
		WHERE invoice_id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.InvoiceNumber,
		m.Issued,
		m.DueDate,
		m.Product,
		m.Price,
		m.Note,
		m.InvoiceID,
	)
	if err != nil {
		return wrapPgError("failed to update invoice", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %d: %w", m.InvoiceID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %d: %w", invoiceID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInvoiceRepository) GetInvoiceStatistics(ctx context.Context, year int) (*domain.InvoiceStatistics, error) {
	query := `
		SELECT
			COALESCE(SUM(price) FILTER (WHERE EXTRACT(YEAR FROM issued) = $1), 0) AS current_year_sum,
			COALESCE(SUM(price), 0) AS all_time_sum,
			COUNT(*) AS invoices_count
		FROM invoices;
	`
	var stats domain.InvoiceStatistics
	err := r.Pool.QueryRow(ctx, query, year).Scan(&stats.CurrentYearSum, &stats.AllTimeSum, &stats.InvoicesCount)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice statistics: %w", err)
	}
	return &stats, nil
}
