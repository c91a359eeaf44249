package repositories

import (
	"context"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data.
// Returned invoices have Buyer and Seller populated.
type InvoiceReader interface {
	// FindInvoices retrieves invoices matching all set predicates of the filter.
	FindInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)

	// FindInvoiceByID retrieves a single invoice.
	FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error)

	// FindInvoicesByIdentification retrieves the invoices where a person with the given
	// identification number acts as subject, newest issue date first.
	FindInvoicesByIdentification(ctx context.Context, identificationNumber string, subject domain.Subject, limit int) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice inserts a new invoice and returns its assigned ID.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) (int64, error)

	// UpdateInvoice updates the scalar fields of an invoice. Buyer and seller are left untouched.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice physically removes an invoice.
	DeleteInvoice(ctx context.Context, invoiceID int64) error
}

// InvoiceStatisticsReader defines aggregate queries over invoices
type InvoiceStatisticsReader interface {
	// GetInvoiceStatistics aggregates prices for the given calendar year and overall.
	GetInvoiceStatistics(ctx context.Context, year int) (*domain.InvoiceStatistics, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
	InvoiceStatisticsReader
}
