package services

import (
	"context"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/SscSPs/invoice_management_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// ListInvoices returns invoices matching every set filter field.
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)

	// GetInvoiceByID returns an invoice with buyer and seller populated.
	GetInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error)

	// ListInvoicesByIdentification returns the newest invoices where a person with the
	// identification number acts as the given subject.
	ListInvoicesByIdentification(ctx context.Context, identificationNumber string, subject domain.Subject, limit int) ([]domain.Invoice, error)

	// GetInvoiceStatistics aggregates prices for the current year and all time.
	GetInvoiceStatistics(ctx context.Context) (*domain.InvoiceStatistics, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice stores a new invoice after checking its buyer and seller exist.
	CreateInvoice(ctx context.Context, req dto.InvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice changes the scalar fields of an invoice. Buyer and seller are kept.
	UpdateInvoice(ctx context.Context, invoiceID int64, req dto.InvoiceRequest) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice.
	DeleteInvoice(ctx context.Context, invoiceID int64) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
