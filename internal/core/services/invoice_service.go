package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	personRepo  portsrepo.PersonReader
}

// NewInvoiceService creates the invoice service. The person reader is used to check
// that buyer and seller exist before an invoice is stored.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, personRepo portsrepo.PersonReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{BaseService: newBaseService(), invoiceRepo: invoiceRepo, personRepo: personRepo}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoices(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice", slog.Int64("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoicesByIdentification(ctx context.Context, identificationNumber string, subject domain.Subject, limit int) ([]domain.Invoice, error) {
	if !subject.IsValid() {
		return nil, apperrors.NewValidationError("subject", fmt.Sprintf("Unknown subject '%s'.", subject))
	}
	if limit <= 0 {
		limit = domain.DefaultInvoiceLimit
	}
	if limit > domain.MaxIdentificationLimit {
		limit = domain.MaxIdentificationLimit
	}
	invoices, err := s.invoiceRepo.FindInvoicesByIdentification(ctx, identificationNumber, subject, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices by identification",
			slog.String("identification_number", identificationNumber),
			slog.String("subject", string(subject)),
		)
		return nil, fmt.Errorf("failed to list invoices by identification: %w", err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) GetInvoiceStatistics(ctx context.Context) (*domain.InvoiceStatistics, error) {
	stats, err := s.invoiceRepo.GetInvoiceStatistics(ctx, s.Now().Year())
	if err != nil {
		s.LogError(ctx, err, "Failed to compute invoice statistics")
		return nil, fmt.Errorf("failed to compute invoice statistics: %w", err)
	}
	return stats, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.InvoiceRequest) (*domain.Invoice, error) {
	invoice := req.ToDomain()

	verr := &apperrors.ValidationError{}
	if err := s.checkPersonExists(ctx, verr, "buyer", invoice.BuyerID); err != nil {
		return nil, err
	}
	if err := s.checkPersonExists(ctx, verr, "seller", invoice.SellerID); err != nil {
		return nil, err
	}
	if verr.HasErrors() {
		return nil, verr
	}

	invoiceID, err := s.invoiceRepo.SaveInvoice(ctx, invoice)
	if err != nil {
		s.LogError(ctx, err, "Failed to save invoice")
		return nil, err
	}
	s.LogInfo(ctx, "Invoice created", slog.Int64("invoice_id", invoiceID))

	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

// checkPersonExists records a field error when the person is missing.
// Hidden persons still exist and are accepted.
func (s *invoiceService) checkPersonExists(ctx context.Context, verr *apperrors.ValidationError, field string, personID int64) error {
	_, err := s.personRepo.FindPersonByID(ctx, personID)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		verr.Add(field, fmt.Sprintf("Person with id %d does not exist.", personID))
		return nil
	}
	s.LogError(ctx, err, "Failed to look up invoice party", slog.String("field", field), slog.Int64("person_id", personID))
	return fmt.Errorf("failed to look up %s: %w", field, err)
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID int64, req dto.InvoiceRequest) (*domain.Invoice, error) {
	invoice := req.ToDomain()
	invoice.InvoiceID = invoiceID

	if err := s.invoiceRepo.UpdateInvoice(ctx, invoice); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update invoice", slog.Int64("invoice_id", invoiceID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Invoice updated", slog.Int64("invoice_id", invoiceID))

	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete invoice", slog.Int64("invoice_id", invoiceID))
		}
		return err
	}
	s.LogInfo(ctx, "Invoice deleted", slog.Int64("invoice_id", invoiceID))
	return nil
}
