package mapping

import (
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/SscSPs/invoice_management_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice. Buyer and Seller are not persisted.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		InvoiceNumber: d.InvoiceNumber,
		Issued:        d.Issued,
		DueDate:       d.DueDate,
		Product:       d.Product,
		Price:         d.Price,
		Note:          d.Note,
		BuyerID:       d.BuyerID,
		SellerID:      d.SellerID,
	}
}

// ToDomainInvoice converts a model Invoice and its optional parties to a domain Invoice
func ToDomainInvoice(m models.Invoice, buyer, seller *models.Person) domain.Invoice {
	d := domain.Invoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		Issued:        m.Issued,
		DueDate:       m.DueDate,
		Product:       m.Product,
		Price:         m.Price,
		Note:          m.Note,
		BuyerID:       m.BuyerID,
		SellerID:      m.SellerID,
	}
	if buyer != nil {
		p := ToDomainPerson(*buyer)
		d.Buyer = &p
	}
	if seller != nil {
		p := ToDomainPerson(*seller)
		d.Seller = &p
	}
	return d
}
