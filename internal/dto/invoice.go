package dto

import (
	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PersonRef references an existing person by ID.
type PersonRef struct {
	PersonID int64 `json:"_id" binding:"required,min=1"`
}

// InvoiceRequest defines the data needed to create or update an invoice.
// Buyer and seller are only used on create.
// Date order and price range are checked by a struct-level validator.
type InvoiceRequest struct {
	InvoiceNumber int             `json:"invoiceNumber" binding:"required,min=1"`
	Issued        *Date           `json:"issued" binding:"required"`
	DueDate       *Date           `json:"dueDate" binding:"required"`
	Product       string          `json:"product" binding:"required,min=2,max=30"`
	Price         decimal.Decimal `json:"price"`
	Note          string          `json:"note" binding:"max=200"`
	Seller        *PersonRef      `json:"seller" binding:"required"`
	Buyer         *PersonRef      `json:"buyer" binding:"required"`
}

// ToDomain converts the request into a domain.Invoice without an ID.
func (r InvoiceRequest) ToDomain() domain.Invoice {
	inv := domain.Invoice{
		InvoiceNumber: r.InvoiceNumber,
		Product:       r.Product,
		Price:         r.Price,
		Note:          r.Note,
	}
	if r.Issued != nil {
		inv.Issued = r.Issued.Time
	}
	if r.DueDate != nil {
		inv.DueDate = r.DueDate.Time
	}
	if r.Buyer != nil {
		inv.BuyerID = r.Buyer.PersonID
	}
	if r.Seller != nil {
		inv.SellerID = r.Seller.PersonID
	}
	return inv
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     int64           `json:"_id"`
	InvoiceNumber int             `json:"invoiceNumber"`
	Issued        Date            `json:"issued"`
	DueDate       Date            `json:"dueDate"`
	Product       string          `json:"product"`
	Price         decimal.Decimal `json:"price"`
	Note          string          `json:"note"`
	Buyer         *PersonResponse `json:"buyer,omitempty"`
	Seller        *PersonResponse `json:"seller,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	res := InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		Issued:        NewDate(inv.Issued),
		DueDate:       NewDate(inv.DueDate),
		Product:       inv.Product,
		Price:         inv.Price,
		Note:          inv.Note,
	}
	if inv.Buyer != nil {
		buyer := ToPersonResponse(inv.Buyer)
		res.Buyer = &buyer
	} else if inv.BuyerID != 0 {
		res.Buyer = &PersonResponse{PersonID: inv.BuyerID}
	}
	if inv.Seller != nil {
		seller := ToPersonResponse(inv.Seller)
		res.Seller = &seller
	} else if inv.SellerID != 0 {
		res.Seller = &PersonResponse{PersonID: inv.SellerID}
	}
	return res
}

// ToListInvoiceResponse converts a slice of domain.Invoice to a slice of InvoiceResponse DTOs
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

// ListInvoicesParams defines query parameters for listing invoices.
// Prices are bound as strings and parsed by ToFilter.
type ListInvoicesParams struct {
	BuyerID  *int64  `form:"buyerId" binding:"omitempty,min=1"`
	SellerID *int64  `form:"sellerId" binding:"omitempty,min=1"`
	Product  *string `form:"product"`
	MinPrice *string `form:"minPrice"`
	MaxPrice *string `form:"maxPrice"`
	Limit    int     `form:"limit,default=3" binding:"min=1,max=100"`
}

// ToFilter converts the query parameters into a domain.InvoiceFilter.
func (p ListInvoicesParams) ToFilter() (domain.InvoiceFilter, error) {
	filter := domain.InvoiceFilter{
		BuyerID:  p.BuyerID,
		SellerID: p.SellerID,
		Product:  p.Product,
		Limit:    p.Limit,
	}
	verr := &apperrors.ValidationError{}
	parse := func(field string, raw *string) *decimal.Decimal {
		if raw == nil || *raw == "" {
			return nil
		}
		d, err := decimal.NewFromString(*raw)
		if err != nil {
			verr.Add(field, "The value '"+*raw+"' is not a valid number.")
			return nil
		}
		return &d
	}
	filter.MinPrice = parse("minPrice", p.MinPrice)
	filter.MaxPrice = parse("maxPrice", p.MaxPrice)
	if verr.HasErrors() {
		return domain.InvoiceFilter{}, verr
	}
	return filter, nil
}

// IdentificationParams defines query parameters for the identification lookups.
type IdentificationParams struct {
	Limit int `form:"limit,default=3" binding:"min=1,max=20"`
}
