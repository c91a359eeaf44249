package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultInvoiceLimit caps invoice listings when the caller does not supply a limit.
	DefaultInvoiceLimit = 3
	// MaxIdentificationLimit is the largest limit accepted by the identification lookups.
	MaxIdentificationLimit = 20
)

// Invoice is a billing document between a seller and a buyer person.
// Buyer and Seller are populated on reads only.
type Invoice struct {
	InvoiceID     int64
	InvoiceNumber int
	Issued        time.Time
	DueDate       time.Time
	Product       string
	Price         decimal.Decimal
	Note          string
	BuyerID       int64
	SellerID      int64

	Buyer  *Person
	Seller *Person
}

// DueBeforeIssued reports whether the due date precedes the issue date.
func (i Invoice) DueBeforeIssued() bool {
	return i.DueDate.Before(i.Issued)
}

// InvoiceFilter holds the optional, conjunctive invoice listing predicates.
// Nil fields are not applied.
type InvoiceFilter struct {
	BuyerID  *int64
	SellerID *int64
	Product  *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Limit    int
}

// EffectiveLimit returns the filter limit, or DefaultInvoiceLimit when unset.
func (f InvoiceFilter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultInvoiceLimit
	}
	return f.Limit
}
