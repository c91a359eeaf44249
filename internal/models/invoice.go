package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the persisted row of the invoices table.
type Invoice struct {
	InvoiceID     int64           `db:"invoice_id"`
	InvoiceNumber int             `db:"invoice_number"`
	Issued        time.Time       `db:"issued"`
	DueDate       time.Time       `db:"due_date"`
	Product       string          `db:"product"`
	Price         decimal.Decimal `db:"price"` // numeric(18,2)
	Note          string          `db:"note"`
	BuyerID       int64           `db:"buyer_id"`
	SellerID      int64           `db:"seller_id"`
}
