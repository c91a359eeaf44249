package domain

import "github.com/shopspring/decimal"

// PersonStatistic is the revenue of a single visible person, i.e. the sum of the
// prices of all invoices in which it is the seller.
type PersonStatistic struct {
	PersonID   int64
	PersonName string
	Revenue    decimal.Decimal
}

// InvoiceStatistics aggregates prices over all invoices.
type InvoiceStatistics struct {
	CurrentYearSum decimal.Decimal
	AllTimeSum     decimal.Decimal
	InvoicesCount  int64
}
