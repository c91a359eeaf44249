package dto

import (
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PersonStatisticResponse is the revenue of a single person.
type PersonStatisticResponse struct {
	PersonID   int64           `json:"personId"`
	PersonName string          `json:"personName"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// InvoiceStatisticsResponse aggregates prices over all invoices.
type InvoiceStatisticsResponse struct {
	CurrentYearSum decimal.Decimal `json:"currentYearSum"`
	AllTimeSum     decimal.Decimal `json:"allTimeSum"`
	InvoicesCount  int64           `json:"invoicesCount"`
}

// ToListPersonStatisticResponse converts person statistics to their DTOs
func ToListPersonStatisticResponse(stats []domain.PersonStatistic) []PersonStatisticResponse {
	res := make([]PersonStatisticResponse, len(stats))
	for i, s := range stats {
		res[i] = PersonStatisticResponse{
			PersonID:   s.PersonID,
			PersonName: s.PersonName,
			Revenue:    s.Revenue,
		}
	}
	return res
}

// ToInvoiceStatisticsResponse converts invoice statistics to its DTO
func ToInvoiceStatisticsResponse(s *domain.InvoiceStatistics) InvoiceStatisticsResponse {
	return InvoiceStatisticsResponse{
		CurrentYearSum: s.CurrentYearSum,
		AllTimeSum:     s.AllTimeSum,
		InvoicesCount:  s.InvoicesCount,
	}
}
