package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func invoiceColumnNames() []string {
	cols := []string{"invoice_id", "invoice_number", "issued", "due_date", "product", "price", "note", "buyer_id", "seller_id"}
	cols = append(cols, personColumnNames...)
	return append(cols, personColumnNames...)
}

func invoiceRowValues(id int64, issued time.Time, price decimal.Decimal, buyerID, sellerID int64) []any {
	values := []any{id, int(id) + 1000, issued, issued.AddDate(0, 0, 14), "Consulting", price, "", buyerID, sellerID}
	values = append(values, personRowValues(buyerID, "Buyer", "11111111", false)...)
	return append(values, personRowValues(sellerID, "Seller", "22222222", false)...)
}

type InvoiceRepositoryTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *PgxInvoiceRepository
	ctx  context.Context
}

func (suite *InvoiceRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mock = mock
	suite.repo = newPgxInvoiceRepository(mock)
	suite.ctx = context.Background()
}

func (suite *InvoiceRepositoryTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func (suite *InvoiceRepositoryTestSuite) TestBuildInvoiceFilterQuery_NoFilters() {
	query, args := buildInvoiceFilterQuery(domain.InvoiceFilter{})

	suite.NotContains(query, "WHERE")
	suite.Contains(query, "LIMIT $1")
	suite.Equal([]any{domain.DefaultInvoiceLimit}, args)
}

func (suite *InvoiceRepositoryTestSuite) TestBuildInvoiceFilterQuery_AllFilters() {
	buyerID, sellerID := int64(1), int64(2)
	product := "50%_off"
	minPrice, maxPrice := decimal.NewFromInt(100), decimal.NewFromInt(200)

	query, args := buildInvoiceFilterQuery(domain.InvoiceFilter{
		BuyerID:  &buyerID,
		SellerID: &sellerID,
		Product:  &product,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Limit:    7,
	})

	suite.Contains(query, "i.buyer_id = $1 AND i.seller_id = $2 AND i.product ILIKE '%' || $3 || '%' AND i.price >= $4 AND i.price <= $5")
	suite.Contains(query, "LIMIT $6")
	suite.Equal([]any{buyerID, sellerID, `50\%\_off`, minPrice, maxPrice, 7}, args)
}

func (suite *InvoiceRepositoryTestSuite) TestFindInvoices_PriceRange() {
	minPrice, maxPrice := decimal.NewFromInt(100), decimal.NewFromInt(200)
	issued := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(invoiceColumnNames()).
		AddRow(invoiceRowValues(1, issued, decimal.NewFromInt(100), 1, 2)...).
		AddRow(invoiceRowValues(2, issued, decimal.NewFromInt(200), 1, 2)...)
	suite.mock.ExpectQuery(`WHERE i.price >= \$1 AND i.price <= \$2`).
		WithArgs(minPrice, maxPrice, 3).
		WillReturnRows(rows)

	invoices, err := suite.repo.FindInvoices(suite.ctx, domain.InvoiceFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})

	suite.Require().NoError(err)
	suite.Require().Len(invoices, 2)
	for _, inv := range invoices {
		suite.True(inv.Price.GreaterThanOrEqual(minPrice))
		suite.True(inv.Price.LessThanOrEqual(maxPrice))
		suite.Require().NotNil(inv.Buyer)
		suite.Require().NotNil(inv.Seller)
		suite.Equal("Seller", inv.Seller.Name)
	}
}

func (suite *InvoiceRepositoryTestSuite) TestFindInvoiceByID_NotFound() {
	suite.mock.ExpectQuery(`WHERE i.invoice_id = \$1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	inv, err := suite.repo.FindInvoiceByID(suite.ctx, 9)

	suite.Nil(inv)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceRepositoryTestSuite) TestFindInvoicesByIdentification_Sales() {
	newer := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(invoiceColumnNames()).
		AddRow(invoiceRowValues(2, newer, decimal.NewFromInt(50), 1, 2)...).
		AddRow(invoiceRowValues(1, older, decimal.NewFromInt(100), 1, 2)...)
	suite.mock.ExpectQuery(`WHERE s.identification_number = \$1\s+ORDER BY i.issued DESC, i.invoice_id DESC LIMIT \$2`).
		WithArgs("22222222", 2).
		WillReturnRows(rows)

	invoices, err := suite.repo.FindInvoicesByIdentification(suite.ctx, "22222222", domain.SubjectSeller, 2)

	suite.Require().NoError(err)
	suite.Require().Len(invoices, 2)
	suite.True(invoices[0].Issued.After(invoices[1].Issued))
}

func (suite *InvoiceRepositoryTestSuite) TestFindInvoicesByIdentification_Purchases() {
	suite.mock.ExpectQuery(`WHERE b.identification_number = \$1`).
		WithArgs("11111111", 3).
		WillReturnRows(pgxmock.NewRows(invoiceColumnNames()))

	invoices, err := suite.repo.FindInvoicesByIdentification(suite.ctx, "11111111", domain.SubjectBuyer, 3)

	suite.Require().NoError(err)
	suite.Empty(invoices)
}

func (suite *InvoiceRepositoryTestSuite) TestSaveInvoice() {
	issued := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	price := decimal.RequireFromString("1500.50")
	suite.mock.ExpectQuery(`INSERT INTO invoices`).
		WithArgs(2024001, issued, issued.AddDate(0, 1, 0), "Consulting", price, "", int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"invoice_id"}).AddRow(int64(77)))

	id, err := suite.repo.SaveInvoice(suite.ctx, domain.Invoice{
		InvoiceNumber: 2024001,
		Issued:        issued,
		DueDate:       issued.AddDate(0, 1, 0),
		Product:       "Consulting",
		Price:         price,
		BuyerID:       1,
		SellerID:      2,
	})

	suite.Require().NoError(err)
	suite.Equal(int64(77), id)
}

func (suite *InvoiceRepositoryTestSuite) TestUpdateInvoice_NotFound() {
	suite.mock.ExpectExec(`UPDATE invoices`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.UpdateInvoice(suite.ctx, domain.Invoice{InvoiceID: 3})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceRepositoryTestSuite) TestDeleteInvoice() {
	suite.mock.ExpectExec(`DELETE FROM invoices WHERE invoice_id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	suite.NoError(suite.repo.DeleteInvoice(suite.ctx, 3))
}

func (suite *InvoiceRepositoryTestSuite) TestGetInvoiceStatistics() {
	suite.mock.ExpectQuery(`SUM\(price\) FILTER \(WHERE EXTRACT\(YEAR FROM issued\) = \$1\)`).
		WithArgs(2024).
		WillReturnRows(pgxmock.NewRows([]string{"current_year_sum", "all_time_sum", "invoices_count"}).
			AddRow(decimal.NewFromInt(150), decimal.NewFromInt(400), int64(4)))

	stats, err := suite.repo.GetInvoiceStatistics(suite.ctx, 2024)

	suite.Require().NoError(err)
	suite.True(stats.CurrentYearSum.Equal(decimal.NewFromInt(150)))
	suite.True(stats.AllTimeSum.Equal(decimal.NewFromInt(400)))
	suite.Equal(int64(4), stats.InvoicesCount)
}

func TestInvoiceRepository(t *testing.T) {
	suite.Run(t, new(InvoiceRepositoryTestSuite))
}
