package pgsql

import (
	"context"
	"testing"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var personColumnNames = []string{
	"person_id", "name", "identification_number", "tax_number", "account_number", "bank_code",
	"iban", "telephone", "mail", "street", "zip", "city", "country", "note", "hidden",
}

func personRowValues(id int64, name, identificationNumber string, hidden bool) []any {
	return []any{
		id, name, identificationNumber, "CZ12345678", "123456789", "0100",
		"CZ6501000000001234567890", "+420777111222", "info@example.com", "Dlouhá 1", "11000", "Praha",
		"CZECHIA", "", hidden,
	}
}

type PersonRepositoryTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *PgxPersonRepository
	ctx  context.Context
}

func (suite *PersonRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mock = mock
	suite.repo = newPgxPersonRepository(mock)
	suite.ctx = context.Background()
}

func (suite *PersonRepositoryTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func (suite *PersonRepositoryTestSuite) TestFindPersons_VisibleOnly() {
	rows := pgxmock.NewRows(personColumnNames).
		AddRow(personRowValues(1, "Alfa s.r.o.", "12345678", false)...).
		AddRow(personRowValues(3, "Beta a.s.", "87654321", false)...)
	suite.mock.ExpectQuery(`FROM persons WHERE hidden = \$1 ORDER BY person_id`).
		WithArgs(false).
		WillReturnRows(rows)

	persons, err := suite.repo.FindPersons(suite.ctx, false)

	suite.Require().NoError(err)
	suite.Require().Len(persons, 2)
	suite.Equal(int64(1), persons[0].PersonID)
	suite.Equal("Beta a.s.", persons[1].Name)
	suite.Equal(domain.CountryCzechia, persons[1].Country)
}

func (suite *PersonRepositoryTestSuite) TestFindPersonByID_NotFound() {
	suite.mock.ExpectQuery(`FROM persons WHERE person_id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	person, err := suite.repo.FindPersonByID(suite.ctx, 42)

	suite.Nil(person)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PersonRepositoryTestSuite) TestFindPersonByID_ReturnsHiddenRow() {
	rows := pgxmock.NewRows(personColumnNames).AddRow(personRowValues(5, "Old", "12345678", true)...)
	suite.mock.ExpectQuery(`FROM persons WHERE person_id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	person, err := suite.repo.FindPersonByID(suite.ctx, 5)

	suite.Require().NoError(err)
	suite.True(person.Hidden)
}

func (suite *PersonRepositoryTestSuite) TestSavePerson_ReturnsAssignedID() {
	suite.mock.ExpectQuery(`INSERT INTO persons`).
		WithArgs("Alfa s.r.o.", "12345678", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), "SLOVAKIA",
			pgxmock.AnyArg(), false).
		WillReturnRows(pgxmock.NewRows([]string{"person_id"}).AddRow(int64(11)))

	saved, err := suite.repo.SavePerson(suite.ctx, domain.Person{
		Name:                 "Alfa s.r.o.",
		IdentificationNumber: "12345678",
		Country:              domain.CountrySlovakia,
	})

	suite.Require().NoError(err)
	suite.Equal(int64(11), saved.PersonID)
	suite.Equal("Alfa s.r.o.", saved.Name)
}

func (suite *PersonRepositoryTestSuite) TestSavePerson_ValueTooLongIsValidationError() {
	anyArgs := make([]any, 14)
	for i := range anyArgs {
		anyArgs[i] = pgxmock.AnyArg()
	}
	suite.mock.ExpectQuery(`INSERT INTO persons`).
		WithArgs(anyArgs...).
		WillReturnError(&pgconn.PgError{Code: "22001", Message: "value too long for type character varying(20)"})

	saved, err := suite.repo.SavePerson(suite.ctx, domain.Person{Name: "Alfa s.r.o.", Telephone: "+420 123 456 789 0123"})

	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PersonRepositoryTestSuite) TestMarkPersonHidden() {
	suite.mock.ExpectExec(`UPDATE persons SET hidden = TRUE WHERE person_id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	suite.NoError(suite.repo.MarkPersonHidden(suite.ctx, 5))
}

func (suite *PersonRepositoryTestSuite) TestMarkPersonHidden_NotFound() {
	suite.mock.ExpectExec(`UPDATE persons SET hidden = TRUE WHERE person_id = \$1`).
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	suite.ErrorIs(suite.repo.MarkPersonHidden(suite.ctx, 404), apperrors.ErrNotFound)
}

func (suite *PersonRepositoryTestSuite) TestReplacePerson_InsertsNewVersionAndHidesOriginal() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`FROM persons WHERE person_id = \$1 FOR UPDATE`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(personColumnNames).AddRow(personRowValues(5, "Old", "12345678", false)...))
	suite.mock.ExpectQuery(`INSERT INTO persons`).
		WithArgs("X", "12345678", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), false).
		WillReturnRows(pgxmock.NewRows([]string{"person_id"}).AddRow(int64(6)))
	suite.mock.ExpectExec(`UPDATE persons SET hidden = TRUE WHERE person_id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()

	updated, err := suite.repo.ReplacePerson(suite.ctx, 5, domain.Person{
		Name:                 "X",
		IdentificationNumber: "99999999",
		Country:              domain.CountryCzechia,
		Hidden:               true,
	})

	suite.Require().NoError(err)
	suite.Equal(int64(6), updated.PersonID)
	suite.Equal("X", updated.Name)
	suite.Equal("12345678", updated.IdentificationNumber)
	suite.False(updated.Hidden)
}

func (suite *PersonRepositoryTestSuite) TestReplacePerson_NotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(int64(5)).
		WillReturnError(pgx.ErrNoRows)
	suite.mock.ExpectRollback()

	updated, err := suite.repo.ReplacePerson(suite.ctx, 5, domain.Person{Name: "X"})

	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PersonRepositoryTestSuite) TestReplacePerson_AlreadySuperseded() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(personColumnNames).AddRow(personRowValues(5, "Old", "12345678", true)...))
	suite.mock.ExpectRollback()

	updated, err := suite.repo.ReplacePerson(suite.ctx, 5, domain.Person{Name: "X"})

	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PersonRepositoryTestSuite) TestGetPersonStatistics() {
	rows := pgxmock.NewRows([]string{"person_id", "name", "revenue"}).
		AddRow(int64(1), "Alfa s.r.o.", decimal.NewFromInt(150)).
		AddRow(int64(2), "Beta a.s.", decimal.Zero)
	suite.mock.ExpectQuery(`LEFT JOIN invoices i ON i.seller_id = p.person_id`).WillReturnRows(rows)

	stats, err := suite.repo.GetPersonStatistics(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(stats, 2)
	suite.True(stats[0].Revenue.Equal(decimal.NewFromInt(150)))
	suite.True(stats[1].Revenue.IsZero())
}

func TestPersonRepository(t *testing.T) {
	suite.Run(t, new(PersonRepositoryTestSuite))
}
