package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock PersonRepository ---
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindPersons(ctx context.Context, hidden bool) ([]domain.Person, error) {
	args := m.Called(ctx, hidden)
	var persons []domain.Person
	if args.Get(0) != nil {
		persons = args.Get(0).([]domain.Person)
	}
	return persons, args.Error(1)
}

func (m *MockPersonRepository) FindPersonByID(ctx context.Context, personID int64) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	var person *domain.Person
	if args.Get(0) != nil {
		person = args.Get(0).(*domain.Person)
	}
	return person, args.Error(1)
}

func (m *MockPersonRepository) CountPersons(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPersonRepository) SavePerson(ctx context.Context, person domain.Person) (*domain.Person, error) {
	args := m.Called(ctx, person)
	var saved *domain.Person
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Person)
	}
	return saved, args.Error(1)
}

func (m *MockPersonRepository) MarkPersonHidden(ctx context.Context, personID int64) error {
	args := m.Called(ctx, personID)
	return args.Error(0)
}

func (m *MockPersonRepository) ReplacePerson(ctx context.Context, personID int64, replacement domain.Person) (*domain.Person, error) {
	args := m.Called(ctx, personID, replacement)
	var person *domain.Person
	if args.Get(0) != nil {
		person = args.Get(0).(*domain.Person)
	}
	return person, args.Error(1)
}

func (m *MockPersonRepository) GetPersonStatistics(ctx context.Context) ([]domain.PersonStatistic, error) {
	args := m.Called(ctx)
	var stats []domain.PersonStatistic
	if args.Get(0) != nil {
		stats = args.Get(0).([]domain.PersonStatistic)
	}
	return stats, args.Error(1)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoicesByIdentification(ctx context.Context, identificationNumber string, subject domain.Subject, limit int) ([]domain.Invoice, error) {
	args := m.Called(ctx, identificationNumber, subject, limit)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (int64, error) {
	args := m.Called(ctx, invoice)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetInvoiceStatistics(ctx context.Context, year int) (*domain.InvoiceStatistics, error) {
	args := m.Called(ctx, year)
	var stats *domain.InvoiceStatistics
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.InvoiceStatistics)
	}
	return stats, args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserRoles(ctx context.Context, userID string, roles []domain.Role) error {
	args := m.Called(ctx, userID, roles)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLoginState(ctx context.Context, userID string, accessFailedCount int, lockoutEnd *time.Time) error {
	args := m.Called(ctx, userID, accessFailedCount, lockoutEnd)
	return args.Error(0)
}

func (m *MockUserRepository) RecordFailedLogin(ctx context.Context, userID string, maxFailedAttempts int, lockoutUntil time.Time) (*time.Time, error) {
	args := m.Called(ctx, userID, maxFailedAttempts, lockoutUntil)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

// --- Mock RevokedTokenRepository ---
type MockRevokedTokenRepository struct {
	mock.Mock
}

func (m *MockRevokedTokenRepository) RevokeToken(ctx context.Context, tokenID string, userID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, userID, expiresAt)
	return args.Error(0)
}

func (m *MockRevokedTokenRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRevokedTokenRepository) PurgeExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock GoogleOAuthHandler ---
type MockGoogleOAuth struct {
	mock.Mock
}

func (m *MockGoogleOAuth) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuth) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

func (m *MockGoogleOAuth) ExchangeCode(ctx context.Context, code string) (*domain.GoogleIdentity, error) {
	args := m.Called(ctx, code)
	var identity *domain.GoogleIdentity
	if args.Get(0) != nil {
		identity = args.Get(0).(*domain.GoogleIdentity)
	}
	return identity, args.Error(1)
}
