package handlers_test

import (
	"context"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/utils"
	"github.com/stretchr/testify/mock"
)

// --- Mock PersonService ---
type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) ListPersons(ctx context.Context) ([]domain.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}

func (m *MockPersonService) GetPersonByID(ctx context.Context, personID int64) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonService) GetPersonStatistics(ctx context.Context) ([]domain.PersonStatistic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PersonStatistic), args.Error(1)
}

func (m *MockPersonService) CreatePerson(ctx context.Context, req dto.PersonRequest) (*domain.Person, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonService) UpdatePerson(ctx context.Context, personID int64, req dto.PersonRequest) (*domain.Person, error) {
	args := m.Called(ctx, personID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonService) DeletePerson(ctx context.Context, personID int64) error {
	return m.Called(ctx, personID).Error(0)
}

var _ portssvc.PersonSvcFacade = (*MockPersonService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListInvoicesByIdentification(ctx context.Context, identificationNumber string, subject domain.Subject, limit int) ([]domain.Invoice, error) {
	args := m.Called(ctx, identificationNumber, subject, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetInvoiceStatistics(ctx context.Context) (*domain.InvoiceStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceStatistics), args.Error(1)
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.InvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, invoiceID int64, req dto.InvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	return m.Called(ctx, invoiceID).Error(0)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.IssuedToken, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.IssuedToken), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.IssuedToken, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.IssuedToken), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *utils.AccessClaims) error {
	return m.Called(ctx, claims).Error(0)
}

func (m *MockAuthService) LoginWithGoogle(ctx context.Context, code string) (*dto.IssuedToken, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.IssuedToken), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (*dto.IssuedToken, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.IssuedToken), args.Error(1)
}

func (m *MockTokenService) ValidateAccessToken(ctx context.Context, tokenString string) (*utils.AccessClaims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utils.AccessClaims), args.Error(1)
}

func (m *MockTokenService) RevokeAccessToken(ctx context.Context, claims *utils.AccessClaims) error {
	return m.Called(ctx, claims).Error(0)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return m.Called(ctx, state).String(0)
}

func (m *MockGoogleOAuthService) ExchangeCode(ctx context.Context, code string) (*domain.GoogleIdentity, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleIdentity), args.Error(1)
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleOAuthService)(nil)
