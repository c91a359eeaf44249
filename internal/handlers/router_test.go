package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/handlers"
	"github.com/SscSPs/invoice_management_app/internal/middleware"
	"github.com/SscSPs/invoice_management_app/internal/platform/config"
	"github.com/SscSPs/invoice_management_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
)

const (
	adminToken  = "admin-token"
	clientToken = "client-token"
)

// routerSuite builds the full router over mocked services.
type routerSuite struct {
	suite.Suite
	router      *gin.Engine
	persons     *MockPersonService
	invoices    *MockInvoiceService
	auth        *MockAuthService
	tokens      *MockTokenService
	google      *MockGoogleOAuthService
	health      *stubHealth
	metrics     *middleware.HTTPMetrics
	authLimiter *limiter.Limiter
}

type stubHealth struct{ err error }

func (s *stubHealth) Ping(context.Context) error { return s.err }

func claimsFor(userID string, roles ...domain.Role) *utils.AccessClaims {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return &utils.AccessClaims{
		Email: userID + "@example.com",
		Name:  "Test " + userID,
		Roles: names,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
			ID:      "jti-" + userID,
		},
	}
}

func (s *routerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.persons = new(MockPersonService)
	s.invoices = new(MockInvoiceService)
	s.auth = new(MockAuthService)
	s.tokens = new(MockTokenService)
	s.google = new(MockGoogleOAuthService)
	s.health = &stubHealth{}
	s.metrics = middleware.NewHTTPMetrics()

	s.tokens.On("ValidateAccessToken", mock.Anything, adminToken).Return(claimsFor("admin", domain.RoleAdmin, domain.RoleClient), nil).Maybe()
	s.tokens.On("ValidateAccessToken", mock.Anything, clientToken).Return(claimsFor("client", domain.RoleClient), nil).Maybe()
	s.tokens.On("ValidateAccessToken", mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnauthorized).Maybe()

	s.buildRouter()
}

func (s *routerSuite) buildRouter() {
	s.router = gin.New()
	s.router.Use(s.metrics.Middleware())
	handlers.RegisterRoutes(s.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Person:             s.persons,
		Invoice:            s.invoices,
		Auth:               s.auth,
		TokenService:       s.tokens,
		GoogleOAuthHandler: s.google,
	}, handlers.RouteDeps{
		Health:      s.health,
		Metrics:     s.metrics,
		AuthLimiter: s.authLimiter,
	})
}

func (s *routerSuite) TearDownTest() {
	s.persons.AssertExpectations(s.T())
	s.invoices.AssertExpectations(s.T())
	s.auth.AssertExpectations(s.T())
	s.google.AssertExpectations(s.T())
}

func (s *routerSuite) do(method, url string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			s.Require().NoError(json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *routerSuite) decodeProblem(w *httptest.ResponseRecorder) handlers.ValidationProblem {
	s.Require().Equal(http.StatusBadRequest, w.Code, w.Body.String())
	var problem handlers.ValidationProblem
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &problem))
	s.Equal(http.StatusBadRequest, problem.Status)
	return problem
}
