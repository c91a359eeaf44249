package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/SscSPs/invoice_management_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateAccessToken(ctx context.Context, tokenString string) (*utils.AccessClaims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utils.AccessClaims), args.Error(1)
}

func clientClaims(roles ...string) *utils.AccessClaims {
	return &utils.AccessClaims{
		Email:            "jana@example.com",
		Roles:            roles,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ID: "jti-1"},
	}
}

func newTestRouter(validator TokenValidator, policy domain.Policy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(GetLoggerFromCtx(context.Background())))
	r.GET("/protected", AuthMiddleware(validator), RequirePolicy(policy), func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})
	return r
}

func doGet(r http.Handler, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m *MockTokenValidator)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authorization header required",
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Bearer {token}",
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setup: func(m *MockTokenValidator) {
				m.On("ValidateAccessToken", mock.Anything, "expired").
					Return(nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, jwt.ErrTokenExpired))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token has expired",
		},
		{
			name:   "revoked token",
			header: "Bearer revoked",
			setup: func(m *MockTokenValidator) {
				m.On("ValidateAccessToken", mock.Anything, "revoked").
					Return(nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, apperrors.ErrTokenRevoked))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token has been revoked",
		},
		{
			name:   "revocation store failure",
			header: "Bearer ok",
			setup: func(m *MockTokenValidator) {
				m.On("ValidateAccessToken", mock.Anything, "ok").Return(nil, fmt.Errorf("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "valid token",
			header: "Bearer ok",
			setup: func(m *MockTokenValidator) {
				m.On("ValidateAccessToken", mock.Anything, "ok").Return(clientClaims("Client"), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "user-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := new(MockTokenValidator)
			if tt.setup != nil {
				tt.setup(validator)
			}
			w := doGet(newTestRouter(validator, domain.PolicyCanWrite), "/protected", tt.header)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			validator.AssertExpectations(t)
		})
	}
}

func TestRequirePolicy(t *testing.T) {
	tests := []struct {
		name       string
		policy     domain.Policy
		roles      []string
		wantStatus int
	}{
		{"client can write", domain.PolicyCanWrite, []string{"Client"}, http.StatusOK},
		{"client cannot delete", domain.PolicyCanDelete, []string{"Client"}, http.StatusForbidden},
		{"admin can delete", domain.PolicyCanDelete, []string{"Client", "Admin"}, http.StatusOK},
		{"no roles cannot write", domain.PolicyCanWrite, nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := new(MockTokenValidator)
			validator.On("ValidateAccessToken", mock.Anything, "tok").Return(clientClaims(tt.roles...), nil)

			w := doGet(newTestRouter(validator, tt.policy), "/protected", "Bearer tok")

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequirePolicy_WithoutAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RequirePolicy(domain.PolicyCanWrite), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/x", "").Code)
}

func TestStructuredLoggingMiddleware_PropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(GetLoggerFromCtx(context.Background())))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	lim, err := NewMemoryRateLimiter("2-M")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/login", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, doGet(r, "/login", "").Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/login", "").Code)
	w := doGet(r, "/login", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestNewMemoryRateLimiter_InvalidFormat(t *testing.T) {
	_, err := NewMemoryRateLimiter("ten per minute")
	assert.Error(t, err)
}

func TestHTTPMetrics(t *testing.T) {
	metrics := NewHTTPMetrics()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(metrics.Middleware())
	r.GET("/api/invoices/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	doGet(r, "/api/invoices/1", "")
	doGet(r, "/api/invoices/2", "")

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "/api/invoices/:id", "404")))

	w := doGet(r, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "invoices_http_requests_total"))
}
