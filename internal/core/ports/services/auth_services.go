package services

import (
	"context"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/utils"
)

// TokenSvcFacade defines the interface for access token management.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (*dto.IssuedToken, error)

	// ValidateAccessToken parses the token and rejects revoked ones.
	ValidateAccessToken(ctx context.Context, tokenString string) (*utils.AccessClaims, error)

	// RevokeAccessToken invalidates a token until it expires.
	RevokeAccessToken(ctx context.Context, claims *utils.AccessClaims) error
}

// AuthSvcFacade defines the account flows exposed under /api/auth.
type AuthSvcFacade interface {
	// Register creates a Client account and signs it in.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.IssuedToken, error)

	// Login signs a user in with e-mail and password.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.IssuedToken, error)

	// Logout revokes the token described by claims.
	Logout(ctx context.Context, claims *utils.AccessClaims) error

	// LoginWithGoogle signs a user in with a Google authorization code.
	LoginWithGoogle(ctx context.Context, code string) (*dto.IssuedToken, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCode exchanges an authorization code and returns the verified Google identity.
	ExchangeCode(ctx context.Context, code string) (*domain.GoogleIdentity, error)
}
