package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/platform/config"
	"github.com/SscSPs/invoice_management_app/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements the TokenSvcFacade for issuing and revoking JWT access tokens.
type tokenService struct {
	BaseService
	cfg         *config.Config
	revokedRepo portsrepo.RevokedTokenRepositoryFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, revokedRepo portsrepo.RevokedTokenRepositoryFacade) portssvc.TokenSvcFacade {
	return &tokenService{BaseService: newBaseService(), cfg: cfg, revokedRepo: revokedRepo}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (*dto.IssuedToken, error) {
	roles := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		roles[i] = string(r)
	}

	token, claims, err := utils.GenerateJWT(utils.TokenParams{
		UserID:   user.UserID,
		Email:    user.Email,
		Name:     user.FullName(),
		Roles:    roles,
		Secret:   s.cfg.JWTSecret,
		Expiry:   s.cfg.JWTExpiryDuration,
		Issuer:   s.cfg.JWTIssuer,
		Audience: s.cfg.JWTAudience,
	}, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("token_user_id", user.UserID))
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	return &dto.IssuedToken{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: user}, nil
}

// ValidateAccessToken checks signature, registered claims and revocation.
// Every rejection wraps apperrors.ErrUnauthorized; store failures do not.
func (s *tokenService) ValidateAccessToken(ctx context.Context, tokenString string) (*utils.AccessClaims, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTAudience)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}
	revoked, err := s.revokedRepo.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, apperrors.ErrTokenRevoked)
	}
	return claims, nil
}

// RevokeAccessToken stores the token ID until the token would expire anyway.
// Expired revocations are purged on the way.
func (s *tokenService) RevokeAccessToken(ctx context.Context, claims *utils.AccessClaims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return apperrors.NewUnauthorizedError("Token cannot be revoked")
	}
	if err := s.revokedRepo.RevokeToken(ctx, claims.ID, claims.Subject, claims.ExpiresAt.Time); err != nil {
		s.LogError(ctx, err, "Failed to revoke token")
		return err
	}
	if purged, err := s.revokedRepo.PurgeExpiredTokens(ctx, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to purge expired revoked tokens")
	} else if purged > 0 {
		s.LogDebug(ctx, "Purged expired revoked tokens", slog.Int64("count", purged))
	}
	return nil
}

// authService implements the register, login and logout flows.
type authService struct {
	BaseService
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	google       portssvc.GoogleOAuthHandlerSvcFacade
}

// NewAuthService creates the auth service. googleSvc may be nil when Google sign-in is not configured.
func NewAuthService(userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade, googleSvc portssvc.GoogleOAuthHandlerSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		BaseService:  newBaseService(),
		userService:  userService,
		tokenService: tokenService,
		google:       googleSvc,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func emailTakenError(email string) error {
	return apperrors.NewValidationError("email", fmt.Sprintf("Email '%s' is already taken.", email))
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.IssuedToken, error) {
	if _, err := s.userService.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, emailTakenError(req.Email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing user")
		return nil, err
	}

	user, err := s.userService.CreateLocalUser(ctx, req.FirstName, req.LastName, req.Email, req.Password, []domain.Role{domain.RoleClient})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, emailTakenError(req.Email)
		}
		return nil, err
	}
	return s.tokenService.GenerateAccessToken(ctx, user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.IssuedToken, error) {
	user, err := s.userService.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User logged in", slog.String("login_user_id", user.UserID))
	return s.tokenService.GenerateAccessToken(ctx, user)
}

func (s *authService) Logout(ctx context.Context, claims *utils.AccessClaims) error {
	if err := s.tokenService.RevokeAccessToken(ctx, claims); err != nil {
		return err
	}
	s.LogInfo(ctx, "User logged out", slog.String("logout_user_id", claims.Subject))
	return nil
}

func (s *authService) LoginWithGoogle(ctx context.Context, code string) (*dto.IssuedToken, error) {
	if s.google == nil {
		return nil, apperrors.NewAppError(http.StatusServiceUnavailable, "Google sign-in is not configured", nil)
	}
	identity, err := s.google.ExchangeCode(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Google code exchange failed")
		return nil, apperrors.NewUnauthorizedError("Google sign-in failed")
	}
	if !identity.EmailVerified {
		return nil, apperrors.NewUnauthorizedError("Google account email is not verified")
	}
	user, err := s.userService.FindOrCreateGoogleUser(ctx, *identity)
	if err != nil {
		return nil, err
	}
	return s.tokenService.GenerateAccessToken(ctx, user)
}

// --- GoogleOAuthHandlerSvcFacade Implementation ---

type idTokenValidator func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
	validate     idTokenValidator
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
}

// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
func (s *googleOAuthHandlerService) GenerateStateString(ctx context.Context) (string, error) {
	return utils.NewOAuthState()
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *googleOAuthHandlerService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCode exchanges the authorization code and validates the returned ID token.
func (s *googleOAuthHandlerService) ExchangeCode(ctx context.Context, code string) (*domain.GoogleIdentity, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response has no id_token")
	}

	payload, err := s.validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return identityFromPayload(payload), nil
}

func identityFromPayload(payload *idtoken.Payload) *domain.GoogleIdentity {
	claim := func(name string) string {
		v, _ := payload.Claims[name].(string)
		return v
	}
	verified, _ := payload.Claims["email_verified"].(bool)
	return &domain.GoogleIdentity{
		Subject:       payload.Subject,
		Email:         claim("email"),
		EmailVerified: verified,
		GivenName:     claim("given_name"),
		FamilyName:    claim("family_name"),
	}
}
