package dto

import (
	"time"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
)

// RegisterRequest defines the data needed to register a new account.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string `json:"lastName" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest defines the credentials for a login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response for a successful login or registration.
type AuthResponse struct {
	Token        string    `json:"token"`
	Email        string    `json:"email"`
	Roles        []string  `json:"roles"`
	ExpiresAtUtc time.Time `json:"expiresAtUtc"`
}

// IssuedToken is an access token together with the user it was issued for.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// ToAuthResponse converts an issued token into the AuthResponse DTO
func ToAuthResponse(t *IssuedToken) AuthResponse {
	roles := make([]string, len(t.User.Roles))
	for i, r := range t.User.Roles {
		roles[i] = string(r)
	}
	return AuthResponse{
		Token:        t.Token,
		Email:        t.User.Email,
		Roles:        roles,
		ExpiresAtUtc: t.ExpiresAt.UTC(),
	}
}

// MeResponse describes the identity carried by the current access token.
type MeResponse struct {
	UserID string   `json:"userId"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Roles  []string `json:"roles"`
}

// ExchangeCodeRequest defines the expected JSON body for the Google code exchange.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleLoginURLResponse carries the Google consent URL and its CSRF state.
type GoogleLoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}
