package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims are the claims carried by an access token.
type AccessClaims struct {
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenParams describes the identity and signing settings for a new access token.
type TokenParams struct {
	UserID   string
	Email    string
	Name     string
	Roles    []string
	Secret   string
	Expiry   time.Duration
	Issuer   string
	Audience string
}

// GenerateJWT generates a signed HS256 access token and returns it with its claims.
// Every token gets a random jti so it can be revoked on logout.
func GenerateJWT(p TokenParams, now time.Time) (string, *AccessClaims, error) {
	claims := &AccessClaims{
		Email: p.Email,
		Name:  p.Name,
		Roles: p.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    p.Issuer,
			Subject:   p.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(p.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if p.Audience != "" {
		claims.Audience = jwt.ClaimStrings{p.Audience}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(p.Secret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and standard claims.
// Issuer and audience are enforced when non-empty.
func ParseAndValidateJWT(tokenString, secretKey, issuer, audience string) (*AccessClaims, error) {
	claims := &AccessClaims{}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, errors.New("token is missing subject or id")
	}

	return claims, nil
}
