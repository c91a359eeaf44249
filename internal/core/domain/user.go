package domain

import (
	"strings"
	"time"
)

// Role is an authorization role carried in the access token.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleClient Role = "Client"
)

// Policy is a named permission set checked by the authorization middleware.
type Policy string

const (
	// PolicyCanWrite allows creating and editing invoices.
	PolicyCanWrite Policy = "CanWrite"
	// PolicyCanDelete allows deleting invoices.
	PolicyCanDelete Policy = "CanDelete"
)

var policyRoles = map[Policy][]Role{
	PolicyCanWrite:  {RoleAdmin, RoleClient},
	PolicyCanDelete: {RoleAdmin},
}

// Allows reports whether any of the given roles satisfies the policy.
// Unknown policies allow nothing.
func (p Policy) Allows(roles []Role) bool {
	for _, required := range policyRoles[p] {
		for _, r := range roles {
			if r == required {
				return true
			}
		}
	}
	return false
}

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an account of the application in the domain.
type User struct {
	UserID            string
	Email             string
	FirstName         string
	LastName          string
	PasswordHash      *string // nil for external provider accounts
	AuthProvider      AuthProvider
	ProviderUserID    *string
	Roles             []Role
	AccessFailedCount int
	LockoutEnd        *time.Time
	CreatedAt         time.Time
	LastUpdatedAt     time.Time
}

// FullName returns the display name used in token claims.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsLockedOut reports whether the account is locked at the given instant.
func (u User) IsLockedOut(now time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(now)
}

// HasRole reports whether the user holds role r.
func (u User) HasRole(r Role) bool {
	for _, role := range u.Roles {
		if role == r {
			return true
		}
	}
	return false
}

// NormalizeEmail lower-cases and trims an e-mail address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GoogleIdentity is the verified subset of a Google ID token.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
}
