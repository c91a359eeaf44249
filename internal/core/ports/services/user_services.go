package services

import (
	"context"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by e-mail address, case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateLocalUser creates a password-based user with the given roles.
	CreateLocalUser(ctx context.Context, firstName, lastName, email, password string, roles []domain.Role) (*domain.User, error)

	// EnsureAdmin creates an administrator or grants the Admin role to an existing user.
	EnsureAdmin(ctx context.Context, email, password string) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser verifies e-mail and password and applies the lockout policy.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// FindOrCreateGoogleUser resolves the local account of a verified Google identity.
	FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
