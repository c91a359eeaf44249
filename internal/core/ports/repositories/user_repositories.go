package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by normalized e-mail address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user by external provider identity.
	FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A taken e-mail yields ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUserRoles replaces the roles of a user.
	UpdateUserRoles(ctx context.Context, userID string, roles []domain.Role) error

	// UpdatePasswordHash replaces the password hash of a user.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error
}

// UserLockoutManager defines operations backing the login lockout policy
type UserLockoutManager interface {
	// UpdateLoginState stores the failed attempt counter and lockout end of a user.
	UpdateLoginState(ctx context.Context, userID string, accessFailedCount int, lockoutEnd *time.Time) error

	// RecordFailedLogin increments the failed attempt counter in a single statement.
	// When the counter reaches maxFailedAttempts it is reset and lockout_end is set to lockoutUntil.
	// It returns the stored lockout end, which may lie in the past.
	RecordFailedLogin(ctx context.Context, userID string, maxFailedAttempts int, lockoutUntil time.Time) (*time.Time, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLockoutManager
}
