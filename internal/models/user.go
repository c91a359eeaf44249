package models

import (
	"time"
)

// User is the persisted row of the users table.
// Roles are stored as a text[] column.
type User struct {
	UserID            string     `db:"user_id"`
	Email             string     `db:"email"`
	FirstName         string     `db:"first_name"`
	LastName          string     `db:"last_name"`
	PasswordHash      *string    `db:"password_hash"`
	AuthProvider      string     `db:"auth_provider"`
	ProviderUserID    *string    `db:"provider_user_id"`
	Roles             []string   `db:"roles"`
	AccessFailedCount int        `db:"access_failed_count"`
	LockoutEnd        *time.Time `db:"lockout_end"`
	CreatedAt         time.Time  `db:"created_at"`
	LastUpdatedAt     time.Time  `db:"last_updated_at"`
}
