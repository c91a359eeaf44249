package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoice_management_app/internal/models"
	"github.com/SscSPs/invoice_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const userColumns = `user_id, email, first_name, last_name, password_hash, auth_provider, provider_user_id,
	roles, access_failed_count, lockout_end, created_at, last_updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db DBTX) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) findOne(ctx context.Context, where string, args ...any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where + `;`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&m.UserID,
		&m.Email,
		&m.FirstName,
		&m.LastName,
		&m.PasswordHash,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.Roles,
		&m.AccessFailedCount,
		&m.LockoutEnd,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = $1", domain.NormalizeEmail(email))
}

func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, "auth_provider = $1 AND provider_user_id = $2", authProvider, providerUserID)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, email, first_name, last_name, password_hash, auth_provider, provider_user_id,
			roles, access_failed_count, lockout_end, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		domain.NormalizeEmail(m.Email),
		m.FirstName,
		m.LastName,
		m.PasswordHash,
		m.AuthProvider,
		m.ProviderUserID,
		m.Roles,
		m.AccessFailedCount,
		m.LockoutEnd,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return wrapPgError("failed to save user", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUserRoles(ctx context.Context, userID string, roles []domain.Role) error {
	m := mapping.ToModelUser(domain.User{Roles: roles})
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE users SET roles = $1, last_updated_at = $2 WHERE user_id = $3;`,
		m.Roles, time.Now().UTC(), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user roles: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, last_updated_at = $2 WHERE user_id = $3;`,
		passwordHash, time.Now().UTC(), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) RecordFailedLogin(ctx context.Context, userID string, maxFailedAttempts int, lockoutUntil time.Time) (*time.Time, error) {
	// Right-hand expressions see the row before the update, and the row lock
	// serializes concurrent failures on the same user.
	query := `
		UPDATE users SET
			access_failed_count = CASE WHEN access_failed_count + 1 >= $1 THEN 0 ELSE access_failed_count + 1 END,
			lockout_end = CASE WHEN access_failed_count + 1 >= $1 THEN $2 ELSE lockout_end END,
			last_updated_at = $3
		WHERE user_id = $4
		RETURNING lockout_end;
	`
	var lockoutEnd *time.Time
	err := r.Pool.QueryRow(ctx, query, maxFailedAttempts, lockoutUntil, time.Now().UTC(), userID).Scan(&lockoutEnd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to record failed login: %w", err)
	}
	return lockoutEnd, nil
}

func (r *PgxUserRepository) UpdateLoginState(ctx context.Context, userID string, accessFailedCount int, lockoutEnd *time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE users SET access_failed_count = $1, lockout_end = $2, last_updated_at = $3 WHERE user_id = $4;`,
		accessFailedCount, lockoutEnd, time.Now().UTC(), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update login state: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}
