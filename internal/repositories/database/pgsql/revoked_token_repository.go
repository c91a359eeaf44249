package pgsql

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
)

type PgxRevokedTokenRepository struct {
	BaseRepository
}

func newPgxRevokedTokenRepository(db DBTX) *PgxRevokedTokenRepository {
	return &PgxRevokedTokenRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.RevokedTokenRepositoryFacade = (*PgxRevokedTokenRepository)(nil)

func (r *PgxRevokedTokenRepository) RevokeToken(ctx context.Context, tokenID string, userID string, expiresAt time.Time) error {
	query := `
		INSERT INTO revoked_tokens (token_id, user_id, expires_at, revoked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token_id) DO NOTHING;
	`
	if _, err := r.Pool.Exec(ctx, query, tokenID, userID, expiresAt, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *PgxRevokedTokenRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	var revoked bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token_id = $1);`, tokenID).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return revoked, nil
}

func (r *PgxRevokedTokenRepository) PurgeExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1;`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired revoked tokens: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
