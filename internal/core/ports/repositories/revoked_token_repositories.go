package repositories

import (
	"context"
	"time"
)

// RevokedTokenRepositoryFacade stores the IDs of access tokens invalidated by logout.
type RevokedTokenRepositoryFacade interface {
	// RevokeToken records a token ID until the token would have expired.
	RevokeToken(ctx context.Context, tokenID string, userID string, expiresAt time.Time) error

	// IsTokenRevoked reports whether a token ID has been revoked.
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)

	// PurgeExpiredTokens removes entries whose tokens expired before now.
	PurgeExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}
