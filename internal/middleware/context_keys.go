package middleware

import (
	"context"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/SscSPs/invoice_management_app/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey = contextKey("userID")
	claimsKey = contextKey("claims")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetClaimsFromContext retrieves the access token claims set by AuthMiddleware.
func GetClaimsFromContext(c *gin.Context) (*utils.AccessClaims, bool) {
	return ClaimsFromCtx(c.Request.Context())
}

// ClaimsFromCtx retrieves the access token claims from a standard context.
func ClaimsFromCtx(ctx context.Context) (*utils.AccessClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*utils.AccessClaims)
	return claims, ok && claims != nil
}

// RolesFromClaims converts the role claim into domain roles.
func RolesFromClaims(claims *utils.AccessClaims) []domain.Role {
	roles := make([]domain.Role, len(claims.Roles))
	for i, r := range claims.Roles {
		roles[i] = domain.Role(r)
	}
	return roles
}

func withClaims(ctx context.Context, claims *utils.AccessClaims) context.Context {
	ctx = context.WithValue(ctx, userIDKey, claims.Subject)
	return context.WithValue(ctx, claimsKey, claims)
}
