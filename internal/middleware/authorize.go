package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// RequirePolicy rejects requests whose token roles do not satisfy policy.
// It must run after AuthMiddleware.
func RequirePolicy(policy domain.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !policy.Allows(RolesFromClaims(claims)) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Policy check failed",
				slog.String("policy", string(policy)),
				slog.Any("roles", claims.Roles),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
