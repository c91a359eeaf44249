package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/invoice_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// getHealth godoc
// @Summary Show the status of server.
// @Description Reports OK when the server runs and, if configured, the database answers.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func getHealth(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checker != nil {
			if err := checker.Ping(c.Request.Context()); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	}
}
