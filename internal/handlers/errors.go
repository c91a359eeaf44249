package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors to HTTP responses.
// Not found answers 404 without a body.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var verr *apperrors.ValidationError
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &verr):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		writeValidationProblem(c, verr.Fields)
	case errors.Is(err, apperrors.ErrNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrLockedOut):
		logger.Warn("Locked out account", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account is locked due to repeated failed logins. Try again later."})
	case errors.As(err, &appErr):
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error(fallbackMsg, slog.String("error", err.Error()))
		}
		c.AbortWithStatusJSON(appErr.Code, gin.H{"error": appErr.Message})
	case errors.Is(err, apperrors.ErrConflict):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "The resource has been superseded or removed."})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		writeValidationProblem(c, map[string][]string{"body": {err.Error()}})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// parseIDParam reads a positive integer path parameter, answering 400 otherwise.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeValidationProblem(c, map[string][]string{name: {"The value '" + raw + "' is not valid."}})
		return 0, false
	}
	return id, true
}
