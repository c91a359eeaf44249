package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// googleOAuthHandler handles Google OAuth related requests.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	authService        portssvc.AuthSvcFacade
}

// registerGoogleOAuthRoutes registers the Google sign-in routes.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade, authService portssvc.AuthSvcFacade, limit gin.HandlerFunc) {
	h := &googleOAuthHandler{googleOAuthService: googleOAuthService, authService: authService}

	google := rg.Group("/auth/google")
	{
		google.GET("/login-url", h.loginURL)
		google.POST("/exchange-code", limit, h.exchangeCode)
	}
}

// loginURL godoc
// @Summary Google consent URL
// @Description Returns the URL the client should open together with the CSRF state it must verify on return.
// @Tags oauth
// @Produce json
// @Success 200 {object} dto.GoogleLoginURLResponse
// @Router /auth/google/login-url [get]
func (h *googleOAuthHandler) loginURL(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		respondWithError(c, logger, err, "Failed to start Google login")
		return
	}
	c.JSON(http.StatusOK, dto.GoogleLoginURLResponse{
		URL:   h.googleOAuthService.GetGoogleLoginURL(ctx, state),
		State: state,
	})
}

// exchangeCode godoc
// @Summary Exchange authorization code for access token
// @Description Exchanges a Google authorization code, signs the user in and returns an access token.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ValidationProblem
// @Failure 401 {object} map[string]string "Google identity rejected"
// @Failure 409 {object} map[string]string "Email registered with a password"
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnContext(ctx, "Failed to bind JSON for exchange code request", slog.String("error", err.Error()))
		handleBindError(c, err)
		return
	}

	issued, err := h.authService.LoginWithGoogle(ctx, req.Code)
	if err != nil {
		respondWithError(c, logger, err, "Failed to sign in with Google")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuthResponse(issued))
}
