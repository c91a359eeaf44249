package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles account registration and sessions.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the routes for authentication.
// limit guards the credential endpoints, auth protects the session endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, limit, auth gin.HandlerFunc) {
	h := newAuthHandler(authService)

	group := rg.Group("/auth")
	{
		group.POST("/register", limit, h.register)
		group.POST("/login", limit, h.login)
		group.POST("/logout", auth, h.logout)
		group.GET("/me", auth, h.me)
	}
}

// register godoc
// @Summary Register new user
// @Description Creates a Client account and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ValidationProblem
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Register", slog.String("error", err.Error()))
		handleBindError(c, err)
		return
	}

	issued, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to register user")
		return
	}

	logger.Info("User registered", slog.String("user_id", issued.User.UserID))
	c.JSON(http.StatusOK, dto.ToAuthResponse(issued))
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ValidationProblem
// @Failure 401 {object} map[string]string "Invalid credentials or locked account"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	issued, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuthResponse(issued))
}

// logout godoc
// @Summary Log out
// @Description Revokes the presented access token.
// @Tags auth
// @Success 204
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		respondWithError(c, logger, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// me godoc
// @Summary Current identity
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	roles := claims.Roles
	if roles == nil {
		roles = []string{}
	}
	c.JSON(http.StatusOK, dto.MeResponse{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
		Roles:  roles,
	})
}
