package handlers

import (
	"github.com/SscSPs/invoice_management_app/cmd/docs"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/middleware"
	"github.com/SscSPs/invoice_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps carries the optional infrastructure the routes are wired to.
type RouteDeps struct {
	Health      HealthChecker
	Metrics     *middleware.HTTPMetrics
	AuthLimiter *limiter.Limiter
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	RegisterValidators()

	r.GET("/health", getHealth(deps.Health))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	setupAPIRoutes(r, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(r *gin.Engine, services *portssvc.ServiceContainer, deps RouteDeps) {
	api := r.Group("/api")

	auth := middleware.AuthMiddleware(services.TokenService)
	var limit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if deps.AuthLimiter != nil {
		limit = middleware.RateLimit(deps.AuthLimiter)
	}

	registerAuthRoutes(api, services.Auth, limit, auth)
	if services.GoogleOAuthHandler != nil {
		registerGoogleOAuthRoutes(api, services.GoogleOAuthHandler, services.Auth, limit)
	}
	registerPersonRoutes(api, services.Person)
	registerInvoiceRoutes(api, services.Invoice, auth)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
