package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/invoice_management_app/internal/core/services"
	"github.com/SscSPs/invoice_management_app/internal/handlers"
	"github.com/SscSPs/invoice_management_app/internal/middleware"
	"github.com/SscSPs/invoice_management_app/internal/platform/config"
	"github.com/SscSPs/invoice_management_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/invoice_management_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title Invoice Management API
// @version 1.0
// @description Persons, invoices and statistics for small-business invoicing.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Prices go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Error("Database migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	seeder := services.NewSeedService(cfg, serviceContainer.User, repos.PersonRepo)
	if err := seeder.Seed(ctx); err != nil {
		logger.Error("Failed to seed initial data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	authLimiter, err := middleware.NewMemoryRateLimiter(cfg.AuthRateLimit)
	if err != nil {
		logger.Error("Invalid auth rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := middleware.NewHTTPMetrics()

	r := gin.New()

	// Global middleware (logging, recovery, CORS, metrics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		metrics.Middleware(),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{
		Health:      dbPool,
		Metrics:     metrics,
		AuthLimiter: authLimiter,
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
