package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "invoice-management-app"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	JWTAudience       string

	// AuthRateLimit is a ulule/limiter formatted rate such as "10-M".
	AuthRateLimit            string
	LockoutMaxFailedAttempts int
	LockoutDuration          time.Duration

	// Bootstrap data
	AdminEmail     string
	AdminPassword  string
	SeedSampleData bool

	CORSAllowedOrigins []string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
}

// GoogleEnabled reports whether all Google OAuth settings are present.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "120m")
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("JWT_AUDIENCE", "invoice-management-clients")
	viper.SetDefault("AUTH_RATE_LIMIT", "10-M")
	viper.SetDefault("LOCKOUT_MAX_FAILED_ATTEMPTS", 5)
	viper.SetDefault("LOCKOUT_DURATION", "5m")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("SEED_SAMPLE_DATA", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDuration("JWT_EXPIRY_DURATION", 120*time.Minute)
	cfg.LockoutDuration = parseDuration("LOCKOUT_DURATION", 5*time.Minute)

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}
	cfg.JWTAudience = viper.GetString("JWT_AUDIENCE")

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.LockoutMaxFailedAttempts = viper.GetInt("LOCKOUT_MAX_FAILED_ATTEMPTS")
	if cfg.LockoutMaxFailedAttempts <= 0 {
		cfg.LockoutMaxFailedAttempts = 5
		log.Printf("Warning: Invalid LOCKOUT_MAX_FAILED_ATTEMPTS. Defaulting to %d.\n", cfg.LockoutMaxFailedAttempts)
	}

	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	if cfg.AdminEmail != "" && cfg.AdminPassword == "" {
		log.Println("Warning: ADMIN_EMAIL set without ADMIN_PASSWORD. No administrator will be seeded.")
	}
	cfg.SeedSampleData = viper.GetBool("SEED_SAMPLE_DATA")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if !cfg.GoogleEnabled() {
		log.Println("Warning: Google OAuth settings incomplete. Google login will not function.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}
