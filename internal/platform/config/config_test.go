package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 120*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, 5, cfg.LockoutMaxFailedAttempts)
	assert.Equal(t, 5*time.Minute, cfg.LockoutDuration)
	assert.Equal(t, "10-M", cfg.AuthRateLimit)
	assert.False(t, cfg.GoogleEnabled())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY_DURATION", "15m")
	t.Setenv("LOCKOUT_DURATION", "not-a-duration")
	t.Setenv("LOCKOUT_MAX_FAILED_ATTEMPTS", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("GOOGLE_REDIRECT_URL", "https://a.example/callback")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, 5*time.Minute, cfg.LockoutDuration)
	assert.Equal(t, 5, cfg.LockoutMaxFailedAttempts)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.GoogleEnabled())
}
