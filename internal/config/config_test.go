package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.App.BaseURL)
	assert.Equal(t, 6, cfg.App.ShortCodeLength)
	assert.Equal(t, 4, cfg.App.ClickWorkers)
	assert.Equal(t, 1024, cfg.App.ClickQueueSize)
	assert.False(t, cfg.App.RateLimitEnabled)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "https://ipapi.co", cfg.Geo.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.Geo.Timeout)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SHORT_CODE_LENGTH", "8")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("GEO_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 8, cfg.App.ShortCodeLength)
	assert.True(t, cfg.App.RateLimitEnabled)
	assert.Equal(t, 5*time.Second, cfg.Geo.Timeout)
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "app",
		Password: "pw",
		DBName:   "urlite",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db.internal port=5433 user=app password=pw dbname=urlite sslmode=require", c.DatabaseDSN())
}

func TestRedisAddr(t *testing.T) {
	c := RedisConfig{Host: "cache.internal", Port: "6380"}
	assert.Equal(t, "cache.internal:6380", c.RedisAddr())
}
