package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_BASE_URL", "REDIS_URL", "SESSION_TTL_HOURS", "COOKIE_SECURE", "HTTP_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "4200", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("RATE_LIMIT_AUTH_RPS", "0.5")
	t.Setenv("RATE_LIMIT_AUTH_BURST", "not-a-number")

	cfg := Load()

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 0.5, cfg.RateLimitAuthRPS)
	assert.Equal(t, 5, cfg.RateLimitAuthBurst)
}
