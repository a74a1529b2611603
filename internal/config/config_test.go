package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8000", cfg.Addr())
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 30*time.Second, cfg.SummaryCacheTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SUMMARY_CACHE_TTL", "2m")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 2*time.Minute, cfg.SummaryCacheTTL)
}

func TestBadTTLFallsBack(t *testing.T) {
	t.Setenv("SUMMARY_CACHE_TTL", "soon")

	cfg := Load()
	assert.Equal(t, 30*time.Second, cfg.SummaryCacheTTL)
}
