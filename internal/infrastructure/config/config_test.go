package config

import (
	"os"
	"testing"
	"time"

	"github.com/mikiasgoitom/folio/internal/infrastructure/kvstore"
	"github.com/stretchr/testify/assert"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "PAGE_CACHE_TTL", "RATE_LIMIT_PER_SECOND", "CORS_ALLOW_ORIGINS", "STORE_EAGER_INIT")

	cfg := NewConfig()

	assert.Equal(t, "8080", cfg.GetPort())
	assert.Equal(t, time.Minute, cfg.GetPageCacheTTL())
	assert.Equal(t, 10.0, cfg.GetRateLimitPerSecond())
	assert.Equal(t, []string{"*"}, cfg.GetCORSAllowOrigins())
	assert.False(t, cfg.StoreEagerInit)
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PAGE_CACHE_TTL", "90s")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.dev, ,https://b.dev")
	t.Setenv("STORE_EAGER_INIT", "true")
	t.Setenv("PAGE_CACHE_MAX_KEYS", "not-a-number")

	cfg := NewConfig()

	assert.Equal(t, "9090", cfg.GetPort())
	assert.Equal(t, 90*time.Second, cfg.GetPageCacheTTL())
	assert.Equal(t, 2.5, cfg.GetRateLimitPerSecond())
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, cfg.GetCORSAllowOrigins())
	assert.True(t, cfg.StoreEagerInit)
	assert.Equal(t, 1000, cfg.PageCacheMaxKeys)
}

func TestStoreSettings_ReadAtCallTime(t *testing.T) {
	unsetEnv(t, "STORE_DRIVER", "UPSTASH_REDIS_REST_URL", "UPSTASH_REDIS_REST_TOKEN")
	cfg := NewConfig()

	assert.Empty(t, cfg.StoreSettings().UpstashToken)

	t.Setenv("UPSTASH_REDIS_REST_URL", "https://example.upstash.io")
	t.Setenv("UPSTASH_REDIS_REST_TOKEN", "secret")
	t.Setenv("STORE_TIMEOUT", "2s")

	settings := cfg.StoreSettings()
	assert.Equal(t, "https://example.upstash.io", settings.UpstashURL)
	assert.Equal(t, "secret", settings.UpstashToken)
	assert.Equal(t, 2*time.Second, settings.Timeout)
	assert.Equal(t, kvstore.DriverUpstash, settings.Driver)
}

func TestGetEnvAsList_Empty(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", " , ")
	assert.Equal(t, []string{"*"}, getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}))
}
