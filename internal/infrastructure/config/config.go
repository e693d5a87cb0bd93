package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mikiasgoitom/folio/internal/infrastructure/kvstore"
	usecasecontract "github.com/mikiasgoitom/folio/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port                string
	LogLevel            string
	StoreEagerInit      bool
	RedisURL            string
	PageCacheTTL        time.Duration
	PageCacheMaxKeys    int
	RevalidateQueueSize int
	RateLimitPerSecond  float64
	CORSAllowOrigins    []string
	ShutdownTimeout     time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
// Store credentials are not captured here; see StoreSettings.
func NewConfig() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		StoreEagerInit:      getEnvAsBool("STORE_EAGER_INIT", false),
		RedisURL:            getEnv("REDIS_URL", ""),
		PageCacheTTL:        getEnvAsDuration("PAGE_CACHE_TTL", time.Minute),
		PageCacheMaxKeys:    getEnvAsInt("PAGE_CACHE_MAX_KEYS", 1000),
		RevalidateQueueSize: getEnvAsInt("REVALIDATE_QUEUE_SIZE", 256),
		RateLimitPerSecond:  getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		CORSAllowOrigins:    getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
		ShutdownTimeout:     getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// StoreSettings reads the engagement store settings from the environment at call time,
// so credentials injected after startup are picked up by the next store open attempt.
func (c *Config) StoreSettings() kvstore.Config {
	return kvstore.Config{
		Driver:       getEnv("STORE_DRIVER", kvstore.DriverUpstash),
		UpstashURL:   getEnv("UPSTASH_REDIS_REST_URL", ""),
		UpstashToken: getEnv("UPSTASH_REDIS_REST_TOKEN", ""),
		RedisURL:     getEnv("REDIS_URL", ""),
		Timeout:      getEnvAsDuration("STORE_TIMEOUT", 5*time.Second),
	}
}

// GetPort returns the HTTP listen port.
func (c *Config) GetPort() string {
	return c.Port
}

// GetCORSAllowOrigins returns the allowed CORS origins.
func (c *Config) GetCORSAllowOrigins() []string {
	return c.CORSAllowOrigins
}

// GetRateLimitPerSecond returns the per-client request rate limit.
func (c *Config) GetRateLimitPerSecond() float64 {
	return c.RateLimitPerSecond
}

// GetPageCacheTTL returns how long rendered engagement snapshots stay cached.
func (c *Config) GetPageCacheTTL() time.Duration {
	return c.PageCacheTTL
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}

// Accepts Go duration strings ("30s", "2m").
func getEnvAsDuration(name string, fallback time.Duration) time.Duration {
	valStr := getEnv(name, "")
	if val, err := time.ParseDuration(valStr); err == nil {
		return val
	}
	return fallback
}

// Comma separated; empty items are dropped.
func getEnvAsList(name string, fallback []string) []string {
	valStr := getEnv(name, "")
	var out []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
