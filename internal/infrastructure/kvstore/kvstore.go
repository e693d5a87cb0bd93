// Package kvstore provides the key-value store clients behind post engagement:
// the Upstash REST client, a native Redis client and an in-process store, plus
// Lazy, which defers opening the configured client until first use.
package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/mikiasgoitom/folio/internal/domain/contract"
	"github.com/mikiasgoitom/folio/internal/infrastructure/cache"
)

const (
	DriverUpstash = "upstash"
	DriverRedis   = "redis"
	DriverMemory  = "memory"
)

// Config selects and configures a store driver.
type Config struct {
	Driver       string
	UpstashURL   string
	UpstashToken string
	RedisURL     string
	Timeout      time.Duration
}

// Open builds the store for cfg.Driver. An empty driver means upstash.
// Missing credentials yield an error wrapping entity.ErrStoreNotConfigured.
func Open(ctx context.Context, cfg Config) (contract.IKVStore, error) {
	switch cfg.Driver {
	case "", DriverUpstash:
		client, err := NewUpstashClient(UpstashConfig{
			URL:     cfg.UpstashURL,
			Token:   cfg.UpstashToken,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case DriverRedis:
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}
		rdb, err := cache.NewRedisFromURL(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(rdb), nil
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
