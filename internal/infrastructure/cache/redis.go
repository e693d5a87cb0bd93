package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/folio/internal/domain/entity"
)

// NewRedisFromURL connects to Redis (e.g. "redis://localhost:6379/0"), installs the
// metrics hook and verifies the connection with a PING.
func NewRedisFromURL(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("%w: REDIS_URL is required", entity.ErrStoreNotConfigured)
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse redis URL: %v", entity.ErrStoreNotConfigured, err)
	}

	rdb := redis.NewClient(opts)
	rdb.AddHook(&MetricsHook{})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: redis ping: %w", entity.ErrStoreUnavailable, err)
	}
	return rdb, nil
}

// Close closes the client, ignoring nil.
func Close(rdb *redis.Client) {
	if rdb != nil {
		_ = rdb.Close()
	}
}
