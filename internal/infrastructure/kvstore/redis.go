package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/folio/internal/domain/contract"
	"github.com/mikiasgoitom/folio/internal/domain/entity"
)

// RedisStore is a store backed by a native Redis connection.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an established client. Close closes it.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

var (
	_ contract.IKVStore = (*RedisStore)(nil)
	_ contract.IPinger  = (*RedisStore)(nil)
)

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, unavailable("GET", err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return unavailable("SET", err)
	}
	return nil
}

func (s *RedisStore) Incr(ctx context.Context, key string) (int64, error) {
	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, unavailable("INCR", err)
	}
	return n, nil
}

func (s *RedisStore) Decr(ctx context.Context, key string) (int64, error) {
	n, err := s.rdb.Decr(ctx, key).Result()
	if err != nil {
		return 0, unavailable("DECR", err)
	}
	return n, nil
}

func (s *RedisStore) LPush(ctx context.Context, key, value string) (int64, error) {
	n, err := s.rdb.LPush(ctx, key, value).Result()
	if err != nil {
		return 0, unavailable("LPUSH", err)
	}
	return n, nil
}

func (s *RedisStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	items, err := s.rdb.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, unavailable("LRANGE", err)
	}
	return items, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return unavailable("PING", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func unavailable(command string, err error) error {
	return fmt.Errorf("%w: %s: %w", entity.ErrStoreUnavailable, command, err)
}
