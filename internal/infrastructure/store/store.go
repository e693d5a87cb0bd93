package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/folio/internal/domain/contract"
)

// PageCacheStore keeps rendered page payloads in Redis so every instance sees
// the same invalidations.
type PageCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPageCacheStore(rdb *redis.Client, ttl time.Duration) *PageCacheStore {
	return &PageCacheStore{
		rdb: rdb,
		ttl: ttl,
	}
}

var _ contract.IPageCache = (*PageCacheStore)(nil)

func pageKey(path string) string { return fmt.Sprintf("page:%s", path) }

func (c *PageCacheStore) Get(ctx context.Context, path string) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, pageKey(path)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (c *PageCacheStore) Set(ctx context.Context, path string, body []byte) error {
	return c.rdb.Set(ctx, pageKey(path), body, c.ttl).Err()
}

func (c *PageCacheStore) Invalidate(ctx context.Context, path string) error {
	return c.rdb.Del(ctx, pageKey(path)).Err()
}

// InvalidateAll drops every cached page, in batches of 200 deletes.
func (c *PageCacheStore) InvalidateAll(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, pageKey("*"), 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n%200 != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
