package store

import (
	"context"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"

	"github.com/mikiasgoitom/folio/internal/domain/contract"
)

// MemoryPageCache is a per-process page cache with a TTL and LRU eviction.
type MemoryPageCache struct {
	pages cache.Cache[string, []byte]
}

func NewMemoryPageCache(ttl time.Duration, maxKeys int) *MemoryPageCache {
	return &MemoryPageCache{
		pages: cache.NewCache[string, []byte]().WithTTL(ttl).WithMaxKeys(maxKeys).WithLRU(),
	}
}

var _ contract.IPageCache = (*MemoryPageCache)(nil)

func (c *MemoryPageCache) Get(_ context.Context, path string) ([]byte, bool, error) {
	body, ok := c.pages.Get(path)
	return body, ok, nil
}

// Set stores body with the cache's default TTL.
func (c *MemoryPageCache) Set(_ context.Context, path string, body []byte) error {
	c.pages.Set(path, body, 0)
	return nil
}

func (c *MemoryPageCache) Invalidate(_ context.Context, path string) error {
	c.pages.Invalidate(path)
	return nil
}

// Len returns the number of cached pages, expired ones included until cleanup.
func (c *MemoryPageCache) Len() int {
	return c.pages.Len()
}
