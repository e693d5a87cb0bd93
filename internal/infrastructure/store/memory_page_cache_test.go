package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPageCache(t *testing.T) {
	c := NewMemoryPageCache(time.Minute, 10)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "/blogs/post")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "/blogs/post", []byte(`{"likes":1}`)))
	body, ok, err := c.Get(ctx, "/blogs/post")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"likes":1}`, string(body))

	require.NoError(t, c.Invalidate(ctx, "/blogs/post"))
	_, ok, _ = c.Get(ctx, "/blogs/post")
	assert.False(t, ok)
}

func TestMemoryPageCache_Expires(t *testing.T) {
	c := NewMemoryPageCache(20*time.Millisecond, 10)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "/blogs/post", []byte("x")))

	assert.Eventually(t, func() bool {
		_, ok, _ := c.Get(ctx, "/blogs/post")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryPageCache_MaxKeys(t *testing.T) {
	c := NewMemoryPageCache(time.Minute, 2)
	ctx := context.Background()
	for _, p := range []string{"/blogs/a", "/blogs/b", "/blogs/c"} {
		require.NoError(t, c.Set(ctx, p, []byte(p)))
	}
	assert.Equal(t, 2, c.Len())
	_, ok, _ := c.Get(ctx, "/blogs/a")
	assert.False(t, ok, "oldest page is evicted")
}
