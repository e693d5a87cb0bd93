package contract

import "context"

// IKVStore is the remote key-value store behind likes and comments.
// Incr, Decr and LPush are atomic at the store.
type IKVStore interface {
	// Get returns the value at key. found is false when the key is absent or
	// does not hold a scalar value.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Incr(ctx context.Context, key string) (int64, error)
	Decr(ctx context.Context, key string) (int64, error)
	// LPush prepends value to the list at key and returns the new length.
	LPush(ctx context.Context, key, value string) (int64, error)
	// LRange returns elements start..stop inclusive. Negative indexes count from the end, so stop = -1 reads to the end.
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// IPinger is implemented by stores that can check their connection.
type IPinger interface {
	Ping(ctx context.Context) error
}
