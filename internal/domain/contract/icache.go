package contract

import "context"

// IPageCache stores rendered page payloads keyed by page path.
type IPageCache interface {
	Get(ctx context.Context, path string) ([]byte, bool, error)
	Set(ctx context.Context, path string, body []byte) error
	Invalidate(ctx context.Context, path string) error
}

// IPageInvalidator marks a cached page as stale. It must not block the caller.
type IPageInvalidator interface {
	InvalidatePath(path string)
}
