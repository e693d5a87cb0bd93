package kvstore

import (
	"context"
	"io"
	"sync"

	"github.com/mikiasgoitom/folio/internal/domain/contract"
)

// Opener resolves configuration and builds a store.
type Opener func(ctx context.Context) (contract.IKVStore, error)

// Lazy opens its store on first use. While opening fails (for example because
// credentials have not been injected yet) every call returns that error and the
// next call tries again; once open, the store is reused.
type Lazy struct {
	open Opener

	mu    sync.Mutex
	store contract.IKVStore
}

func NewLazy(open Opener) *Lazy {
	return &Lazy{open: open}
}

var (
	_ contract.IKVStore = (*Lazy)(nil)
	_ contract.IPinger  = (*Lazy)(nil)
)

// Init opens the store now. Bootstrap calls it to fail fast on bad configuration.
func (l *Lazy) Init(ctx context.Context) error {
	_, err := l.resolve(ctx)
	return err
}

func (l *Lazy) resolve(ctx context.Context) (contract.IKVStore, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store != nil {
		return l.store, nil
	}
	store, err := l.open(ctx)
	if err != nil {
		return nil, err
	}
	l.store = store
	return store, nil
}

func (l *Lazy) Get(ctx context.Context, key string) (string, bool, error) {
	s, err := l.resolve(ctx)
	if err != nil {
		return "", false, err
	}
	return s.Get(ctx, key)
}

func (l *Lazy) Set(ctx context.Context, key, value string) error {
	s, err := l.resolve(ctx)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, value)
}

func (l *Lazy) Incr(ctx context.Context, key string) (int64, error) {
	s, err := l.resolve(ctx)
	if err != nil {
		return 0, err
	}
	return s.Incr(ctx, key)
}

func (l *Lazy) Decr(ctx context.Context, key string) (int64, error) {
	s, err := l.resolve(ctx)
	if err != nil {
		return 0, err
	}
	return s.Decr(ctx, key)
}

func (l *Lazy) LPush(ctx context.Context, key, value string) (int64, error) {
	s, err := l.resolve(ctx)
	if err != nil {
		return 0, err
	}
	return s.LPush(ctx, key, value)
}

func (l *Lazy) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	s, err := l.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return s.LRange(ctx, key, start, stop)
}

// Ping opens the store if needed and pings it when the driver supports it.
func (l *Lazy) Ping(ctx context.Context) error {
	s, err := l.resolve(ctx)
	if err != nil {
		return err
	}
	if p, ok := s.(contract.IPinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Close closes the underlying store if it was opened and holds resources.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
