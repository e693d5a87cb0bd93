package kvstore

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/mikiasgoitom/folio/internal/domain/contract"
)

var (
	errWrongType  = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
	errNotInteger = errors.New("ERR value is not an integer or out of range")
)

// MemoryStore is an in-process store with Redis semantics for the operations
// the engagement layer uses. It is meant for local development and tests.
type MemoryStore struct {
	mu      sync.Mutex
	scalars map[string]string
	lists   map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		scalars: make(map[string]string),
		lists:   make(map[string][]string),
	}
}

var (
	_ contract.IKVStore = (*MemoryStore)(nil)
	_ contract.IPinger  = (*MemoryStore)(nil)
)

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.scalars[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, key)
	s.scalars[key] = value
	return nil
}

func (s *MemoryStore) Incr(_ context.Context, key string) (int64, error) {
	return s.add(key, 1)
}

func (s *MemoryStore) Decr(_ context.Context, key string) (int64, error) {
	return s.add(key, -1)
}

func (s *MemoryStore) add(key string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, isList := s.lists[key]; isList {
		return 0, errWrongType
	}
	var n int64
	if raw, ok := s.scalars[key]; ok {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, errNotInteger
		}
		n = parsed
	}
	n += delta
	s.scalars[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (s *MemoryStore) LPush(_ context.Context, key, value string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, isScalar := s.scalars[key]; isScalar {
		return 0, errWrongType
	}
	list := make([]string, 0, len(s.lists[key])+1)
	list = append(list, value)
	list = append(list, s.lists[key]...)
	s.lists[key] = list
	return int64(len(list)), nil
}

func (s *MemoryStore) LRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, isScalar := s.scalars[key]; isScalar {
		return nil, errWrongType
	}
	list := s.lists[key]
	from, to, ok := clampRange(int64(len(list)), start, stop)
	if !ok {
		return []string{}, nil
	}
	out := make([]string, to-from+1)
	copy(out, list[from:to+1])
	return out, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// clampRange resolves Redis LRANGE indexes against a list of length n.
func clampRange(n, start, stop int64) (int64, int64, bool) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return 0, 0, false
	}
	return start, stop, true
}
