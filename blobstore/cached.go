package blobstore

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachedStore wraps a Store and keeps whole blobs in memory after the
// first read. Concurrent Gets for the same blob are collapsed into one
// fetch from the inner store.
//
// Snapshots are immutable per name, so the cache only needs invalidation
// on Put/Delete through this wrapper.
type CachedStore struct {
	inner Store

	mu    sync.RWMutex
	cache map[string][]byte

	group singleflight.Group
}

// NewCachedStore creates a read-through cache around inner.
func NewCachedStore(inner Store) *CachedStore {
	return &CachedStore{
		inner: inner,
		cache: make(map[string][]byte),
	}
}

// Put writes through to the inner store and invalidates the cache entry.
func (s *CachedStore) Put(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()
	return s.inner.Put(ctx, name, data)
}

// Get returns the cached blob, fetching it from the inner store on miss.
func (s *CachedStore) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		copied := make([]byte, len(data))
		copy(copied, data)
		return copied, nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		data, err := s.inner.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[name] = data
		s.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	fetched := v.([]byte)
	copied := make([]byte, len(fetched))
	copy(copied, fetched)
	return copied, nil
}

// Delete removes the blob from the inner store and the cache.
func (s *CachedStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()
	return s.inner.Delete(ctx, name)
}

// List passes through to the inner store.
func (s *CachedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
