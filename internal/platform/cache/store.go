package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type item[V any] struct {
	value    V
	deadline time.Time
}

func (i item[V]) live(now time.Time) bool {
	return i.deadline.IsZero() || now.Before(i.deadline)
}

// Store is an in-process TTL cache keyed by string. A zero ttl never expires.
type Store[V any] struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu    sync.RWMutex
	items map[string]item[V]
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{ttl: ttl, now: time.Now, items: map[string]item[V]{}}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if ok && it.live(s.now()) {
		return it.value, true
	}
	if ok {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
	}
	var zero V
	return zero, false
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	it := item[V]{value: value}
	if s.ttl > 0 {
		it.deadline = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.items[key] = it
	s.mu.Unlock()
}

// Invalidate drops every key starting with prefix and reports how many went.
func (s *Store[V]) Invalidate(_ context.Context, prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
			n++
		}
	}
	return n
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// GetOrLoad serves key from the cache or calls load once for all concurrent
// callers. Failed loads are not cached.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	if v, ok := s.Get(ctx, key); ok {
		return v, nil
	}

	shared, err, _ := s.group.Do(key, func() (any, error) {
		if v, ok := s.Get(ctx, key); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	v, ok := shared.(V)
	if !ok {
		var zero V
		return zero, fmt.Errorf("cache: unexpected value type %T for %q", shared, key)
	}
	return v, nil
}
