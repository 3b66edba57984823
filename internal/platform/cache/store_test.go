package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_SharesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore[[]int](time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})
	load := func(context.Context) ([]int, error) {
		calls.Add(1)
		<-release
		return []int{1980, 1981}, nil
	}

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			got, err := store.GetOrLoad(context.Background(), "season:totals:1980:1981", load)
			if err != nil || len(got) != 2 {
				t.Errorf("unexpected load result %v %v", got, err)
			}
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("load called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[int](0)
	boom := errors.New("provider down")
	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("failed load must not be cached")
	}
	v, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Fatalf("expected retry to load 7, got %d %v", v, err)
	}
}

func TestStore_ExpiryAndInvalidate(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	store.Set(ctx, "season:totals:1980:1990", 11)
	store.Set(ctx, "season:totals:1917:2024", 107)
	store.Set(ctx, "factors", 1)

	if v, ok := store.Get(ctx, "season:totals:1980:1990"); !ok || v != 11 {
		t.Fatalf("expected cached value, got %d %v", v, ok)
	}
	if n := store.Invalidate(ctx, "season:totals:"); n != 2 {
		t.Fatalf("expected 2 invalidated keys, got %d", n)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(ctx, "factors"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expired entry should be evicted on read")
	}
}
