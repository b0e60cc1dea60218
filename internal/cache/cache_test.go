package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGet_CachesWithinTTL(t *testing.T) {
	calls := 0
	c := New(time.Minute, func(_ context.Context, key string) (int, error) {
		calls++
		return len(key), nil
	})

	ctx := context.Background()
	v, err := c.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 3 {
		t.Errorf("value = %d, want 3", v)
	}

	// Second get must be served from cache.
	if _, err := c.Get(ctx, "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
}

func TestGet_RefetchesAfterExpiry(t *testing.T) {
	calls := 0
	c := New(time.Minute, func(_ context.Context, key string) (int, error) {
		calls++
		return calls, nil
	})

	now := time.Now()
	c.SetClock(func() time.Time { return now })

	ctx := context.Background()
	if _, err := c.Get(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Advance past the TTL.
	now = now.Add(2 * time.Minute)
	v, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 2 {
		t.Errorf("value = %d, want 2 (refetched)", v)
	}
	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2", calls)
	}
}

func TestGet_FetchErrorNotCached(t *testing.T) {
	boom := errors.New("boom")
	fail := true
	c := New(time.Minute, func(_ context.Context, _ string) (int, error) {
		if fail {
			return 0, boom
		}
		return 42, nil
	})

	ctx := context.Background()
	if _, err := c.Get(ctx, "k"); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}

	fail = false
	v, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("value = %d, want 42", v)
	}
}

func TestInvalidate_ForcesRefetch(t *testing.T) {
	calls := 0
	c := New(time.Hour, func(_ context.Context, _ string) (int, error) {
		calls++
		return calls, nil
	})

	ctx := context.Background()
	if _, err := c.Get(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Invalidate("k")

	v, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 2 {
		t.Errorf("value = %d, want 2 after invalidation", v)
	}
}
