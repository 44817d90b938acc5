package adapters

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCacheClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)
	return redis.NewClient(&redis.Options{Addr: server.Addr()}), server
}

func TestRedisOverviewCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss before set", func(t *testing.T) {
		client, _ := newTestCacheClient(t)
		cache := NewRedisOverviewCache(client)

		if _, ok := cache.Get(ctx, uuid.New(), "2025-03"); ok {
			t.Error("expected a miss on an empty cache")
		}
	})

	t.Run("set then get round trip", func(t *testing.T) {
		client, _ := newTestCacheClient(t)
		cache := NewRedisOverviewCache(client)
		userID := uuid.New()
		payload := []byte(`{"yearly":{"total_income":"150000"}}`)

		if err := cache.Set(ctx, userID, "2025-03", payload); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		got, ok := cache.Get(ctx, userID, "2025-03")
		if !ok {
			t.Fatal("expected a hit after set")
		}
		if string(got) != string(payload) {
			t.Errorf("expected payload %s, got %s", payload, got)
		}
	})

	t.Run("entries are scoped per user and month", func(t *testing.T) {
		client, _ := newTestCacheClient(t)
		cache := NewRedisOverviewCache(client)
		userID := uuid.New()

		if err := cache.Set(ctx, userID, "2025-03", []byte("march")); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		if _, ok := cache.Get(ctx, userID, "2025-04"); ok {
			t.Error("expected a different month to miss")
		}
		if _, ok := cache.Get(ctx, uuid.New(), "2025-03"); ok {
			t.Error("expected a different user to miss")
		}
	})

	t.Run("invalidate drops every month for the user only", func(t *testing.T) {
		client, _ := newTestCacheClient(t)
		cache := NewRedisOverviewCache(client)
		userID := uuid.New()
		otherID := uuid.New()

		for _, month := range []string{"2025-02", "2025-03"} {
			if err := cache.Set(ctx, userID, month, []byte("x")); err != nil {
				t.Fatalf("set failed: %v", err)
			}
		}
		if err := cache.Set(ctx, otherID, "2025-03", []byte("y")); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		if err := cache.Invalidate(ctx, userID); err != nil {
			t.Fatalf("invalidate failed: %v", err)
		}

		if _, ok := cache.Get(ctx, userID, "2025-02"); ok {
			t.Error("expected February entry to be invalidated")
		}
		if _, ok := cache.Get(ctx, userID, "2025-03"); ok {
			t.Error("expected March entry to be invalidated")
		}
		if _, ok := cache.Get(ctx, otherID, "2025-03"); !ok {
			t.Error("expected the other user's entry to survive")
		}
	})

	t.Run("invalidate with no entries is a no-op", func(t *testing.T) {
		client, _ := newTestCacheClient(t)
		cache := NewRedisOverviewCache(client)
		if err := cache.Invalidate(ctx, uuid.New()); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("entries expire", func(t *testing.T) {
		client, server := newTestCacheClient(t)
		cache := NewRedisOverviewCache(client)
		userID := uuid.New()

		if err := cache.Set(ctx, userID, "2025-03", []byte("x")); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		server.FastForward(overviewCacheTTL + 1)

		if _, ok := cache.Get(ctx, userID, "2025-03"); ok {
			t.Error("expected the entry to expire after the TTL")
		}
	})

	t.Run("unreachable redis degrades to a miss", func(t *testing.T) {
		client, server := newTestCacheClient(t)
		cache := NewRedisOverviewCache(client)
		server.Close()

		if _, ok := cache.Get(ctx, uuid.New(), "2025-03"); ok {
			t.Error("expected a miss when redis is down")
		}
	})
}
