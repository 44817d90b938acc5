// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finsight/backend/internal/application/adapter"
)

// overviewCacheTTL bounds staleness between explicit invalidations.
const overviewCacheTTL = 15 * time.Minute

// redisOverviewCache implements adapter.OverviewCache on Redis. Every
// failure degrades to a cache miss; the analytics engine recomputes.
type redisOverviewCache struct {
	client *redis.Client
}

// NewRedisOverviewCache creates a new Redis-backed overview cache.
func NewRedisOverviewCache(client *redis.Client) adapter.OverviewCache {
	return &redisOverviewCache{
		client: client,
	}
}

func cacheKey(userID uuid.UUID, monthKey string) string {
	return fmt.Sprintf("overview:%s:%s", userID, monthKey)
}

// Get returns the cached payload for the user and month, if present.
func (c *redisOverviewCache) Get(ctx context.Context, userID uuid.UUID, monthKey string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, cacheKey(userID, monthKey)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("overview cache read failed", "error", err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores the payload for the user and month with a short TTL.
func (c *redisOverviewCache) Set(ctx context.Context, userID uuid.UUID, monthKey string, payload []byte) error {
	return c.client.Set(ctx, cacheKey(userID, monthKey), payload, overviewCacheTTL).Err()
}

// Invalidate drops every cached month for the user. Called after any
// record write so reads never observe stale aggregates.
func (c *redisOverviewCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	iter := c.client.Scan(ctx, 0, fmt.Sprintf("overview:%s:*", userID), 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
