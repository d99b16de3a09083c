package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/domain/schedule"
	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// AvailabilityCache keeps resolved slot lists in redis for a short TTL.
// Every redis failure is treated as a miss; availability is recomputed from
// the database on demand, so losing the cache never loses correctness.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func (c *AvailabilityCache) Get(ctx context.Context, key schedule.CalendarKey, date time.Time) ([]queries.SlotView, bool) {
	raw, err := c.client.Get(ctx, cacheKey(key, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("availability cache read failed", "error", err)
		}
		return nil, false
	}
	var slots []queries.SlotView
	if err := json.Unmarshal(raw, &slots); err != nil {
		slog.Warn("availability cache entry corrupt", "error", err)
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, key schedule.CalendarKey, date time.Time, slots []queries.SlotView) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(key, date), raw, c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", "error", err)
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, key schedule.CalendarKey, date time.Time) {
	if err := c.client.Del(ctx, cacheKey(key, date)).Err(); err != nil {
		slog.Warn("availability cache invalidation failed", "error", err)
	}
}

// cacheKey is keyed per calendar and local day. Invalidation after a commit or
// a cancellation only touches the affected day.
func cacheKey(key schedule.CalendarKey, date time.Time) string {
	return fmt.Sprintf("availability:%s:%s", key.String(), date.Format("2006-01-02"))
}
