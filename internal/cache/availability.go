package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/glamora/salon-scheduler/internal/domain/booking"
)

const (
	keyPrefix  = "availability:"
	defaultTTL = 30 * time.Second
)

// AvailabilityCache keeps the computed day grid in Redis. A nil
// receiver is a disabled cache: every Get misses, writes are dropped.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	if rdb == nil {
		return nil
	}
	return &AvailabilityCache{rdb: rdb, ttl: defaultTTL}
}

func dayKey(date time.Time) string {
	return keyPrefix + date.Format("2006-01-02")
}

func (c *AvailabilityCache) Get(ctx context.Context, date time.Time) ([]domain.Slot, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, dayKey(date)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("availability cache get:", err)
		}
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, date time.Time, slots []domain.Slot) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, dayKey(date), raw, c.ttl).Err(); err != nil {
		log.Println("availability cache set:", err)
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, date time.Time) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, dayKey(date)).Err(); err != nil {
		log.Println("availability cache del:", err)
	}
}
