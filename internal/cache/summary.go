package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/freelancedesk/freelance-tracker/internal/domain/stats"
)

const summaryKey = "dashboard:summary"

// SummaryCache keeps the dashboard summary in Redis for a short TTL so the
// dashboard does not re-scan the record sets on every poll. A nil cache or a
// nil Redis client disables every operation; the service runs fine without
// Redis, it just recomputes.
type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSummaryCache(rdb *redis.Client, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SummaryCache{rdb: rdb, ttl: ttl}
}

func (c *SummaryCache) enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *SummaryCache) Get(ctx context.Context) (*stats.Summary, bool) {
	if !c.enabled() {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("summary cache get:", err)
		}
		return nil, false
	}

	var s stats.Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return &s, true
}

func (c *SummaryCache) Set(ctx context.Context, s stats.Summary) {
	if !c.enabled() {
		return
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, summaryKey, raw, c.ttl).Err(); err != nil {
		log.Println("summary cache set:", err)
	}
}

// Invalidate drops the cached summary. Called after any successful mutation;
// a cache miss on the next dashboard load is the whole point.
func (c *SummaryCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.rdb.Del(ctx, summaryKey).Err(); err != nil {
		log.Println("summary cache invalidate:", err)
	}
}
