package redis

import (
	"context"
	"encoding/json"
	"time"

	"shopsphere/business/reporting"
	"shopsphere/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const statsCacheKey = "admin:dashboard:stats"

// StatsCache keeps the assembled dashboard payload in Redis for a short
// TTL. Cache failures are logged and swallowed; the aggregator just
// recomputes.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *StatsCache) Get(ctx context.Context) (*reporting.DashboardStats, bool) {
	raw, err := c.client.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Failed to read stats cache", err)
		}
		return nil, false
	}

	var stats reporting.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		logger.Warn("Failed to decode stats cache", err)
		return nil, false
	}

	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, stats *reporting.DashboardStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		logger.Warn("Failed to encode stats cache", err)
		return
	}

	if err := c.client.Set(ctx, statsCacheKey, raw, c.ttl).Err(); err != nil {
		logger.Warn("Failed to write stats cache", err)
	}
}

// Invalidate drops the cached payload. Called after admin mutations
// that change what the dashboard reports.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, statsCacheKey).Err(); err != nil {
		logger.Warn("Failed to invalidate stats cache", err)
	}
}
