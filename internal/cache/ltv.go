// internal/cache/ltv.go
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LTVCache is a Redis read cache for lifetime-value lookups. The store stays
// authoritative: cache failures are logged and treated as misses, and writes
// invalidate instead of updating.
type LTVCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewLTVCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *LTVCache {
	return &LTVCache{client: client, ttl: ttl, logger: logger}
}

func (c *LTVCache) Get(ctx context.Context, key string) (int64, bool) {
	raw, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false
	}
	if err != nil {
		c.logger.Error("ltv cache get failed", zap.String("key", key), zap.Error(err))
		return 0, false
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.logger.Error("ltv cache holds non-integer value", zap.String("key", key), zap.Error(err))
		return 0, false
	}
	return value, true
}

func (c *LTVCache) Set(ctx context.Context, key string, ltv int64) {
	if err := c.client.Set(ctx, key, strconv.FormatInt(ltv, 10), c.ttl).Err(); err != nil {
		c.logger.Error("ltv cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *LTVCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("ltv cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
