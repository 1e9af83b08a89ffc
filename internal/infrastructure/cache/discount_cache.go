package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"paintmarket/internal/domain/entities"

	"github.com/go-redis/redis/v8"
)

const activeDiscountsKey = "discounts:active"

// DiscountCache keeps the public active-discount listing in Redis.
type DiscountCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// Connect parses redisURL and pings the server.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

func NewDiscountCache(rdb *redis.Client, ttl time.Duration) *DiscountCache {
	return &DiscountCache{rdb: rdb, ttl: ttl}
}

// GetActive returns the cached listing; found is false on a miss.
func (c *DiscountCache) GetActive(ctx context.Context) (discounts []entities.Discount, found bool, err error) {
	val, err := c.rdb.Get(ctx, activeDiscountsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get active discounts: %w", err)
	}
	if err := json.Unmarshal(val, &discounts); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal active discounts: %w", err)
	}
	return discounts, true, nil
}

func (c *DiscountCache) SetActive(ctx context.Context, discounts []entities.Discount) error {
	b, err := json.Marshal(discounts)
	if err != nil {
		return fmt.Errorf("failed to marshal active discounts: %w", err)
	}
	return c.rdb.Set(ctx, activeDiscountsKey, b, c.ttl).Err()
}

func (c *DiscountCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, activeDiscountsKey).Err()
}
