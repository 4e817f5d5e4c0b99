package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/port"
)

const (
	rateCacheKey = "journey:lender_rates"
	rateCacheTTL = 12 * time.Hour
)

// RateCache is a read-through Redis cache in front of the lender rate table.
// It implements port.LenderRateSource. Cache failures degrade to the source;
// rate reads never fail because Redis is down.
type RateCache struct {
	client *redis.Client
	source port.LenderRateSource
	logger *slog.Logger
}

// NewRateCache wires the cache in front of a rate source.
func NewRateCache(client *redis.Client, source port.LenderRateSource, logger *slog.Logger) *RateCache {
	return &RateCache{client: client, source: source, logger: logger}
}

// CurrentRates returns the cached rates, falling back to the source and
// repopulating the cache on a miss.
func (c *RateCache) CurrentRates(ctx context.Context) ([]port.LenderRate, error) {
	raw, err := c.client.Get(ctx, rateCacheKey).Bytes()
	if err == nil {
		var rates []port.LenderRate
		if err := json.Unmarshal(raw, &rates); err == nil {
			return rates, nil
		}
		c.logger.Warn("corrupt rate cache entry, falling back to source", "error", err)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("rate cache read failed, falling back to source", "error", err)
	}

	rates, err := c.source.CurrentRates(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.store(ctx, rates); err != nil {
		c.logger.Warn("rate cache write failed", "error", err)
	}
	return rates, nil
}

// Refresh loads the source and overwrites the cached entry.
func (c *RateCache) Refresh(ctx context.Context) error {
	rates, err := c.source.CurrentRates(ctx)
	if err != nil {
		return fmt.Errorf("load lender rates: %w", err)
	}
	if err := c.store(ctx, rates); err != nil {
		return fmt.Errorf("store lender rates: %w", err)
	}
	return nil
}

func (c *RateCache) store(ctx context.Context, rates []port.LenderRate) error {
	raw, err := json.Marshal(rates)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, rateCacheKey, raw, rateCacheTTL).Err()
}

// NewRedisClient builds a client and verifies connectivity.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
