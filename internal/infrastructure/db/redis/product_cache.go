package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ecotrack/ecotrack-api/internal/api/metrics"
	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

const (
	catalogKey = "catalog:products"
	catalogTTL = time.Minute
)

// ProductCache caches the product catalog listing in Redis. All failures are
// logged and swallowed: a broken cache must only cost latency, never requests.
type ProductCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client, log zerolog.Logger) *ProductCache {
	return &ProductCache{client: client, log: log}
}

// GetList returns the cached catalog listing, if present and decodable.
func (c *ProductCache) GetList(ctx context.Context) ([]domain.Product, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("catalog cache read failed")
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache entry corrupt, dropping")
		_ = c.client.Del(ctx, catalogKey).Err()
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return products, true
}

// SetList stores the catalog listing with a short TTL.
func (c *ProductCache) SetList(ctx context.Context, products []domain.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, catalogTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache write failed")
	}
}

// Invalidate drops the cached listing after a catalog write.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
