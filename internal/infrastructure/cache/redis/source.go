// internal/infrastructure/cache/redis/source.go
package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
)

const catalogKey = "catalog:products"

// CachingSource decorates a catalog source with a TTL-bound Redis
// read-through cache of the product payload. A cache miss or a Redis
// failure falls through to the underlying source; caching is an
// optimization, never a correctness dependency.
type CachingSource struct {
	client *Client
	source catalog.Source
	ttl    time.Duration
	logger *logrus.Logger
}

// NewCachingSource wraps source with the catalog payload cache
func NewCachingSource(client *Client, source catalog.Source, ttl time.Duration, logger *logrus.Logger) *CachingSource {
	return &CachingSource{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

// FetchProducts returns the cached payload when present, otherwise
// fetches from the underlying source and populates the cache.
func (s *CachingSource) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	if data, err := s.client.Get(ctx, catalogKey); err == nil {
		var products []catalog.Product
		if err := json.Unmarshal([]byte(data), &products); err == nil {
			s.logger.WithField("products", len(products)).Debug("Catalog served from cache")
			return products, nil
		}
		// Corrupt cache entry; drop it and refetch.
		_ = s.client.Del(ctx, catalogKey)
	}

	products, err := s.source.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		if err := s.client.Set(ctx, catalogKey, data, s.ttl); err != nil {
			s.logger.WithError(err).Debug("Failed to cache catalog payload")
		}
	}

	return products, nil
}
