package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/plantvision/plantvision-api/internal/api/metrics"
	"github.com/plantvision/plantvision-api/internal/core/domain"
)

const cacheTTL = 24 * time.Hour

// ClassificationCache stores model outputs keyed by the SHA-256 of the
// uploaded bytes. The model is immutable for the process lifetime, so a hit
// is always valid and skips a forward pass.
type ClassificationCache struct {
	client *redis.Client
}

// NewClassificationCache creates a ClassificationCache wrapping the given
// Redis client.
func NewClassificationCache(client *redis.Client) *ClassificationCache {
	return &ClassificationCache{client: client}
}

type cachedResult struct {
	ClassName  string  `json:"class_name"`
	Confidence float64 `json:"confidence"`
}

// Get returns the cached classification for key, or (nil, nil) on a miss.
func (c *ClassificationCache) Get(ctx context.Context, key string) (*domain.Classification, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.InferenceCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var r cachedResult
	if err := json.Unmarshal(val, &r); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}

	metrics.InferenceCacheTotal.WithLabelValues("hit").Inc()
	return &domain.Classification{ClassName: r.ClassName, Confidence: r.Confidence}, nil
}

// Set records the classification for key (expires after cacheTTL).
func (c *ClassificationCache) Set(ctx context.Context, key string, result domain.Classification) error {
	b, err := json.Marshal(cachedResult{ClassName: result.ClassName, Confidence: result.Confidence})
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, key, b, cacheTTL).Err()
}
