package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moviehub/movie-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// MovieCache is a read-through cache for single-movie lookups backed by Redis.
// Key format: movie:<id>
type MovieCache struct {
	client *redis.Client
}

// NewMovieCache creates a MovieCache wrapping the given Redis client.
func NewMovieCache(client *redis.Client) *MovieCache {
	return &MovieCache{client: client}
}

// Get returns the cached movie for id, or ok=false on a miss. Decode failures
// are treated as misses so a stale or corrupt entry never breaks a read.
func (c *MovieCache) Get(ctx context.Context, id string) (*domain.Movie, bool) {
	val, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var m domain.Movie
	if err := json.Unmarshal(val, &m); err != nil {
		return nil, false
	}
	return &m, true
}

// Set stores the movie under its id (expires after cacheTTL).
func (c *MovieCache) Set(ctx context.Context, m *domain.Movie) error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(m.ID), b, cacheTTL).Err()
}

// Invalidate drops the cached entry for id, if any.
func (c *MovieCache) Invalidate(ctx context.Context, id string) error {
	err := c.client.Del(ctx, c.key(id)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (c *MovieCache) key(id string) string {
	return "movie:" + id
}
