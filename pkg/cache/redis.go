// Package cache memoizes finished solution documents keyed by a
// fingerprint of the input document plus (strategy, use_mrv). It is a pure
// performance layer: the core search never consults it, and a cache miss
// is always safe to resolve by re-solving.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eduplan/timetable-engine/pkg/config"
)

// NewRedis returns a configured Redis client.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// SolutionCache stores marshaled solution documents under a run fingerprint.
type SolutionCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewSolutionCache wraps an existing Redis client.
func NewSolutionCache(client *redis.Client, ttl time.Duration) *SolutionCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SolutionCache{client: client, ttl: ttl, prefix: "timetable:solution:"}
}

// Get fetches and unmarshals a cached solution document, if present.
func (c *SolutionCache) Get(ctx context.Context, fingerprint string, out interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+fingerprint).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// Set marshals and stores a solution document under its fingerprint.
func (c *SolutionCache) Set(ctx context.Context, fingerprint string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+fingerprint, raw, c.ttl).Err()
}
