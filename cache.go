package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// matchCache is a short-TTL Redis cache of full match responses. Ranking is
// a pure function of the request and the pool snapshot, so serving a
// seconds-old response is safe. A nil *matchCache is valid and disables
// caching.
type matchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// newMatchCache parses redisURL and verifies connectivity.
func newMatchCache(ctx context.Context, redisURL string, ttl time.Duration) (*matchCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &matchCache{client: client, ttl: ttl}, nil
}

// key derives the cache key from the raw request body, so any difference in
// prompt, preferences or result shape is a different entry.
func (c *matchCache) key(body []byte) string {
	sum := sha256.Sum256(body)
	return "match:" + hex.EncodeToString(sum[:])
}

func (c *matchCache) get(ctx context.Context, key string) (*MatchResponse, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var resp MatchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *matchCache) set(ctx context.Context, key string, resp *MatchResponse) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Warnw("cache set failed", "error", err)
	}
}
