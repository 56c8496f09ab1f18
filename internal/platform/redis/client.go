// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis provides a managed client for volatile data storage.

It holds short-lived copies of the restaurant catalogs fetched from the
recommendation service so that list pages do not hit the upstream on every
request.

Core Responsibilities:

  - Volatility: Every entry carries a TTL.
  - Invalidation: Writes through this API delete the affected keys.
  - Safety: Connection pooling and retries are handled by go-redis.
*/
package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Opiniated default timeouts for Redis operations.
const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
	pingTimeout  = 2 * time.Second
)

// ErrCacheMiss is returned by [Cache.Get] when the key does not exist.
var ErrCacheMiss = errors.New("redis: cache miss")

// NewClient parses a Redis URL and returns a ready-to-use client.
//
// # Parameters
//   - context: Context for the initial ping.
//   - redisURL: Redis connection URL.
//   - logger: Structured logger for connection events.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	// Pool configuration Tuning
	options.PoolSize = 10
	options.MinIdleConns = 2
	options.MaxIdleConns = 5

	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout

	client := redis.NewClient(options)

	// Validate connectivity immediately at startup.
	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis client connected",
		slog.String("addr", options.Addr),
		slog.Int("pool_size", options.PoolSize),
	)

	return client, nil
}

// Ping verifies that the Redis client is healthy.
func Ping(context stdctx.Context, client redis.UniversalClient) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}

// # Cache

// Store is the byte-level cache contract consumed by the cached repositories.
type Store interface {
	Get(context stdctx.Context, key string) ([]byte, error)
	Set(context stdctx.Context, key string, value []byte, ttl time.Duration) error
	Delete(context stdctx.Context, keys ...string) error
}

// Cache implements [Store] on top of a go-redis client.
type Cache struct {
	client redis.UniversalClient
}

// NewCache wraps client.
func NewCache(client redis.UniversalClient) *Cache {
	return &Cache{client: client}
}

// Get returns the raw value at key or [ErrCacheMiss].
func (cache *Cache) Get(context stdctx.Context, key string) ([]byte, error) {
	value, err := cache.client.Get(context, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value at key for ttl.
func (cache *Cache) Set(context stdctx.Context, key string, value []byte, ttl time.Duration) error {
	if err := cache.client.Set(context, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Delete removes keys. Missing keys are not an error.
func (cache *Cache) Delete(context stdctx.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := cache.client.Del(context, keys...).Err(); err != nil {
		return fmt.Errorf("redis: delete: %w", err)
	}
	return nil
}
