// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/taibuivan/sommelier/internal/platform/constants"
	"github.com/taibuivan/sommelier/internal/platform/ctxutil"
	"github.com/taibuivan/sommelier/internal/platform/redis"
)

// CachedRepository keeps the wire wine list of a restaurant in Redis.
//
// The cache is best-effort: any cache error is logged and the call goes
// straight to the wrapped [Repository]. Writes drop the cached list.
type CachedRepository struct {
	next  Repository
	cache redis.Store
	ttl   time.Duration
}

// NewCachedRepository wraps next with a cache of the given ttl.
func NewCachedRepository(next Repository, cache redis.Store, ttl time.Duration) *CachedRepository {
	return &CachedRepository{next: next, cache: cache, ttl: ttl}
}

// ListWines serves the list from cache, filling it on a miss.
func (repository *CachedRepository) ListWines(context context.Context, restaurantID string) ([]RestaurantWine, error) {
	key := cacheKey(restaurantID)
	logger := ctxutil.GetLogger(context)

	// 1. Cache lookup
	raw, err := repository.cache.Get(context, key)
	if err == nil {
		var wines []RestaurantWine
		if err := json.Unmarshal(raw, &wines); err == nil {
			return wines, nil
		}
		logger.Warn("wine_cache_corrupt", slog.String("key", key))
	} else if !errors.Is(err, redis.ErrCacheMiss) {
		logger.Warn("wine_cache_unavailable", slog.String("key", key), slog.Any("error", err))
	}

	// 2. Upstream
	wines, err := repository.next.ListWines(context, restaurantID)
	if err != nil {
		return nil, err
	}

	// 3. Fill
	if encoded, err := json.Marshal(wines); err == nil {
		if err := repository.cache.Set(context, key, encoded, repository.ttl); err != nil {
			logger.Warn("wine_cache_fill_failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return wines, nil
}

// GetWine looks the wine up in the cached list before asking upstream.
func (repository *CachedRepository) GetWine(context context.Context, restaurantID, id string) (*RestaurantWine, error) {
	if raw, err := repository.cache.Get(context, cacheKey(restaurantID)); err == nil {
		var wines []RestaurantWine
		if json.Unmarshal(raw, &wines) == nil {
			for index := range wines {
				if wines[index].ID.String() == id {
					return &wines[index], nil
				}
			}
		}
	}
	return repository.next.GetWine(context, restaurantID, id)
}

// CreateWine forwards the write and drops the cached list.
func (repository *CachedRepository) CreateWine(context context.Context, restaurantID string, payload Payload) (*RestaurantWine, error) {
	wine, err := repository.next.CreateWine(context, restaurantID, payload)
	repository.invalidate(context, restaurantID)
	return wine, err
}

// UpdateWine forwards the write and drops the cached list.
func (repository *CachedRepository) UpdateWine(context context.Context, restaurantID, id string, payload Payload) (*RestaurantWine, error) {
	wine, err := repository.next.UpdateWine(context, restaurantID, id, payload)
	repository.invalidate(context, restaurantID)
	return wine, err
}

// DeleteWine forwards the write and drops the cached list.
func (repository *CachedRepository) DeleteWine(context context.Context, restaurantID, id string) error {
	err := repository.next.DeleteWine(context, restaurantID, id)
	repository.invalidate(context, restaurantID)
	return err
}

// invalidate runs even when the write failed: the upstream state is unknown.
func (repository *CachedRepository) invalidate(context context.Context, restaurantID string) {
	if err := repository.cache.Delete(context, cacheKey(restaurantID)); err != nil {
		ctxutil.GetLogger(context).Warn("wine_cache_invalidate_failed",
			slog.String("restaurant_id", restaurantID),
			slog.Any("error", err),
		)
	}
}

func cacheKey(restaurantID string) string {
	return constants.RedisPrefixWines + restaurantID
}
