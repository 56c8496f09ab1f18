// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dish

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

// CachedRepository keeps the wire menu of a restaurant in Redis.
// Cache errors are logged and never returned.
type CachedRepository struct {
	next  Repository
	cache redis.Store
	ttl   time.Duration
}

// NewCachedRepository wraps next with a cache of the given ttl.
func NewCachedRepository(next Repository, cache redis.Store, ttl time.Duration) *CachedRepository {
	return &CachedRepository{next: next, cache: cache, ttl: ttl}
}

// ListDishes serves the menu from cache, filling it on a miss.
func (repository *CachedRepository) ListDishes(context context.Context, restaurantID string) ([]RestaurantDish, error) {
	key := cacheKey(restaurantID)
	logger := ctxutil.GetLogger(context)

	if dishes, ok := repository.cached(context, key); ok {
		return dishes, nil
	}

	dishes, err := repository.next.ListDishes(context, restaurantID)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(dishes); err == nil {
		if err := repository.cache.Set(context, key, encoded, repository.ttl); err != nil {
			logger.Warn("dish_cache_fill_failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return dishes, nil
}

// GetDish looks the dish up in the cached menu before asking upstream.
func (repository *CachedRepository) GetDish(context context.Context, restaurantID, id string) (*RestaurantDish, error) {
	if dishes, ok := repository.cached(context, cacheKey(restaurantID)); ok {
		for index := range dishes {
			if dishes[index].ID.String() == id {
				return &dishes[index], nil
			}
		}
	}
	return repository.next.GetDish(context, restaurantID, id)
}

// CreateDish forwards the write and drops the cached menu.
func (repository *CachedRepository) CreateDish(context context.Context, restaurantID string, payload Payload) (*RestaurantDish, error) {
	dish, err := repository.next.CreateDish(context, restaurantID, payload)
	repository.invalidate(context, restaurantID)
	return dish, err
}

// UpdateDish forwards the write and drops the cached menu.
func (repository *CachedRepository) UpdateDish(context context.Context, restaurantID, id string, payload Payload) (*RestaurantDish, error) {
	dish, err := repository.next.UpdateDish(context, restaurantID, id, payload)
	repository.invalidate(context, restaurantID)
	return dish, err
}

// DeleteDish forwards the write and drops the cached menu.
func (repository *CachedRepository) DeleteDish(context context.Context, restaurantID, id string) error {
	err := repository.next.DeleteDish(context, restaurantID, id)
	repository.invalidate(context, restaurantID)
	return err
}

func (repository *CachedRepository) cached(context context.Context, key string) ([]RestaurantDish, bool) {
	raw, err := repository.cache.Get(context, key)
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			ctxutil.GetLogger(context).Warn("dish_cache_unavailable", slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}

	var dishes []RestaurantDish
	if err := json.Unmarshal(raw, &dishes); err != nil {
		ctxutil.GetLogger(context).Warn("dish_cache_corrupt", slog.String("key", key))
		return nil, false
	}
	return dishes, true
}

func (repository *CachedRepository) invalidate(context context.Context, restaurantID string) {
	if err := repository.cache.Delete(context, cacheKey(restaurantID)); err != nil {
		ctxutil.GetLogger(context).Warn("dish_cache_invalidate_failed",
			slog.String("restaurant_id", restaurantID),
			slog.Any("error", err),
		)
	}
}

func cacheKey(restaurantID string) string {
	return constants.RedisPrefixDishes + restaurantID
}
