// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dish_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sommelier/internal/core/dish"
	"github.com/taibuivan/sommelier/internal/core/multilingual"
	"github.com/taibuivan/sommelier/internal/platform/redis"
	"github.com/taibuivan/sommelier/internal/platform/remote"
)

// memoryStore is an in-memory [redis.Store].
type memoryStore struct {
	mu      sync.Mutex
	values  map[string][]byte
	failAll bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string][]byte{}}
}

func (store *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.failAll {
		return nil, errors.New("connection refused")
	}
	value, ok := store.values[key]
	if !ok {
		return nil, redis.ErrCacheMiss
	}
	return value, nil
}

func (store *memoryStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.failAll {
		return errors.New("connection refused")
	}
	store.values[key] = value
	return nil
}

func (store *memoryStore) Delete(_ context.Context, keys ...string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.failAll {
		return errors.New("connection refused")
	}
	for _, key := range keys {
		delete(store.values, key)
	}
	return nil
}

func TestCachedRepository_ListAndInvalidate(t *testing.T) {
	upstream := seed("Entrée", "Plat")
	store := newMemoryStore()
	repository := dish.NewCachedRepository(upstream, store, time.Minute)
	ctx := context.Background()

	_, err := repository.ListDishes(ctx, "resto-1")
	require.NoError(t, err)
	_, err = repository.ListDishes(ctx, "resto-1")
	require.NoError(t, err)
	assert.Equal(t, 1, upstream.listHit)
	assert.Contains(t, store.values, "cache:dishes:resto-1")

	record, err := repository.GetDish(ctx, "resto-1", "2")
	require.NoError(t, err)
	assert.Equal(t, "Plat", record.DishType["fr"])

	require.NoError(t, repository.DeleteDish(ctx, "resto-1", "1"))
	assert.NotContains(t, store.values, "cache:dishes:resto-1")

	remaining, err := repository.ListDishes(ctx, "resto-1")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, 2, upstream.listHit)
}

func TestCachedRepository_StoreDownFallsThrough(t *testing.T) {
	upstream := seed("Entrée")
	store := newMemoryStore()
	store.failAll = true
	repository := dish.NewCachedRepository(upstream, store, time.Minute)

	dishes, err := repository.ListDishes(context.Background(), "resto-1")
	require.NoError(t, err)
	assert.Len(t, dishes, 1)

	record, err := repository.GetDish(context.Background(), "resto-1", "1")
	require.NoError(t, err)
	assert.Equal(t, "1", record.ID.String())
}

/*
TestRemoteRepository_Paths drives the repository through the real HTTP client
and checks that empty aroma slots are sent as null.
*/
func TestRemoteRepository_Paths(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
		body map[string]any
	)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, request.Method+" "+request.URL.EscapedPath())

		switch request.Method {
		case http.MethodGet:
			if request.URL.Path == "/restaurants/resto-1/dishes" {
				_, _ = writer.Write([]byte(`[{"id": 3, "dish_name": "Rösti", "food_cat_1": "25"}]`))
				return
			}
			_, _ = writer.Write([]byte(`{"id": 3, "dish_name": {"fr": "Rösti"}}`))
		case http.MethodPut:
			_ = json.NewDecoder(request.Body).Decode(&body)
			body["id"] = 3
			_ = json.NewEncoder(writer).Encode(body)
		case http.MethodDelete:
			writer.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	client, err := remote.NewClient(remote.Options{BaseURL: server.URL, Timeout: time.Second})
	require.NoError(t, err)
	repository := dish.NewRemoteRepository(client)
	ctx := context.Background()

	dishes, err := repository.ListDishes(ctx, "resto-1")
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, multilingual.Text{"fr": "Rösti"}, dishes[0].DishName)
	require.True(t, dishes[0].FoodCat1.Valid)
	assert.Equal(t, 25, dishes[0].FoodCat1.Value)

	payload := dish.ToPayload(dish.Dish{Name: "Rösti", Keywords: []dish.Keyword{{Key: "whiteStarch"}}}, "fr")
	updated, err := repository.UpdateDish(ctx, "resto-1", "3", payload)
	require.NoError(t, err)
	assert.Equal(t, "3", updated.ID.String())

	require.NoError(t, repository.DeleteDish(ctx, "resto-1", "3"))

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, body, "food_cat_2")
	assert.Nil(t, body["food_cat_2"])
	assert.EqualValues(t, 25, body["food_cat_1"])
	assert.Equal(t, []string{
		"GET /restaurants/resto-1/dishes",
		"PUT /restaurants/resto-1/dishes/3",
		"DELETE /restaurants/resto-1/dishes/3",
	}, seen)
}
