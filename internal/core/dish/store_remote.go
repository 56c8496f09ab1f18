// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dish

import (
	"context"
	"net/http"
	"net/url"
)

// Transport is the subset of the recommendation service client used here.
type Transport interface {
	Do(context context.Context, method, path string, body, out any) error
}

// RemoteRepository implements [Repository] against the recommendation service.
type RemoteRepository struct {
	transport Transport
}

// NewRemoteRepository constructs a [RemoteRepository].
func NewRemoteRepository(transport Transport) *RemoteRepository {
	return &RemoteRepository{transport: transport}
}

// ListDishes fetches the whole menu of the restaurant.
func (repository *RemoteRepository) ListDishes(context context.Context, restaurantID string) ([]RestaurantDish, error) {
	var dishes []RestaurantDish
	if err := repository.transport.Do(context, http.MethodGet, collectionPath(restaurantID), nil, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// GetDish fetches one dish.
func (repository *RemoteRepository) GetDish(context context.Context, restaurantID, id string) (*RestaurantDish, error) {
	var dish RestaurantDish
	if err := repository.transport.Do(context, http.MethodGet, itemPath(restaurantID, id), nil, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

// CreateDish posts a new dish and returns the stored record.
func (repository *RemoteRepository) CreateDish(context context.Context, restaurantID string, payload Payload) (*RestaurantDish, error) {
	var dish RestaurantDish
	if err := repository.transport.Do(context, http.MethodPost, collectionPath(restaurantID), payload, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

// UpdateDish replaces a dish, reading it back when the answer has no body.
func (repository *RemoteRepository) UpdateDish(context context.Context, restaurantID, id string, payload Payload) (*RestaurantDish, error) {
	var dish RestaurantDish
	if err := repository.transport.Do(context, http.MethodPut, itemPath(restaurantID, id), payload, &dish); err != nil {
		return nil, err
	}

	if dish.ID == "" {
		return repository.GetDish(context, restaurantID, id)
	}
	return &dish, nil
}

// DeleteDish removes a dish.
func (repository *RemoteRepository) DeleteDish(context context.Context, restaurantID, id string) error {
	return repository.transport.Do(context, http.MethodDelete, itemPath(restaurantID, id), nil, nil)
}

func collectionPath(restaurantID string) string {
	return "/restaurants/" + url.PathEscape(restaurantID) + "/dishes"
}

func itemPath(restaurantID, id string) string {
	return collectionPath(restaurantID) + "/" + url.PathEscape(id)
}
