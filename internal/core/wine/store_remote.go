// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

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

// ListWines fetches the whole wine list of the restaurant.
func (repository *RemoteRepository) ListWines(context context.Context, restaurantID string) ([]RestaurantWine, error) {
	var wines []RestaurantWine
	if err := repository.transport.Do(context, http.MethodGet, collectionPath(restaurantID), nil, &wines); err != nil {
		return nil, err
	}
	return wines, nil
}

// GetWine fetches one wine.
func (repository *RemoteRepository) GetWine(context context.Context, restaurantID, id string) (*RestaurantWine, error) {
	var wine RestaurantWine
	if err := repository.transport.Do(context, http.MethodGet, itemPath(restaurantID, id), nil, &wine); err != nil {
		return nil, err
	}
	return &wine, nil
}

// CreateWine posts a new wine and returns the stored record.
func (repository *RemoteRepository) CreateWine(context context.Context, restaurantID string, payload Payload) (*RestaurantWine, error) {
	var wine RestaurantWine
	if err := repository.transport.Do(context, http.MethodPost, collectionPath(restaurantID), payload, &wine); err != nil {
		return nil, err
	}
	return &wine, nil
}

// UpdateWine replaces a wine. When the service answers without a body the
// record is read back.
func (repository *RemoteRepository) UpdateWine(context context.Context, restaurantID, id string, payload Payload) (*RestaurantWine, error) {
	var wine RestaurantWine
	if err := repository.transport.Do(context, http.MethodPut, itemPath(restaurantID, id), payload, &wine); err != nil {
		return nil, err
	}

	if wine.ID == "" {
		return repository.GetWine(context, restaurantID, id)
	}
	return &wine, nil
}

// DeleteWine removes a wine.
func (repository *RemoteRepository) DeleteWine(context context.Context, restaurantID, id string) error {
	return repository.transport.Do(context, http.MethodDelete, itemPath(restaurantID, id), nil, nil)
}

func collectionPath(restaurantID string) string {
	return "/restaurants/" + url.PathEscape(restaurantID) + "/wines"
}

func itemPath(restaurantID, id string) string {
	return collectionPath(restaurantID) + "/" + url.PathEscape(id)
}
