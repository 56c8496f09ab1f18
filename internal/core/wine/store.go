// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

import "context"

// Repository reads and writes wire wines of one restaurant.
type Repository interface {
	ListWines(context context.Context, restaurantID string) ([]RestaurantWine, error)
	GetWine(context context.Context, restaurantID, id string) (*RestaurantWine, error)
	CreateWine(context context.Context, restaurantID string, payload Payload) (*RestaurantWine, error)
	UpdateWine(context context.Context, restaurantID, id string, payload Payload) (*RestaurantWine, error)
	DeleteWine(context context.Context, restaurantID, id string) error
}
