// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dish

import "context"

// Repository reads and writes wire dishes of one restaurant.
type Repository interface {
	ListDishes(context context.Context, restaurantID string) ([]RestaurantDish, error)
	GetDish(context context.Context, restaurantID, id string) (*RestaurantDish, error)
	CreateDish(context context.Context, restaurantID string, payload Payload) (*RestaurantDish, error)
	UpdateDish(context context.Context, restaurantID, id string, payload Payload) (*RestaurantDish, error)
	DeleteDish(context context.Context, restaurantID, id string) error
}
