// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dish

import (
	"github.com/taibuivan/sommelier/internal/core/multilingual"
	"github.com/taibuivan/sommelier/pkg/convert"
)

// # Wire Types

// RestaurantDish is a dish as returned by the recommendation service.
// A null or non-numeric food category decodes as absent.
type RestaurantDish struct {
	ID              convert.ID              `json:"id"`
	DishName        multilingual.Text       `json:"dish_name"`
	DishType        multilingual.Text       `json:"dish_type"`
	DishDescription multilingual.Text       `json:"dish_description"`
	FoodCat1        convert.OptionalInteger `json:"food_cat_1"`
	FoodCat1Percent convert.OptionalInteger `json:"food_cat_1_percent"`
	FoodCat2        convert.OptionalInteger `json:"food_cat_2"`
	FoodCat2Percent convert.OptionalInteger `json:"food_cat_2_percent"`
	FoodCat3        convert.OptionalInteger `json:"food_cat_3"`
	FoodCat3Percent convert.OptionalInteger `json:"food_cat_3_percent"`
	SalesPoints     []bool                  `json:"sales_points"`
}

// categories returns food_cat_1..3 in slot order.
func (wire RestaurantDish) categories() [MaxKeywords]convert.OptionalInteger {
	return [MaxKeywords]convert.OptionalInteger{wire.FoodCat1, wire.FoodCat2, wire.FoodCat3}
}

// Payload is the create/update body sent to the recommendation service.
//
// Empty aroma slots are sent as null so that an update clears them.
type Payload struct {
	DishName        multilingual.Text `json:"dish_name"`
	DishType        multilingual.Text `json:"dish_type"`
	DishDescription multilingual.Text `json:"dish_description"`
	FoodCat1        *int              `json:"food_cat_1"`
	FoodCat1Percent *int              `json:"food_cat_1_percent"`
	FoodCat2        *int              `json:"food_cat_2"`
	FoodCat2Percent *int              `json:"food_cat_2_percent"`
	FoodCat3        *int              `json:"food_cat_3"`
	FoodCat3Percent *int              `json:"food_cat_3_percent"`
	SalesPoints     []bool            `json:"sales_points"`
}

// setSlot fills food_cat_{slot+1} and its percentage.
func (payload *Payload) setSlot(slot, category int) {
	percent := slotPercents[slot]

	switch slot {
	case 0:
		payload.FoodCat1, payload.FoodCat1Percent = &category, &percent
	case 1:
		payload.FoodCat2, payload.FoodCat2Percent = &category, &percent
	case 2:
		payload.FoodCat3, payload.FoodCat3Percent = &category, &percent
	}
}
