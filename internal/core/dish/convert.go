// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dish

import (
	"log/slog"
	"strings"

	"github.com/taibuivan/sommelier/internal/core/catalog"
	"github.com/taibuivan/sommelier/internal/core/multilingual"
	"github.com/taibuivan/sommelier/internal/core/salespoint"
)

// SalesPointContext describes the points of sale of the managed restaurant.
type SalesPointContext = salespoint.Context

// # Wire → Domain

/*
ToDomain converts a wire dish into its canonical form. It never fails.

food_cat_1 treats 0 as "no main aroma". For food_cat_2 and food_cat_3, 0 is
a real category. Negative values, null and non-numeric values are absent in
every slot. Values past
the end of the aroma catalog pass through as their literal number with neutral
colors.

Parameters:
  - wire: The record returned by the recommendation service
  - salesPoints: Point-of-sale layout of the restaurant
  - locale: Preferred locale for text and aroma labels

Returns:
  - Dish: The canonical dish
*/
func ToDomain(wire RestaurantDish, salesPoints SalesPointContext, locale string) Dish {
	dish := Dish{
		ID:                  wire.ID.String(),
		Name:                multilingual.Resolve(wire.DishName, locale),
		NameByLocale:        localizedFrom(wire.DishName),
		Description:         multilingual.Resolve(wire.DishDescription, locale),
		DescriptionByLocale: localizedFrom(wire.DishDescription),
		Section:             multilingual.Resolve(wire.DishType, locale),
		SectionByLocale:     localizedFrom(wire.DishType),
		SalesPoints:         salespoint.Normalize(wire.SalesPoints, salesPoints.Count),
		Keywords:            make([]Keyword, 0, MaxKeywords),
	}

	for slot, category := range wire.categories() {
		if !category.Valid || category.Value < 0 || (slot == 0 && category.Value == 0) {
			continue
		}

		key := catalog.AromaKey(category.Value)
		dish.Keywords = append(dish.Keywords, Keyword{
			ID:     key,
			Key:    key,
			Label:  catalog.AromaLabel(key, locale),
			Colors: catalog.ColorsFor(key),
		})
	}

	return dish
}

// localizedFrom extracts the two supported translations.
func localizedFrom(text multilingual.Text) Localized {
	english := text.Value(multilingual.LocaleEN)
	if english == "" {
		english = text.Value(multilingual.LocaleENUS)
	}
	return Localized{FR: text.Value(multilingual.LocaleFR), EN: english}
}

// # Domain → Wire

/*
ToPayload converts a canonical dish into a create/update body. It never fails.

The edited value of each text is written under locale and mirrored under the
other supported locale. A blank value clears the text in both locales.
Keywords 0, 1 and 2 become food_cat_1, 2 and 3 with weights 100, 50 and 25.
Keywords past the third are ignored. A keyword that matches no aroma leaves
its slot empty; later keywords do not shift.

Parameters:
  - dish: The canonical dish
  - locale: The locale the operator edited in

Returns:
  - Payload: The sanitized wire body
*/
func ToPayload(dish Dish, locale string) Payload {
	payload := Payload{
		DishName:        multilingual.BuildMirrored(strings.TrimSpace(dish.Name), locale),
		DishType:        multilingual.BuildMirrored(strings.TrimSpace(dish.Section), locale),
		DishDescription: multilingual.BuildMirrored(strings.TrimSpace(dish.Description), locale),
		SalesPoints:     salespoint.Normalize(dish.SalesPoints, len(dish.SalesPoints)),
	}

	for slot, keyword := range dish.Keywords {
		if slot >= MaxKeywords {
			break
		}

		category, ok := keywordNumber(keyword)
		if !ok {
			slog.Default().Warn("keyword_dropped",
				slog.String("dish_id", dish.ID),
				slog.Int("slot", slot),
				slog.String("key", keyword.Key),
				slog.String("label", keyword.Label),
			)
			continue
		}

		payload.setSlot(slot, category)
	}

	return payload
}

// keywordNumber resolves the key first, then the display label.
func keywordNumber(keyword Keyword) (int, bool) {
	if number, ok := catalog.AromaNumber(keyword.Key); ok {
		return number, true
	}
	return catalog.AromaNumber(keyword.Label)
}
