// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dish manages the menu of a restaurant.

Dishes carry up to three aroma keywords that drive wine pairing. On the wire
they are the numeric food categories food_cat_1 (main aroma), food_cat_2 and
food_cat_3 (secondary aromas), each with a fixed confidence percentage.
*/
package dish

import (
	"github.com/taibuivan/sommelier/internal/core/catalog"
)

// # Canonical Types

// Dish is the form edited by operators.
//
// Name, Description and Section hold the value in the request locale. The
// ByLocale fields expose both translations for side-by-side editing.
type Dish struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	NameByLocale        Localized `json:"name_by_locale"`
	Description         string    `json:"description"`
	DescriptionByLocale Localized `json:"description_by_locale"`
	Section             string    `json:"section"`
	SectionByLocale     Localized `json:"section_by_locale"`
	SalesPoints         []bool    `json:"sales_points"`
	Keywords            []Keyword `json:"keywords"`
}

// Localized holds the two supported translations of a text.
type Localized struct {
	FR string `json:"fr,omitempty"`
	EN string `json:"en,omitempty"`
}

// Keyword is an aroma tag. Position 0 is the main aroma.
type Keyword struct {
	ID     string          `json:"id"`
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Colors catalog.Palette `json:"colors"`
}

// Filter narrows a dish listing.
type Filter struct {
	// Section keeps dishes whose section matches, ignoring case. Empty keeps everything.
	Section string
}

// # Aroma Slots

const (
	// MaxKeywords is the number of keywords that reach the wire.
	MaxKeywords = 3

	MainAromaPercent      = 100
	SecondaryAromaPercent = 50
	TertiaryAromaPercent  = 25
)

// slotPercents is the fixed weighting of food_cat_1..3.
var slotPercents = [MaxKeywords]int{MainAromaPercent, SecondaryAromaPercent, TertiaryAromaPercent}
