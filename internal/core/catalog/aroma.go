// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Aroma is one entry of the food category catalog.
type Aroma struct {
	ID     int     `json:"id"`
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Colors Palette `json:"colors"`
}

// aromaEntry pairs a key with its labels. The fr/en labels seed the message
// catalog in labels.go.
type aromaEntry struct {
	key string
	fr  string
	en  string
}

// aromas is order-significant: the index is the food category used on the wire.
//
//	 0–6   cheese
//	 7–13  protein
//	14–28  vegetable, herb, spice
//	29–31  fruit
var aromas = [...]aromaEntry{
	{"saltyCrumblyCheese", "Fromage salé friable", "Salty crumbly cheese"},
	{"nuttyHardCheese", "Fromage à pâte dure", "Nutty hard cheese"},
	{"softCreamyCheese", "Fromage crémeux", "Soft creamy cheese"},
	{"pungentCheese", "Fromage puissant", "Pungent cheese"},
	{"goatCheese", "Fromage de chèvre", "Goat cheese"},
	{"blueCheese", "Fromage bleu", "Blue cheese"},
	{"washedRindCheese", "Fromage à croûte lavée", "Washed rind cheese"},
	{"redMeat", "Viande rouge", "Red meat"},
	{"curedMeat", "Charcuterie", "Cured meat"},
	{"poultry", "Volaille", "Poultry"},
	{"pork", "Porc", "Pork"},
	{"finFish", "Poisson", "Fin fish"},
	{"shellfish", "Fruits de mer", "Shellfish"},
	{"gameMeat", "Gibier", "Game"},
	{"mushroom", "Champignons", "Mushroom"},
	{"greenVegetable", "Légumes verts", "Green vegetable"},
	{"rootVegetable", "Légumes racines", "Root vegetable"},
	{"alliums", "Ail et oignon", "Onion and garlic"},
	{"nightshade", "Solanacées", "Nightshade"},
	{"legumes", "Légumineuses", "Beans and peas"},
	{"greenHerb", "Herbes fraîches", "Green herbs"},
	{"bakingSpice", "Épices douces", "Baking spices"},
	{"exoticSpice", "Épices exotiques", "Exotic spices"},
	{"redPepper", "Piment", "Red pepper"},
	{"blackPepper", "Poivre", "Black pepper"},
	{"whiteStarch", "Féculents", "White starch"},
	{"wholeGrain", "Céréales complètes", "Whole grain"},
	{"sweetStarchyVegetable", "Légumes doux", "Sweet starchy vegetable"},
	{"smokedFood", "Fumé", "Smoked"},
	{"redFruit", "Fruits rouges", "Red fruit"},
	{"citrusFruit", "Agrumes", "Citrus"},
	{"stoneFruit", "Fruits à noyau", "Stone fruit"},
}

// normalize folds case and strips whitespace. A Caser keeps state, so one is
// built per call.
func normalize(text string) string {
	folded := cases.Fold().String(text)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}

// # Aroma Lookups

// AromaCount returns the number of food categories.
func AromaCount() int {
	return len(aromas)
}

// LookupAromaKey returns the key at position n.
func LookupAromaKey(n int) (string, bool) {
	if n < 0 || n >= len(aromas) {
		return "", false
	}
	return aromas[n].key, true
}

// AromaKey returns the key at position n, or n itself rendered as a string
// when the position is unknown. Unresolved categories stay renderable.
func AromaKey(n int) string {
	if key, ok := LookupAromaKey(n); ok {
		return key
	}
	return strconv.Itoa(n)
}

// AromaNumber resolves a keyword back to its food category.
//
// # Matching Order
//
//  1. Exact key ("redMeat").
//  2. Normalized equality (case-folded, whitespace removed) with a key or
//     with a French or English label. "Red Meat" and "Viande rouge" both
//     land on redMeat.
//  3. Normalized substring between text and a key, either direction. The
//     longest overlap wins, so "Cured meat sandwich" picks curedMeat over
//     redMeat.
//
// Ties keep the first catalog position, so a short or generic text such as
// "cheese" lands on the first cheese key.
func AromaNumber(text string) (int, bool) {

	// 1. Exact key
	for id, entry := range aromas {
		if entry.key == text {
			return id, true
		}
	}

	needle := normalize(text)
	if needle == "" {
		return 0, false
	}

	// 2. Normalized key or display label
	for id, entry := range aromas {
		if normalize(entry.key) == needle || normalize(entry.fr) == needle || normalize(entry.en) == needle {
			return id, true
		}
	}

	// 3. Longest substring overlap with a key
	best, bestScore := 0, 0
	for id, entry := range aromas {
		key := normalize(entry.key)

		score := 0
		switch {
		case strings.Contains(needle, key):
			score = len(key)
		case strings.Contains(key, needle):
			score = len(needle)
		}

		if score > bestScore {
			best, bestScore = id, score
		}
	}

	return best, bestScore > 0
}

// Aromas returns the catalog with labels in locale and palette colors.
func Aromas(locale string) []Aroma {
	list := make([]Aroma, len(aromas))
	for id, entry := range aromas {
		list[id] = Aroma{
			ID:     id,
			Key:    entry.key,
			Label:  AromaLabel(entry.key, locale),
			Colors: ColorsFor(entry.key),
		}
	}
	return list
}

// AromaOptions returns the catalog as (key, label) pairs in catalog order.
func AromaOptions(locale string) []Option {
	options := make([]Option, len(aromas))
	for id, entry := range aromas {
		options[id] = Option{Value: entry.key, Label: AromaLabel(entry.key, locale)}
	}
	return options
}
