// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package wine manages the wine list of a restaurant.

Wines are stored by the recommendation service in a multilingual, numerically
coded wire schema ([RestaurantWine]). Operators edit a single-language canonical
form ([Wine]). [ToDomain] and [ToPayload] convert between the two; everything
else in this package (repository, cache, service, HTTP) moves those values
around.

# Trust Boundary

Grape variety ids sent by the recommendation service are ignored. The catalog id
is always re-derived from the grape name, and the outgoing name is always
re-derived from the catalog id.
*/
package wine

import (
	"strings"

	"github.com/taibuivan/sommelier/internal/core/multilingual"
	"github.com/taibuivan/sommelier/pkg/convert"
)

// # Canonical Types

// Wine is the single-language form edited by operators.
type Wine struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Subname     string           `json:"subname,omitempty"`
	Vintage     convert.Integer  `json:"vintage"`
	WineType    WineType         `json:"wine_type"`
	SalesPoints []bool           `json:"sales_points"`
	Region      string           `json:"region,omitempty"`
	Country     string           `json:"country,omitempty"`
	Grapes      []GrapeComponent `json:"grapes"`
	Formats     []Format         `json:"formats"`
	Keywords    []Keyword        `json:"keywords"`
}

// GrapeComponent is one line of a blend.
//
// ID is the identity of the line in the list, not the catalog id.
// GrapeVarietyID holds the stringified catalog id, or "" when the name could
// not be resolved. An empty Grapes slice on a [Wine] means the proportions are
// unknown.
type GrapeComponent struct {
	ID             string         `json:"id"`
	GrapeVarietyID string         `json:"grape_variety_id"`
	Name           string         `json:"name,omitempty"`
	Percentage     convert.Number `json:"percentage"`
}

// Format is a bottle size with its price. The first entry of [Wine.Formats] is
// the one sent to the recommendation service.
type Format struct {
	ID    string         `json:"id"`
	Label string         `json:"label"`
	Price convert.Number `json:"price"`
}

// Keyword is a free tag attached to a wine. The wire schema has no keyword
// field for wines yet, so keywords never leave the process.
type Keyword struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Filter narrows a wine listing.
type Filter struct {
	// Types keeps only wines of the listed types. Empty keeps everything.
	Types []WineType
}

const (
	FieldName    = "name"
	FieldVintage = "vintage"
	FieldType    = "wine_type"
	FieldFormats = "formats"
)

// # Wine Types

// WineType is the French label of a wine type. It is the canonical value.
type WineType string

const (
	TypeSparkling WineType = "Mousseux"
	TypeWhite     WineType = "Blanc"
	TypeRed       WineType = "Rouge"
	TypeRose      WineType = "Rosé"
	TypeFortified WineType = "Fortifié"
	TypeSweet     WineType = "Doux"
	TypeOldWhite  WineType = "Moelleux ou liquoreux"
	TypeOrange    WineType = "Orange"

	// DefaultType is used when the wire value matches no known type.
	DefaultType = TypeRed
)

// wineTypes pairs every type with its English label, in menu order.
var wineTypes = [...]struct {
	value WineType
	en    string
}{
	{TypeSparkling, "Sparkling"},
	{TypeWhite, "White"},
	{TypeRed, "Red"},
	{TypeRose, "Rosé"},
	{TypeFortified, "Fortified"},
	{TypeSweet, "Sweet"},
	{TypeOldWhite, "Old White"},
	{TypeOrange, "Orange"},
}

// ParseWineType matches text against the French and English labels,
// ignoring case and surrounding spaces.
func ParseWineType(text string) (WineType, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	for _, entry := range wineTypes {
		if strings.EqualFold(trimmed, string(entry.value)) || strings.EqualFold(trimmed, entry.en) {
			return entry.value, true
		}
	}
	return "", false
}

// Valid reports whether t is one of the known types.
func (t WineType) Valid() bool {
	_, ok := ParseWineType(string(t))
	return ok
}

// Text returns the fr/en label pair sent on the wire. t may hold either
// label in any case; an unknown value yields the pair of [DefaultType].
func (t WineType) Text() multilingual.Text {
	parsed, ok := ParseWineType(string(t))
	if !ok {
		parsed = DefaultType
	}

	for _, entry := range wineTypes {
		if entry.value == parsed {
			return multilingual.Text{multilingual.LocaleFR: string(entry.value), multilingual.LocaleEN: entry.en}
		}
	}
	return nil
}

// Label returns the label of t in locale.
func (t WineType) Label(locale string) string {
	return t.Text()[multilingual.Canonical(locale)]
}

// WineTypes lists every type in menu order.
func WineTypes() []WineType {
	types := make([]WineType, len(wineTypes))
	for i, entry := range wineTypes {
		types[i] = entry.value
	}
	return types
}
