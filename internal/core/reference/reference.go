// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference exposes the static catalogs to the admin UI.

The lists feed selection controls: grape varieties, aroma keywords, bottle
formats and wine types. Every list is built from the in-process catalogs, so
the endpoints never reach the recommendation service.

# Access Control

Every endpoint requires [sec.RoleViewer]: the catalogs are only useful to
signed-in operators.
*/
package reference

import (
	"strings"

	"github.com/taibuivan/sommelier/internal/core/catalog"
	"github.com/taibuivan/sommelier/internal/core/wine"
	"github.com/taibuivan/sommelier/pkg/slice"
)

// WineTypeOption is a wine type with its label in the requested locale.
type WineTypeOption struct {
	Value wine.WineType `json:"value"`
	Label string        `json:"label"`
}

// GrapeOptions returns the grape options whose name contains search,
// ignoring case. An empty search returns the whole catalog.
func GrapeOptions(search string) []catalog.Option {
	options := catalog.GrapeOptions()

	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return options
	}

	return slice.Filter(options, func(option catalog.Option) bool {
		return strings.Contains(strings.ToLower(option.Label), needle)
	})
}

// WineTypeOptions lists the wine types in menu order, labelled in locale.
func WineTypeOptions(locale string) []WineTypeOption {
	return slice.Map(wine.WineTypes(), func(wineType wine.WineType) WineTypeOption {
		return WineTypeOption{Value: wineType, Label: wineType.Label(locale)}
	})
}
