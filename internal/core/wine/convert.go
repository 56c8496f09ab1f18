// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

import (
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/taibuivan/sommelier/internal/core/catalog"
	"github.com/taibuivan/sommelier/internal/core/multilingual"
	"github.com/taibuivan/sommelier/internal/core/salespoint"
	"github.com/taibuivan/sommelier/internal/platform/validate"
	"github.com/taibuivan/sommelier/pkg/convert"
)

// ErrBlankFormat is the only error a conversion can return. A wine without a
// format label would reach the recommendation service with an unknown volume
// and corrupt its pricing.
var ErrBlankFormat = validate.RequiredError("formats[0].label", "A format label is required")

// SalesPointContext describes the points of sale of the managed restaurant.
type SalesPointContext = salespoint.Context

// # Wire → Domain

/*
ToDomain converts a wire wine into its canonical form.

It never fails. Every field has a fallback (empty string, 0 or [DefaultType]).
Grapes whose name is not in the catalog keep a line identity but get an empty
GrapeVarietyID, which drops them from the next [ToPayload].

Parameters:
  - wire: The record returned by the recommendation service
  - salesPoints: Point-of-sale layout of the restaurant
  - locale: Preferred locale for multilingual fields

Returns:
  - Wine: The canonical wine
*/
func ToDomain(wire RestaurantWine, salesPoints SalesPointContext, locale string) Wine {
	wineID := wire.ID.String()

	// 1. Multilingual text
	wine := Wine{
		ID:       wineID,
		Name:     multilingual.Resolve(wire.WineName, locale),
		Subname:  multilingual.Resolve(wire.Domain, locale),
		Region:   multilingual.Resolve(wire.Appellation, locale),
		Country:  multilingual.Resolve(wire.Country, locale),
		WineType: resolveWineType(wire.WineType, locale),
		Vintage:  wire.Year,
		Keywords: []Keyword{},
	}

	// 2. Grapes, ids re-derived from names
	wine.Grapes = make([]GrapeComponent, 0, len(wire.GrapesVarieties))
	for index, grape := range wire.GrapesVarieties {
		name := multilingual.Resolve(grape.VarietyName, locale)

		component := GrapeComponent{
			ID:         wineID + "-grape-" + strconv.Itoa(index),
			Name:       name,
			Percentage: convert.Number(sanitizePercent(grape.VarietyPercent.Float64())),
		}

		if id, ok := catalog.LookupGrapeID(name); ok {
			component.GrapeVarietyID = strconv.Itoa(id)
		} else {
			slog.Default().Debug("grape_unresolved",
				slog.String("wine_id", wineID),
				slog.String("name", name),
			)
		}

		wine.Grapes = append(wine.Grapes, component)
	}

	// 3. Single format from volume and price
	centiliters := wire.FormatCL.Float64()
	if centiliters <= 0 {
		centiliters = catalog.DefaultCentiliters
	}
	wine.Formats = []Format{{
		ID:    wineID + "-format-0",
		Label: catalog.RenderCentiliters(centiliters),
		Price: convert.Number(wire.Price.Float64()),
	}}

	// 4. Sales points
	wine.SalesPoints = salespoint.Normalize(wire.SalesPoints, salesPoints.Count)

	return wine
}

// resolveWineType reads the preferred label first, then the other labels in
// key order, then falls back to [DefaultType].
func resolveWineType(text multilingual.Text, locale string) WineType {
	if wineType, ok := ParseWineType(multilingual.Resolve(text, locale)); ok {
		return wineType
	}

	for _, key := range slices.Sorted(maps.Keys(text)) {
		if wineType, ok := ParseWineType(text[key]); ok {
			return wineType
		}
	}

	return DefaultType
}

// # Domain → Wire

/*
ToPayload converts a canonical wine into a create/update body.

Multilingual fields are written under locale and mirrored under the other
supported locale. Grape lines that resolve to no catalog id are dropped. An
empty grape list stays empty: it encodes unknown proportions.

Parameters:
  - wine: The canonical wine, possibly partial
  - locale: The locale the operator edited in

Returns:
  - Payload: The sanitized wire body
  - error: [ErrBlankFormat] when there is no first format label
*/
func ToPayload(wine Wine, locale string) (Payload, error) {

	// 1. The format label is the one hard requirement
	if len(wine.Formats) == 0 || strings.TrimSpace(wine.Formats[0].Label) == "" {
		return Payload{}, ErrBlankFormat
	}
	format := wine.Formats[0]

	// 2. Either label of the pair is accepted
	wineType, ok := ParseWineType(string(wine.WineType))
	if !ok {
		slog.Default().Warn("wine_type_defaulted",
			slog.String("wine_id", wine.ID),
			slog.String("wine_type", string(wine.WineType)),
		)
		wineType = DefaultType
	}

	// 3. Text, mirrored
	payload := Payload{
		WineName:    multilingual.BuildMirrored(strings.TrimSpace(wine.Name), locale),
		Domain:      multilingual.BuildMirrored(strings.TrimSpace(wine.Subname), locale),
		Appellation: multilingual.BuildMirrored(strings.TrimSpace(wine.Region), locale),
		Country:     multilingual.BuildMirrored(strings.TrimSpace(wine.Country), locale),
		WineType:    wineType.Text(),
		Year:        int(wine.Vintage),
		Price:       format.Price.Float64(),
		FormatCL:    catalog.ParseCentiliters(format.Label),
		SalesPoints: salespoint.Normalize(wine.SalesPoints, len(wine.SalesPoints)),
	}

	// 4. Grapes, names re-derived from ids
	payload.GrapesVarieties = make([]PayloadGrape, 0, len(wine.Grapes))
	for _, component := range wine.Grapes {
		id, ok := catalog.ParseGrapeID(strings.TrimSpace(component.GrapeVarietyID))
		if !ok {
			slog.Default().Warn("grape_dropped",
				slog.String("wine_id", wine.ID),
				slog.String("grape_variety_id", component.GrapeVarietyID),
			)
			continue
		}

		payload.GrapesVarieties = append(payload.GrapesVarieties, PayloadGrape{
			VarietyName:    multilingual.BuildMirrored(catalog.GrapeName(id), locale),
			VarietyPercent: sanitizePercent(component.Percentage.Float64()),
		})
	}

	return payload, nil
}

// # Helpers

// sanitizePercent keeps finite values in [0, 100] and maps the rest to 0.
func sanitizePercent(value float64) float64 {
	value = convert.Finite(value)
	if value < 0 || value > 100 {
		slog.Default().Debug("percent_coerced", slog.Float64("value", value))
		return 0
	}
	return value
}
