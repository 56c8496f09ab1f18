// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// VolumeFormat is one entry of the bottle format table.
type VolumeFormat struct {
	Label       string  `json:"label"`
	Centiliters float64 `json:"centiliters"`
}

// # Constants

const (
	// DefaultCentiliters is used when a format cannot be parsed at all.
	DefaultCentiliters = 75.0

	// volumeTolerance absorbs the half-bottle being 37 cl on the wire and
	// 37.5 cl on the label.
	volumeTolerance = 0.1
)

// volumeFormats is matched in order when rendering.
//
// The half-bottle stays at 37 cl: the recommendation service stores it that
// way. Do not change it to 37.5 without checking the live data.
var volumeFormats = [...]VolumeFormat{
	{Label: "Magnum (150 cl)", Centiliters: 150},
	{Label: "Bouteille (75 cl)", Centiliters: 75},
	{Label: "Désirée (50 cl)", Centiliters: 50},
	{Label: "Demi-bouteille (37.5 cl)", Centiliters: 37},
	{Label: "Verre (10 cl)", Centiliters: 10},
}

// sizeNames is scanned in order against a lowercased label. Longer names come
// first so "demi-bouteille" is not read as "bouteille".
var sizeNames = []struct {
	name        string
	centiliters float64
}{
	{"magnum", 150},
	{"demi-bouteille", 37},
	{"demi bouteille", 37},
	{"désirée", 50},
	{"desiree", 50},
	{"bouteille", 75},
	{"verre", 10},
}

// centilitersPattern captures a decimal number followed by "cl".
var centilitersPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*cl`)

// # Parsing

// ParseCentiliters extracts a volume from a free-text format label.
//
// # Resolution Order
//
//  1. Exact table label ("Demi-bouteille (37.5 cl)" → 37).
//  2. A number followed by "cl" anywhere in the text. This also covers
//     bespoke sizes that are not in the table.
//  3. A known size name ("Magnum", "Bouteille", "Désirée", "Demi-bouteille",
//     "Verre").
//  4. [DefaultCentiliters]. A malformed format must not block a save.
func ParseCentiliters(label string) float64 {
	centiliters, ok := LookupCentiliters(label)
	if !ok {
		slog.Default().Warn("format_parse_fallback",
			slog.String("label", label),
			slog.Float64("centiliters", DefaultCentiliters),
		)
		return DefaultCentiliters
	}
	return centiliters
}

// LookupCentiliters is [ParseCentiliters] without the default.
func LookupCentiliters(label string) (float64, bool) {
	trimmed := strings.TrimSpace(label)

	// 1. Exact table label
	for _, format := range volumeFormats {
		if format.Label == trimmed {
			return format.Centiliters, true
		}
	}

	// 2. Numeric "<n> cl"
	if match := centilitersPattern.FindStringSubmatch(trimmed); match != nil {
		value, err := strconv.ParseFloat(strings.Replace(match[1], ",", ".", 1), 64)
		if err == nil && !math.IsInf(value, 0) {
			return value, true
		}
	}

	// 3. Size names
	lower := strings.ToLower(trimmed)
	for _, size := range sizeNames {
		if strings.Contains(lower, size.name) {
			return size.centiliters, true
		}
	}

	return 0, false
}

// # Rendering

// RenderCentiliters returns the table label for value, or "<value> cl" when
// no entry lies within the tolerance band.
func RenderCentiliters(value float64) string {
	if format, ok := LookupFormat(value); ok {
		return format.Label
	}
	return strconv.FormatFloat(value, 'f', -1, 64) + " cl"
}

// LookupFormat returns the first table entry within tolerance of value.
func LookupFormat(value float64) (VolumeFormat, bool) {
	for _, format := range volumeFormats {
		if math.Abs(format.Centiliters-value) <= volumeTolerance {
			return format, true
		}
	}
	return VolumeFormat{}, false
}

// VolumeFormats returns a copy of the table in order.
func VolumeFormats() []VolumeFormat {
	formats := make([]VolumeFormat, len(volumeFormats))
	copy(formats, volumeFormats[:])
	return formats
}
