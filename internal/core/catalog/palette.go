// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

// Palette is the presentation color triple of an aroma tag.
type Palette struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
}

// # Buckets

var (
	cheesePalette    = Palette{Background: "#FEF3C7", Text: "#92400E", Accent: "#F59E0B"}
	proteinPalette   = Palette{Background: "#FEE2E2", Text: "#991B1B", Accent: "#EF4444"}
	vegetablePalette = Palette{Background: "#DCFCE7", Text: "#166534", Accent: "#22C55E"}
	fruitPalette     = Palette{Background: "#FCE7F3", Text: "#9D174D", Accent: "#EC4899"}

	// NeutralPalette is returned for keys outside the catalog.
	NeutralPalette = Palette{Background: "#F3F4F6", Text: "#374151", Accent: "#9CA3AF"}
)

// ColorsFor classifies key by its catalog position.
func ColorsFor(key string) Palette {
	for id, entry := range aromas {
		if entry.key == key {
			return paletteAt(id)
		}
	}
	return NeutralPalette
}

// paletteAt maps a catalog position onto its bucket.
func paletteAt(id int) Palette {
	switch {
	case id >= 0 && id <= 6:
		return cheesePalette
	case id >= 7 && id <= 13:
		return proteinPalette
	case id >= 14 && id <= 28:
		return vegetablePalette
	case id >= 29 && id <= 31:
		return fruitPalette
	default:
		return NeutralPalette
	}
}
