// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sommelier/internal/core/catalog"
)

// # Grapes

/*
TestGrape_RoundTrip verifies that every listed name resolves back to itself.
*/
func TestGrape_RoundTrip(t *testing.T) {
	require.Equal(t, 92, catalog.GrapeCount())

	for _, variety := range catalog.Grapes() {
		t.Run(variety.Name, func(t *testing.T) {
			assert.Equal(t, variety.Name, catalog.GrapeName(catalog.GrapeID(variety.Name)))
		})
	}
}

func TestGrape_KnownPositions(t *testing.T) {
	assert.Equal(t, "Cabernet Sauvignon", catalog.GrapeName(3))
	assert.Equal(t, "Diolinoir", catalog.GrapeName(16))
	assert.Equal(t, 3, catalog.GrapeID("Cabernet Sauvignon"))
}

func TestGrape_OutOfRange(t *testing.T) {
	assert.Empty(t, catalog.GrapeName(-1))
	assert.Empty(t, catalog.GrapeName(92))
	assert.Equal(t, -1, catalog.GrapeID("not-a-real-grape"))
	assert.Equal(t, -1, catalog.GrapeID("cabernet sauvignon"), "lookup is exact")
}

func TestParseGrapeID(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		wantID int
		wantOK bool
	}{
		{"numeric_id", "16", 16, true},
		{"first_id", "0", 0, true},
		{"last_id", "91", 91, true},
		{"past_end", "92", 92, false},
		{"negative", "-1", -1, false},
		{"plain_name", "Merlot", 32, true},
		{"unknown_name", "Mystery", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := catalog.ParseGrapeID(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestGrapeOptions(t *testing.T) {
	options := catalog.GrapeOptions()
	require.Len(t, options, catalog.GrapeCount())

	for id, option := range options {
		assert.Equal(t, strconv.Itoa(id), option.Value)
		assert.Equal(t, catalog.GrapeName(id), option.Label)
	}
}

// # Aromas

func TestAromaKey(t *testing.T) {
	assert.Equal(t, "saltyCrumblyCheese", catalog.AromaKey(0))
	assert.Equal(t, "greenVegetable", catalog.AromaKey(15))
	assert.Equal(t, "stoneFruit", catalog.AromaKey(31))

	// Unknown positions pass through as their literal value
	assert.Equal(t, "32", catalog.AromaKey(32))
	_, ok := catalog.LookupAromaKey(32)
	assert.False(t, ok)
}

/*
TestAromaNumber covers exact keys, drifted labels and legacy French labels.
*/
func TestAromaNumber(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantID int
		wantOK bool
	}{
		{"exact_key", "redMeat", 7, true},
		{"spaced_label", "Red Meat", 7, true},
		{"case_drift", "GREENVEGETABLE", 15, true},
		{"label_contains_key", "Pork belly", 10, true},
		{"longest_overlap", "Cured meat sandwich", 8, true},
		{"english_label", "Cured meat", 8, true},
		{"french_label_overlapping_key", "Charcuterie", 8, true},
		{"key_inside_text", "Grilled pork chops", 10, true},
		{"legacy_french", "Viande rouge", 7, true},
		{"legacy_french_fish", "Poisson", 11, true},
		{"unknown", "Chocolate", 0, false},
		{"empty", "", 0, false},
		{"blank", "   ", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := catalog.AromaNumber(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

/*
TestAromaNumber_LabelsRoundTrip checks that every shipped label resolves to its own position.
*/
func TestAromaNumber_LabelsRoundTrip(t *testing.T) {
	for _, locale := range []string{"fr", "en"} {
		for _, aroma := range catalog.Aromas(locale) {
			id, ok := catalog.AromaNumber(aroma.Label)
			require.True(t, ok, aroma.Label)
			assert.Equal(t, aroma.ID, id, aroma.Label)
		}
	}
}

/*
TestAromaNumber_ShortTextImprecision documents the fuzzy matching band: a
generic word lands on the first key that contains it, whichever of several
equally long overlaps comes first.
*/
func TestAromaNumber_ShortTextImprecision(t *testing.T) {
	id, ok := catalog.AromaNumber("cheese")
	require.True(t, ok)
	assert.Equal(t, 0, id)

	id, ok = catalog.AromaNumber("fruit")
	require.True(t, ok)
	assert.Equal(t, 29, id)
}

func TestColorsFor(t *testing.T) {
	cheese := catalog.ColorsFor("saltyCrumblyCheese")
	protein := catalog.ColorsFor("redMeat")
	vegetable := catalog.ColorsFor("greenVegetable")
	fruit := catalog.ColorsFor("stoneFruit")

	assert.Equal(t, cheese, catalog.ColorsFor("washedRindCheese"))
	assert.Equal(t, protein, catalog.ColorsFor("gameMeat"))
	assert.Equal(t, vegetable, catalog.ColorsFor("smokedFood"))
	assert.Equal(t, fruit, catalog.ColorsFor("redFruit"))

	assert.NotEqual(t, cheese, protein)
	assert.NotEqual(t, vegetable, fruit)
	assert.Equal(t, catalog.NeutralPalette, catalog.ColorsFor("unknown"))
}

func TestAromaLabel(t *testing.T) {
	assert.Equal(t, "Légumes verts", catalog.AromaLabel("greenVegetable", "fr"))
	assert.Equal(t, "Green vegetable", catalog.AromaLabel("greenVegetable", "en-US"))
	assert.Equal(t, "Légumes verts", catalog.AromaLabel("greenVegetable", "de"))
	assert.Equal(t, "mystery", catalog.AromaLabel("mystery", "en"))
}

// # Volumes

/*
TestVolume_RoundTrip verifies render(parse(label)) for every table label.
*/
func TestVolume_RoundTrip(t *testing.T) {
	for _, format := range catalog.VolumeFormats() {
		t.Run(format.Label, func(t *testing.T) {
			assert.Equal(t, format.Label, catalog.RenderCentiliters(catalog.ParseCentiliters(format.Label)))
		})
	}
}

func TestVolume_RenderParseRenderIdempotent(t *testing.T) {
	for _, format := range catalog.VolumeFormats() {
		rendered := catalog.RenderCentiliters(format.Centiliters)
		again := catalog.RenderCentiliters(catalog.ParseCentiliters(rendered))
		assert.Equal(t, rendered, again)
	}
}

func TestParseCentiliters(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  float64
	}{
		{"table_label", "Magnum (150 cl)", 150},
		{"half_bottle_label", "Demi-bouteille (37.5 cl)", 37},
		{"bespoke_size", "Clavelin 62cl", 62},
		{"decimal_comma", "Fillette 37,5 CL", 37.5},
		{"number_beats_name", "Magnum 300 cl", 300},
		{"name_only", "magnum", 150},
		{"half_bottle_name", "Demi bouteille", 37},
		{"hyphen_half_bottle", "demi-bouteille", 37},
		{"bottle_name", "Bouteille", 75},
		{"desiree", "Désirée", 50},
		{"glass", "Verre", 10},
		{"garbage_defaults", "???", 75},
		{"empty_defaults", "", 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ParseCentiliters(tt.label))
		})
	}
}

func TestRenderCentiliters(t *testing.T) {
	assert.Equal(t, "Magnum (150 cl)", catalog.RenderCentiliters(150))
	assert.Equal(t, "Demi-bouteille (37.5 cl)", catalog.RenderCentiliters(37))
	assert.Equal(t, "Demi-bouteille (37.5 cl)", catalog.RenderCentiliters(37.05))
	assert.Equal(t, "37.5 cl", catalog.RenderCentiliters(37.5), "37.5 lies outside the tolerance band")
	assert.Equal(t, "62 cl", catalog.RenderCentiliters(62))
	assert.Equal(t, "0 cl", catalog.RenderCentiliters(0))
}

/*
TestCatalogs_ConcurrentReads exercises every lookup from many goroutines; run with -race.
*/
func TestCatalogs_ConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup

	for worker := 0; worker < 16; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				name := catalog.GrapeName(i % catalog.GrapeCount())
				assert.Equal(t, i%catalog.GrapeCount(), catalog.GrapeID(name))

				key := catalog.AromaKey(i % catalog.AromaCount())
				_ = catalog.ColorsFor(key)
				_ = catalog.AromaLabel(key, "en")
				_, _ = catalog.AromaNumber(key)

				_ = catalog.RenderCentiliters(catalog.ParseCentiliters("Magnum"))
			}
		}()
	}

	wg.Wait()
}
