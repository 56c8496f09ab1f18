// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package multilingual_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sommelier/internal/core/multilingual"
)

/*
TestResolve walks the whole fallback chain.
*/
func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		text      multilingual.Text
		preferred string
		want      string
	}{
		{"nil_map", nil, "", ""},
		{"empty_map", multilingual.Text{}, "en", ""},
		{"preferred_wins", multilingual.Text{"fr": "Rouge", "en": "Red"}, "en", "Red"},
		{"french_first", multilingual.Text{"fr": "Rouge", "en": "Red"}, "", "Rouge"},
		{"en_us_before_en", multilingual.Text{"en": "Red", "en-US": "Red (US)"}, "", "Red (US)"},
		{"en_last_known", multilingual.Text{"en": "Red", "de": "Rot"}, "", "Red"},
		{"first_present", multilingual.Text{"it": "Rosso", "de": "Rot"}, "", "Rot"},
		{"blank_is_absent", multilingual.Text{"fr": "  ", "en": "Red"}, "", "Red"},
		{"missing_preferred", multilingual.Text{"fr": "Rouge"}, "en", "Rouge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, multilingual.Resolve(tt.text, tt.preferred))
		})
	}
}

func TestResolveOr_Fallback(t *testing.T) {
	assert.Equal(t, "n/a", multilingual.ResolveOr(nil, "fr", "n/a"))
	assert.Equal(t, "n/a", multilingual.ResolveOr(multilingual.Text{"fr": ""}, "fr", "n/a"))
}

/*
TestBuildMirrored checks that both supported locales are always written.
*/
func TestBuildMirrored(t *testing.T) {
	tests := []struct {
		name    string
		primary string
	}{
		{"french", "fr"},
		{"english", "en"},
		{"regional_english", "en-US"},
		{"regional_french", "fr-CH"},
		{"unsupported", "de"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := multilingual.BuildMirrored("Salade verte", tt.primary)

			assert.Len(t, text, 2)
			assert.Equal(t, "Salade verte", text["fr"])
			assert.Equal(t, "Salade verte", text["en"])
		})
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "fr", multilingual.Canonical("fr"))
	assert.Equal(t, "fr", multilingual.Canonical("fr-CH"))
	assert.Equal(t, "en", multilingual.Canonical("en-US"))
	assert.Equal(t, "en", multilingual.Canonical("en"))
	assert.Equal(t, "fr", multilingual.Canonical("not a tag!"))

	assert.Equal(t, "en", multilingual.Other("fr"))
	assert.Equal(t, "fr", multilingual.Other("en-GB"))
}

/*
TestText_UnmarshalJSON covers the shapes the recommendation service sends.
*/
func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  multilingual.Text
	}{
		{"locale_map", `{"fr":"Rouge","en":"Red"}`, multilingual.Text{"fr": "Rouge", "en": "Red"}},
		{"bare_string", `"Merlot"`, multilingual.Text{"fr": "Merlot"}},
		{"null", `null`, nil},
		{"non_string_values", `{"fr":"Rouge","en":null,"de":3}`, multilingual.Text{"fr": "Rouge"}},
		{"number", `42`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var text multilingual.Text
			require.NoError(t, json.Unmarshal([]byte(tt.input), &text))
			assert.Equal(t, tt.want, text)
		})
	}
}
