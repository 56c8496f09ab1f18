// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package multilingual reads and writes the locale-keyed string maps used by the
recommendation service.

Keys are free-form locale tags ("fr", "en-US", "en"). Reading a map follows a
fixed fallback order so that an entity always renders something, and writing a
map always produces both supported locales so the remote record is never left
half-translated.

# Fallback Order

	preferred → fr → en-US → en → first non-empty value (by key order) → fallback
*/
package multilingual

import (
	"encoding/json"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Text maps a locale tag to the translated content.
type Text map[string]string

// # Locales

const (
	// LocaleFR is the default locale of the catalogs.
	LocaleFR = "fr"

	// LocaleEN is the second supported locale.
	LocaleEN = "en"

	// LocaleENUS is a legacy key still present on older records.
	LocaleENUS = "en-US"
)

var (
	// fallbackOrder is consulted after the caller's preferred locale.
	fallbackOrder = []string{LocaleFR, LocaleENUS, LocaleEN}

	// supported lists the locales written on every outgoing map, default first.
	supported = []language.Tag{language.French, language.English}

	matcher = language.NewMatcher(supported)
)

// # Reading

// Resolve returns the best value of text for the preferred locale.
// An empty preferred locale applies the default order. It returns "" when
// nothing is present.
func Resolve(text Text, preferred string) string {
	return ResolveOr(text, preferred, "")
}

// ResolveOr is [Resolve] with an explicit fallback for absent content.
func ResolveOr(text Text, preferred, fallback string) string {
	if len(text) == 0 {
		return fallback
	}

	// 1. Exact key requested by the caller
	if preferred != "" {
		if value, ok := present(text, preferred); ok {
			return value
		}
	}

	// 2. Fixed fallback order
	for _, locale := range fallbackOrder {
		if value, ok := present(text, locale); ok {
			return value
		}
	}

	// 3. First present value. Keys are sorted so the result is stable.
	keys := make([]string, 0, len(text))
	for key := range text {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if value, ok := present(text, key); ok {
			return value
		}
	}

	return fallback
}

// Value returns the content stored under exactly locale, trimmed.
func (text Text) Value(locale string) string {
	value, _ := present(text, locale)
	return value
}

// present reports whether text holds non-blank content under locale.
func present(text Text, locale string) (string, bool) {
	value := strings.TrimSpace(text[locale])
	return value, value != ""
}

// UnmarshalJSON accepts a locale map, a bare string (stored under
// [LocaleFR]) or null. Non-string values inside a map are skipped.
func (text *Text) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case nil:
		*text = nil
	case string:
		*text = Text{LocaleFR: value}
	case map[string]any:
		decoded := make(Text, len(value))
		for locale, content := range value {
			if str, ok := content.(string); ok {
				decoded[locale] = str
			}
		}
		*text = decoded
	default:
		*text = nil
	}

	return nil
}

// # Writing

// BuildMirrored returns a map holding value under the canonical form of
// primary and the same value under the other supported locale.
func BuildMirrored(value, primary string) Text {
	canonical := Canonical(primary)
	return Text{
		canonical:        value,
		Other(canonical): value,
	}
}

// # Locale Tags

// Canonical maps any locale tag onto one of the supported locales. Unknown or
// malformed tags map to [LocaleFR].
func Canonical(locale string) string {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return LocaleFR
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return LocaleFR
	}

	base, _ := supported[index].Base()
	return base.String()
}

// Other returns the supported locale that is not locale.
func Other(locale string) string {
	if Canonical(locale) == LocaleEN {
		return LocaleFR
	}
	return LocaleEN
}

// Supported returns the supported locale codes, default first.
func Supported() []string {
	return []string{LocaleFR, LocaleEN}
}
