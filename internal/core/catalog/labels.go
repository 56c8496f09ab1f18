// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	textcatalog "golang.org/x/text/message/catalog"

	"github.com/taibuivan/sommelier/internal/core/multilingual"
)

// labelCatalog holds the display label of every aroma key in fr and en.
var labelCatalog = func() *textcatalog.Builder {
	builder := textcatalog.NewBuilder(textcatalog.Fallback(language.French))
	for _, entry := range aromas {
		// SetString only fails on a malformed tag, which these are not
		_ = builder.SetString(language.French, entry.key, entry.fr)
		_ = builder.SetString(language.English, entry.key, entry.en)
	}
	return builder
}()

// AromaLabel returns the human label of key in locale. Unknown keys are
// returned unchanged.
func AromaLabel(key, locale string) string {
	tag := language.Make(multilingual.Canonical(locale))
	printer := message.NewPrinter(tag, message.Catalog(labelCatalog))
	return printer.Sprintf(message.Key(key, key))
}
