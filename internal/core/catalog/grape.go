// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog holds the static reference tables shared by the wine and dish
conversions.

Every catalog is an ordered list whose element position is the canonical
numeric identifier understood by the recommendation service. The tables are
package-level values built at init time and never mutated afterwards, so they
are safe for unlimited concurrent reads.

# Catalogs

  - Grape varieties: position → variety name.
  - Aromas: position → food category key, plus labels and palette colors.
  - Volume formats: label ↔ centiliters.

Lookups never fail hard. Out-of-range positions and unknown names report
"not found" through a comma-ok result and each caller picks its own fallback.
*/
package catalog

import "strconv"

// GrapeVariety is one entry of the grape catalog.
type GrapeVariety struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Option is a (value, label) pair used to populate a selection control.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// grapeNames is order-significant: the index is the variety id used on the wire.
var grapeNames = [...]string{
	"Aligoté",
	"Amigne",
	"Cabernet Franc",
	"Cabernet Sauvignon",
	"Carignan",
	"Carmenère",
	"Chardonnay",
	"Chasselas",
	"Chenin Blanc",
	"Cinsault",
	"Completer",
	"Cornalin",
	"Corvina",
	"Dakapo",
	"Doral",
	"Divico",
	"Diolinoir",
	"Gamaret",
	"Gamay",
	"Garanoir",
	"Gewurztraminer",
	"Grenache",
	"Grenache Blanc",
	"Grüner Veltliner",
	"Heida",
	"Humagne Blanche",
	"Humagne Rouge",
	"Johannisberg",
	"Lagrein",
	"Malbec",
	"Malvasia",
	"Marsanne",
	"Merlot",
	"Mondeuse",
	"Mourvèdre",
	"Muscat",
	"Müller-Thurgau",
	"Nebbiolo",
	"Petite Arvine",
	"Petit Verdot",
	"Pinot Blanc",
	"Pinot Gris",
	"Pinot Noir",
	"Pinot Meunier",
	"Riesling",
	"Roussanne",
	"Sangiovese",
	"Sauvignon Blanc",
	"Savagnin",
	"Sémillon",
	"Syrah",
	"Sylvaner",
	"Tempranillo",
	"Viognier",
	"Zinfandel",
	"Albariño",
	"Barbera",
	"Dolcetto",
	"Garganega",
	"Glera",
	"Montepulciano",
	"Nero d'Avola",
	"Primitivo",
	"Aglianico",
	"Touriga Nacional",
	"Tinta Roriz",
	"Verdejo",
	"Macabeo",
	"Xarel·lo",
	"Parellada",
	"Furmint",
	"Blaufränkisch",
	"Zweigelt",
	"Saint-Laurent",
	"Pinotage",
	"Tannat",
	"Négrette",
	"Fer Servadou",
	"Gros Manseng",
	"Petit Manseng",
	"Colombard",
	"Ugni Blanc",
	"Melon de Bourgogne",
	"Jacquère",
	"Altesse",
	"Poulsard",
	"Trousseau",
	"Vermentino",
	"Assyrtiko",
	"Mencía",
	"Godello",
	"Trebbiano",
}

// grapeIndex maps a name to its first position.
var grapeIndex = func() map[string]int {
	index := make(map[string]int, len(grapeNames))
	for id, name := range grapeNames {
		if _, exists := index[name]; !exists {
			index[name] = id
		}
	}
	return index
}()

// # Grape Lookups

// GrapeCount returns the number of varieties in the catalog.
func GrapeCount() int {
	return len(grapeNames)
}

// GrapeName returns the variety name at id, or "" when id is out of range.
func GrapeName(id int) string {
	if id < 0 || id >= len(grapeNames) {
		return ""
	}
	return grapeNames[id]
}

// GrapeID returns the first id whose name equals name exactly, or -1.
func GrapeID(name string) int {
	if id, ok := LookupGrapeID(name); ok {
		return id
	}
	return -1
}

// LookupGrapeID is the comma-ok form of [GrapeID].
func LookupGrapeID(name string) (int, bool) {
	id, ok := grapeIndex[name]
	return id, ok
}

// ParseGrapeID accepts either a stringified catalog id or a variety name and
// returns the catalog id it designates.
func ParseGrapeID(value string) (int, bool) {
	if id, err := strconv.Atoi(value); err == nil {
		return id, id >= 0 && id < len(grapeNames)
	}
	return LookupGrapeID(value)
}

// Grapes returns a copy of the whole catalog in order.
func Grapes() []GrapeVariety {
	varieties := make([]GrapeVariety, len(grapeNames))
	for id, name := range grapeNames {
		varieties[id] = GrapeVariety{ID: id, Name: name}
	}
	return varieties
}

// GrapeOptions returns the catalog as (stringified id, name) pairs in catalog order.
func GrapeOptions() []Option {
	options := make([]Option, len(grapeNames))
	for id, name := range grapeNames {
		options[id] = Option{Value: strconv.Itoa(id), Label: name}
	}
	return options
}
