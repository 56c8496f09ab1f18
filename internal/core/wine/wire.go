// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

import (
	"github.com/taibuivan/sommelier/internal/core/multilingual"
	"github.com/taibuivan/sommelier/pkg/convert"
)

// # Wire Types

// RestaurantWine is a wine as returned by the recommendation service.
//
// Every numeric field decodes leniently: numbers may arrive as strings and
// garbage decodes to 0.
type RestaurantWine struct {
	ID              convert.ID        `json:"id"`
	WineName        multilingual.Text `json:"wine_name"`
	Domain          multilingual.Text `json:"domain"`
	Appellation     multilingual.Text `json:"appellation"`
	Country         multilingual.Text `json:"country"`
	WineType        multilingual.Text `json:"wine_type"`
	GrapesVarieties []WireGrape       `json:"grapes_varieties"`
	Year            convert.Integer   `json:"year"`
	Price           convert.Number    `json:"price"`
	FormatCL        convert.Number    `json:"format_cl"`
	SalesPoints     []bool            `json:"sales_points"`
}

// WireGrape is one entry of [RestaurantWine.GrapesVarieties].
type WireGrape struct {
	// VarietyID is decoded for completeness but never trusted.
	VarietyID      convert.ID        `json:"variety_id"`
	VarietyName    multilingual.Text `json:"variety_name"`
	VarietyPercent convert.Number    `json:"variety_percent"`
}

// Payload is the create/update body sent to the recommendation service.
//
// Numbers are plain numbers and every multilingual field carries both
// supported locales.
type Payload struct {
	WineName        multilingual.Text `json:"wine_name"`
	Domain          multilingual.Text `json:"domain"`
	Appellation     multilingual.Text `json:"appellation"`
	Country         multilingual.Text `json:"country"`
	WineType        multilingual.Text `json:"wine_type"`
	GrapesVarieties []PayloadGrape    `json:"grapes_varieties"`
	Year            int               `json:"year"`
	Price           float64           `json:"price"`
	FormatCL        float64           `json:"format_cl"`
	SalesPoints     []bool            `json:"sales_points"`
}

// PayloadGrape is one outgoing blend line. The catalog name is the only
// identity sent.
type PayloadGrape struct {
	VarietyName    multilingual.Text `json:"variety_name"`
	VarietyPercent float64           `json:"variety_percent"`
}
