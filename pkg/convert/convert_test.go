// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/sommelier/pkg/convert"
)

/*
TestToNumber covers every input shape the wire boundary can produce.
*/
func TestToNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"nil", nil, 0},
		{"float", 42.5, 42.5},
		{"int", 12, 12},
		{"numeric_string", "42.50", 42.5},
		{"padded_string", " 150 ", 150},
		{"garbage_string", "abc", 0},
		{"empty_string", "", 0},
		{"nan_string", "NaN", 0},
		{"nan_float", math.NaN(), 0},
		{"inf_float", math.Inf(1), 0},
		{"bool", true, 0},
		{"object", map[string]any{"a": 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.ToNumber(tt.input))
		})
	}
}

/*
TestNumber_UnmarshalJSON verifies that a malformed numeric field never fails the document.
*/
func TestNumber_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Price convert.Number  `json:"price"`
		Year  convert.Integer `json:"year"`
		ID    convert.ID      `json:"id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price":"42.50","year":"2019","id":17}`), &payload))
	assert.Equal(t, 42.5, payload.Price.Float64())
	assert.Equal(t, convert.Integer(2019), payload.Year)
	assert.Equal(t, "17", payload.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"price":"abc","year":null,"id":"w-1"}`), &payload))
	assert.Equal(t, 0.0, payload.Price.Float64())
	assert.Equal(t, convert.Integer(0), payload.Year)
	assert.Equal(t, "w-1", payload.ID.String())
}

/*
TestToFloat64 checks that decimal text is carried without rounding.
*/
func TestToFloat64(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"trailing_zero", "42.50", 42.5},
		{"sub_cent", "12.345", 12.345},
		{"exponent", "1.5e2", 150},
		{"negative", "-3", -3},
		{"infinity", "Inf", 0},
		{"garbage", "12abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.ToFloat64(tt.input))
		})
	}
}

func TestToIntD(t *testing.T) {
	assert.Equal(t, 3, convert.ToIntD("3", 1))
	assert.Equal(t, 1, convert.ToIntD("x", 1))
	assert.Equal(t, 1, convert.ToIntD("", 1))
}

/*
TestOptionalInteger_UnmarshalJSON checks that only numbers and numeric strings
count as present.
*/
func TestOptionalInteger_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want convert.OptionalInteger
	}{
		{"number", `15`, convert.SomeInteger(15)},
		{"zero", `0`, convert.SomeInteger(0)},
		{"negative", `-1`, convert.SomeInteger(-1)},
		{"fraction", `7.9`, convert.SomeInteger(7)},
		{"numeric_string", `" 12 "`, convert.SomeInteger(12)},
		{"null", `null`, convert.OptionalInteger{}},
		{"garbage_string", `"abc"`, convert.OptionalInteger{}},
		{"empty_string", `""`, convert.OptionalInteger{}},
		{"object", `{}`, convert.OptionalInteger{}},
		{"boolean", `true`, convert.OptionalInteger{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decoded struct {
				Value convert.OptionalInteger `json:"value"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"value":`+tt.raw+`}`), &decoded))
			assert.Equal(t, tt.want, decoded.Value)
		})
	}
}

/*
TestOptionalInteger_MarshalJSON checks that an absent value is written back as
null so cached records keep the distinction.
*/
func TestOptionalInteger_MarshalJSON(t *testing.T) {
	encoded, err := json.Marshal([]convert.OptionalInteger{convert.SomeInteger(0), {}})
	require.NoError(t, err)
	assert.JSONEq(t, `[0, null]`, string(encoded))
}
