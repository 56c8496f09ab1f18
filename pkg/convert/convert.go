// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant type conversions.

It wraps [strconv] to return 0 instead of an error when parsing fails. The
recommendation service sends numeric fields as JSON numbers or as numeric
strings, so every value crossing that boundary goes through [ToNumber] or one of
the lenient JSON types in this package ([Number], [Integer], [ID]).

Do not use this package if distinguishing between malformed data and zero values
is important in your domain logic; use explicit standard libraries instead.
*/
package convert

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ToInt converts a string to an integer, silencing parsing errors.
// It returns 0 if the string is empty or cannot be parsed.
func ToInt(s string) int {

	// If the string is empty, return 0
	if s == "" {
		return 0
	}

	// Try to parse the string as an integer
	v, _ := strconv.Atoi(s)
	return v
}

// ToIntD converts a string to an int, returning the provided default if parsing fails or string is empty.
func ToIntD(str string, def int) int {

	// If the string is empty, return the default value
	if str == "" {
		return def
	}

	// Try to parse the string as an integer
	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	// If parsing fails, return the default value
	return def
}

// ToFloat64 converts a decimal string to a float64, swallowing errors.
//
// The text goes through [decimal.NewFromString], so "42.50" and "12.345" keep
// their exact decimal value and "NaN" or "Inf" are rejected (reported as 0).
func ToFloat64(s string) float64 {

	// Trim surrounding whitespace, form inputs often carry it
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// Parse as a decimal, then take the nearest float64
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}

	v, _ := amount.Float64()
	return Finite(v)
}

// ToNumber coerces an untyped value decoded from JSON into a float64.
//
// Strings are parsed, numbers are taken as-is and everything else (nil, bool,
// objects) becomes 0. A non-finite result is always reported as 0.
func ToNumber(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return Finite(v)
	case float32:
		return Finite(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case json.Number:
		return ToFloat64(v.String())
	case string:
		return ToFloat64(v)
	case Number:
		return Finite(float64(v))
	case Integer:
		return float64(v)
	default:
		return 0
	}
}

// Finite returns v unless it is NaN or ±Inf, in which case it returns 0.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// # Lenient JSON types

// Number is a float64 that decodes from a JSON number or a numeric string.
// Unparsable input decodes to 0 instead of failing the whole document.
type Number float64

// UnmarshalJSON implements [json.Unmarshaler].
func (n *Number) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*n = 0
		return nil
	}
	*n = Number(ToNumber(raw))
	return nil
}

// Float64 returns the sanitized value.
func (n Number) Float64() float64 {
	return Finite(float64(n))
}

// Integer is an int that decodes from a JSON number or a numeric string.
// Fractions are truncated toward zero.
type Integer int

// UnmarshalJSON implements [json.Unmarshaler].
func (i *Integer) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*i = 0
		return nil
	}
	*i = Integer(int(ToNumber(raw)))
	return nil
}

// OptionalInteger is an int that may be absent. A JSON number or a numeric
// string decodes as a valid value; null, garbage text, booleans and objects
// decode as absent instead of collapsing to 0.
//
// Fractions are truncated toward zero.
type OptionalInteger struct {
	Value int
	Valid bool
}

// SomeInteger returns a valid [OptionalInteger] holding v.
func SomeInteger(v int) OptionalInteger {
	return OptionalInteger{Value: v, Valid: true}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *OptionalInteger) UnmarshalJSON(data []byte) error {
	*o = OptionalInteger{}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		*o = SomeInteger(int(v))
	case string:
		amount, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		*o = SomeInteger(int(amount.IntPart()))
	}
	return nil
}

// MarshalJSON implements [json.Marshaler]. An absent value encodes as null.
func (o OptionalInteger) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(o.Value)), nil
}

// ID is an identifier the remote service sends either as a string or as a
// number. It always decodes into its string form.
type ID string

// UnmarshalJSON implements [json.Unmarshaler].
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*id = ""
		return nil
	}

	switch v := raw.(type) {
	case string:
		*id = ID(v)
	case float64:
		*id = ID(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		*id = ""
	}
	return nil
}

// String returns the identifier as a plain string.
func (id ID) String() string {
	return string(id)
}
