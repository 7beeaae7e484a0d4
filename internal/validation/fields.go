// Package validation checks untyped request field maps against the
// per-entity rules and produces normalized inputs or field-error maps.
// Every violated rule is collected before reporting; nothing fails fast.
package validation

import (
	"encoding/json"
	"math"
	"strconv"
)

// Fields is a decoded JSON object. Decode request bodies with
// json.Decoder.UseNumber so integers survive as json.Number.
type Fields map[string]any

// present follows the shared policy: a field counts as present only if
// the key exists and the value is neither nil nor an empty string.
func (f Fields) present(key string) bool {
	v, ok := f[key]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	return true
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asInt accepts native integers, json.Number with an integral value, and
// digit-only strings (clients frequently send ids as strings).
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if n == math.Trunc(n) {
			return int64(n), true
		}
		return 0, false
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}

// asNumber accepts any numeric representation, including numeric strings.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
