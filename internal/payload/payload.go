// Package payload provides total, non-panicking access to loosely typed
// remote command payloads. Missing and mistyped keys degrade to defaults.
package payload

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Payload is one inbound remote command request as decoded from JSON.
type Payload map[string]any

// Decode parses a JSON object into a Payload.
func Decode(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p == nil {
		p = Payload{}
	}
	return p, nil
}

// Has reports whether key is present with a non-null value.
func (p Payload) Has(key string) bool {
	if p == nil {
		return false
	}
	value, ok := p[key]
	return ok && value != nil
}

// OptString returns the value of key as a string. Numbers and booleans are
// rendered in their JSON form; anything else yields the default ("" if none).
func (p Payload) OptString(key string, def ...string) string {
	fallback := ""
	if len(def) > 0 {
		fallback = def[0]
	}
	if s, ok := p.LookupString(key); ok {
		return s
	}
	return fallback
}

// LookupString is OptString with an explicit presence result.
func (p Payload) LookupString(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	return scalarString(p[key])
}

// OptBoolean returns the value of key as a bool. The strings "true" and
// "false" are accepted case-insensitively.
func (p Payload) OptBoolean(key string, def ...bool) bool {
	fallback := false
	if len(def) > 0 {
		fallback = def[0]
	}
	if b, ok := p.LookupBoolean(key); ok {
		return b
	}
	return fallback
}

// LookupBoolean is OptBoolean with an explicit presence result. A key holding
// a non-boolean value reports false for ok.
func (p Payload) LookupBoolean(key string) (bool, bool) {
	if p == nil {
		return false, false
	}
	switch v := p[key].(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// OptDouble returns the value of key as a float64, or NaN when absent, not
// numeric or infinite. Callers must check math.IsNaN before use.
func (p Payload) OptDouble(key string) float64 {
	if p == nil {
		return math.NaN()
	}
	if f, ok := toFloat(p[key]); ok {
		return f
	}
	return math.NaN()
}

// OptInt returns the value of key as an int, truncating fractional numbers.
func (p Payload) OptInt(key string, def int) int {
	if n, ok := p.LookupInt(key); ok {
		return n
	}
	return def
}

// LookupInt is OptInt with an explicit presence result.
func (p Payload) LookupInt(key string) (int, bool) {
	if p == nil {
		return 0, false
	}
	f, ok := toFloat(p[key])
	if !ok || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// OptStringArray returns the value of key as a string slice, or nil when the
// key is absent or not an array. Scalar elements are rendered as strings and
// other elements are skipped.
func (p Payload) OptStringArray(key string) []string {
	if p == nil {
		return nil
	}
	return toStringSlice(p[key])
}

// OptObject returns the nested object stored under key, or nil.
func (p Payload) OptObject(key string) Payload {
	if p == nil {
		return nil
	}
	switch v := p[key].(type) {
	case map[string]any:
		return Payload(v)
	case Payload:
		return v
	case map[string]string:
		obj := make(Payload, len(v))
		for k, s := range v {
			obj[k] = s
		}
		return obj
	}
	return nil
}

// ToMap flattens one level of obj into a plain map. String, boolean and
// numeric leaves and arrays of scalars are kept; nested objects, nulls and
// other values are dropped.
func ToMap(obj Payload) map[string]any {
	result := make(map[string]any, len(obj))
	for key, value := range obj {
		if leaf, ok := leafValue(value); ok {
			result[key] = leaf
		}
	}
	return result
}

// ToStringMap flattens obj into a string map for SDK calls that only accept
// string values. Non-scalar values are dropped.
func ToStringMap(obj Payload) map[string]string {
	result := make(map[string]string, len(obj))
	for key, value := range obj {
		if s, ok := scalarString(value); ok {
			result[key] = s
		}
	}
	return result
}

// Without returns a shallow copy of p minus the given keys.
func (p Payload) Without(keys ...string) map[string]any {
	result := make(map[string]any, len(p))
	for key, value := range p {
		result[key] = value
	}
	for _, key := range keys {
		delete(result, key)
	}
	return result
}

func leafValue(value any) (any, bool) {
	switch v := value.(type) {
	case string, bool, float64, float32, int, int32, int64, uint, uint32, uint64:
		return v, true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, true
		}
		return nil, false
	case []string:
		return append([]string(nil), v...), true
	case []any:
		items := make([]any, 0, len(v))
		for _, item := range v {
			leaf, ok := leafValue(item)
			if !ok {
				return nil, false
			}
			if _, nested := leaf.([]any); nested {
				return nil, false
			}
			items = append(items, leaf)
		}
		return items, true
	}
	return nil, false
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, isFinite(v)
	case float32:
		return float64(v), isFinite(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil && isFinite(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || !isFinite(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func toStringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return append([]string{}, v...)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := scalarString(item); ok {
				items = append(items, s)
			}
		}
		return items
	}
	return nil
}
