// Package extract provides defensive accessors for the arbitrarily nested
// enrichment maps the calculators probe. Lookups never panic; any missing or
// mistyped segment yields the caller's default.
package extract

// Nested walks path segments through nested map[string]any values.
// Returns def when any segment is missing or not a map.
func Nested(m map[string]any, def any, path ...string) any {
	if len(path) == 0 {
		return def
	}
	cur := m
	for i, key := range path {
		if cur == nil {
			return def
		}
		v, ok := cur[key]
		if !ok {
			return def
		}
		if i == len(path)-1 {
			return v
		}
		next, ok := v.(map[string]any)
		if !ok {
			return def
		}
		cur = next
	}
	return def
}

// Float coerces v to float64, falling back to def for non-numeric values.
func Float(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

// FloatClamped coerces v to float64 and clamps it into [lo, hi].
func FloatClamped(v any, def, lo, hi float64) float64 {
	f := Float(v, def)
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// String coerces v to string, falling back to def.
func String(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// Bool coerces v to bool, falling back to def.
func Bool(v any, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// List coerces v to a slice. Scalars are wrapped in a single-element slice,
// nil yields an empty slice.
func List(v any) []any {
	switch l := v.(type) {
	case nil:
		return []any{}
	case []any:
		return l
	default:
		return []any{v}
	}
}

// Clamp bounds f into [lo, hi].
func Clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
