package property

// Lenient conversions from untyped property values to the common scalar and
// collection kinds. Values of a foreign kind convert to the zero value.
// Numeric values convert across numeric kinds since parsed form definitions
// carry all numbers as float64.

// BoolOf returns the given value as bool.
func BoolOf(val any) bool {
	b, _ := val.(bool)
	return b
}

// StringOf returns the given value as string.
func StringOf(val any) string {
	str, _ := val.(string)
	return str
}

// IntOf returns the given value as int.
func IntOf(val any) int {
	return int(Int64Of(val))
}

// Int64Of returns the given value as int64.
func Int64Of(val any) int64 {
	switch v := val.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float32:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// Float32Of returns the given value as float32.
func Float32Of(val any) float32 {
	return float32(Float64Of(val))
}

// Float64Of returns the given value as float64.
func Float64Of(val any) float64 {
	switch v := val.(type) {
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// ListOf returns the given value as list.
func ListOf(val any) []any {
	list, _ := val.([]any)
	return list
}

// SetOf returns the given value as set.
func SetOf(val any) map[any]struct{} {
	set, _ := val.(map[any]struct{})
	return set
}
