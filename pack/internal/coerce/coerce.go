package coerce

import (
	"math"
	"reflect"
)

// ToInt64 converts any integral numeric value to int64.
// Floats convert only when they carry an integral value in range.
func ToInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case float64:
		if v >= float64(math.MinInt64) && v <= float64(math.MaxInt64) && v == float64(int64(v)) {
			return int64(v), true
		}
	case float32:
		if v >= float32(math.MinInt64) && v <= float32(math.MaxInt64) && v == float32(int64(v)) {
			return int64(v), true
		}
	}
	return 0, false
}

// ToUint64 converts any non-negative integral numeric value to uint64.
// It covers uint64 magnitudes beyond math.MaxInt64 that ToInt64 rejects.
func ToUint64(value any) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case int8:
		if v >= 0 {
			return uint64(v), true
		}
	case int16:
		if v >= 0 {
			return uint64(v), true
		}
	case int32:
		if v >= 0 {
			return uint64(v), true
		}
	case int:
		if v >= 0 {
			return uint64(v), true
		}
	case int64:
		if v >= 0 {
			return uint64(v), true
		}
	case float64:
		if v >= 0 && v <= float64(math.MaxUint64) && v == float64(uint64(v)) {
			return uint64(v), true
		}
	case float32:
		// Use float64 for range check to avoid precision loss
		if v >= 0 && float64(v) <= float64(math.MaxUint64) && v == float32(uint64(v)) {
			return uint64(v), true
		}
	}
	return 0, false
}

// ToBits64 returns the two's-complement bit pattern of any integral value,
// preserving sign extension for negative inputs and full magnitude for
// unsigned inputs above math.MaxInt64.
func ToBits64(value any) (uint64, bool) {
	if n, ok := ToInt64(value); ok {
		return uint64(n), true
	}
	if u, ok := ToUint64(value); ok {
		return u, true
	}
	return 0, false
}

// ToFloat64 converts any numeric value to float64.
func ToFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint:
		return float64(v), true
	}
	return 0, false
}

// IsFloat reports whether value is a floating-point type.
func IsFloat(value any) bool {
	switch value.(type) {
	case float32, float64:
		return true
	}
	return false
}

// ToBytes converts a string-kind value to its raw bytes.
func ToBytes(value any) ([]byte, bool) {
	switch v := value.(type) {
	case string:
		return []byte(v), true
	case []byte:
		return v, true
	}
	return nil, false
}

// TypeName returns "nil" for nil values, avoiding reflect.TypeOf(nil) panic.
func TypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}
