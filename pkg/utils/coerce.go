package utils

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Str renders a payload value the way validation and the party/address
// columns see it. nil becomes the empty string.
func Str(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// IsNumber reports whether v is a numeric payload value.
func IsNumber(v interface{}) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64, json.Number:
		return true
	}
	return false
}

// Int64 coerces a numeric payload value to integer semantics. Decimal
// parts truncate, so 10.9 compares as 10.
func Int64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float32:
		return decimal.NewFromFloat32(n).IntPart(), nil
	case float64:
		return decimal.NewFromFloat(n).IntPart(), nil
	case json.Number:
		return Int64(string(n))
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to integer: %w", n, err)
		}
		return d.IntPart(), nil
	case []byte:
		return Int64(string(n))
	default:
		return 0, fmt.Errorf("cannot convert %T to integer", v)
	}
}
