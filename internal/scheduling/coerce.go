package scheduling

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// toNumber accepts any JSON-ish numeric representation.
// Non-finite values are rejected.
func toNumber(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toInt floors a numeric value to an int.
func toInt(v interface{}) (int, bool) {
	f, ok := toNumber(v)
	if !ok {
		return 0, false
	}
	// callers clamp to small ranges anyway
	if f > math.MaxInt32 {
		return math.MaxInt32, true
	}
	if f < math.MinInt32 {
		return math.MinInt32, true
	}
	return int(math.Floor(f)), true
}

func toBool(v interface{}) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, false
		}
		return parsed, true
	}
	return false, false
}

func toTimeString(v interface{}) (types.TimeString, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	t, err := types.NewTimeStringFromString(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return t, true
}

func toDate(v interface{}) (types.Date, bool) {
	s, ok := v.(string)
	if !ok {
		return types.Date{}, false
	}
	d, err := types.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return types.Date{}, false
	}
	return d, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
