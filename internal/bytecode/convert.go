package bytecode

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Of lifts a Go value into a Value.
//
// Values pass through unchanged. A Go int becomes Int when it fits in 32
// bits and Long otherwise, matching untyped numbers in loaded documents; use
// int64 or Long to force a long. Go maps carry no order, so map[string]any
// keys are sorted to keep rendering deterministic; build a Map directly when
// insertion order matters. Unknown types become Opaque.
func Of(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null{}
	case Value:
		return val
	case bool:
		return Bool(val)
	case string:
		return String(val)
	case int32:
		return Int(val)
	case int:
		if val >= math.MinInt32 && val <= math.MaxInt32 {
			return Int(val)
		}
		return Long(val)
	case int64:
		return Long(val)
	case float32:
		return Float(val)
	case float64:
		return Double(val)
	case time.Time:
		return Date{Time: val}
	case uuid.UUID:
		return UUID(val)
	case []any:
		return listOf(val)
	case []string:
		l := make(List, len(val))
		for i, s := range val {
			l[i] = String(s)
		}
		return l
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		m := make(Map, 0, len(val))
		for _, k := range keys {
			m = append(m, Entry{Key: String(k), Value: Of(val[k])})
		}
		return m
	default:
		return Opaque{V: v}
	}
}
