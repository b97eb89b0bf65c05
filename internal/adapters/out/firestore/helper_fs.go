// internal/adapters/out/firestore/helper_fs.go
package firestore

import (
	"fmt"
	"strings"
	"time"
)

func asString(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

func asInt(v any) int {
	if v == nil {
		return 0
	}
	switch t := v.(type) {
	case int:
		return t
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float32:
		return int(t)
	case float64:
		return int(t)
	case string:
		tt := strings.TrimSpace(t)
		if tt == "" {
			return 0
		}
		var n int
		_, _ = fmt.Sscanf(tt, "%d", &n)
		return n
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	if v == nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		tt := strings.TrimSpace(t)
		if tt == "" {
			return 0
		}
		var f float64
		_, _ = fmt.Sscanf(tt, "%g", &f)
		return f
	default:
		return 0
	}
}

// asTime accepts time.Time values and ISO-8601 strings (the order wire
// contract stores timestamps as strings; older docs may carry Firestore
// timestamps).
func asTime(v any) (time.Time, bool) {
	if v == nil {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		if tt, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return tt, true
		}
		if tt, err := time.Parse(time.RFC3339, s); err == nil {
			return tt, true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
