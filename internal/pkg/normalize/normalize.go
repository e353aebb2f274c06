// Package normalize converts the loosely typed values reported by the
// external catalog ("1,234", "n/a", "unknown", "1977-05-25") into typed
// values. Every function is total: unparseable input yields nil or the
// original value, never an error.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only date format accepted by Date.
const DateLayout = "2006-01-02"

// IsNA reports whether s is the "not available" sentinel used by the catalog.
func IsNA(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "n/a")
}

// stripSeparators removes digit grouping commas.
func stripSeparators(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Value is the passthrough normalization. "N/A" becomes nil. Strings have
// their separators stripped and are returned as int64 when only digits
// remain, as float64 when they parse as a float, and unchanged otherwise.
// Non-string values are returned as they are.
func Value(raw any) any {
	s, ok := raw.(string)
	if !ok {
		return raw
	}
	if IsNA(s) {
		return nil
	}

	cleaned := stripSeparators(s)
	if isDigits(cleaned) {
		if n, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
			return n
		}
	}
	if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return f
	}
	return s
}

// Int normalizes raw to an integer. Anything that is not an integer after
// separator stripping yields nil. Floats are accepted only when integral.
func Int(raw any) *int64 {
	switch v := Value(raw).(type) {
	case int64:
		return &v
	case int:
		n := int64(v)
		return &n
	case float64:
		return integral(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return &n
		}
		if f, err := v.Float64(); err == nil {
			return integral(f)
		}
	}
	return nil
}

// integral converts f when it is a whole number inside the int64 range
func integral(f float64) *int64 {
	if f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
		return nil
	}
	n := int64(f)
	return &n
}

// Float normalizes raw to a float. Anything non-numeric yields nil.
func Float(raw any) *float64 {
	switch v := Value(raw).(type) {
	case int64:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f
		}
	}
	return nil
}

// String returns raw as a string pointer. nil and "n/a" yield nil; other
// scalars are formatted.
func String(raw any) *string {
	var s string
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if IsNA(v) {
			return nil
		}
		s = v
	case json.Number:
		s = v.String()
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		s = strconv.FormatInt(v, 10)
	case int:
		s = strconv.Itoa(v)
	case bool:
		s = strconv.FormatBool(v)
	default:
		return nil
	}
	return &s
}

// List turns raw into a list of strings. JSON arrays keep their string
// elements, comma separated strings are split and trimmed. "n/a", "none"
// and empty input give an empty, non-nil list.
func List(raw any) []string {
	out := []string{}
	switch v := raw.(type) {
	case []string:
		for _, s := range v {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	case string:
		if IsNA(v) || strings.EqualFold(strings.TrimSpace(v), "none") {
			return out
		}
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Date parses a YYYY-MM-DD string. ok is false for anything else.
func Date(raw any) (time.Time, bool) {
	s, isString := raw.(string)
	if !isString {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
