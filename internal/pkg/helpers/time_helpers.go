package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// timeLayouts lists the textual encodings drivers hand back for DATE and
// TIMESTAMP columns, most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseTimeValue converts a scanned column value into a UTC time. SQLite
// returns text or time.Time depending on the declared column type while
// PostgreSQL always returns time.Time.
func ParseTimeValue(src any) (time.Time, error) {
	switch v := src.(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		return parseTimeString(v)
	case []byte:
		return parseTimeString(string(v))
	default:
		return time.Time{}, fmt.Errorf("cannot scan %T into time", src)
	}
}

func parseTimeString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time value %q", s)
}

// TimeScanner scans a DATE or TIMESTAMP column into Time
type TimeScanner struct {
	Time *time.Time
}

// ScanTime returns a scanner writing into t
func ScanTime(t *time.Time) *TimeScanner {
	return &TimeScanner{Time: t}
}

// Scan implements sql.Scanner
func (s *TimeScanner) Scan(src any) error {
	if src == nil {
		*s.Time = time.Time{}
		return nil
	}
	t, err := ParseTimeValue(src)
	if err != nil {
		return err
	}
	*s.Time = t
	return nil
}
