package validation

import (
	"fmt"
	"time"
)

// MySQLDateTime is the canonical persisted representation; everything is
// normalized to UTC before formatting.
const MySQLDateTime = "2006-01-02 15:04:05"

// naiveLayouts are tried in order for inputs without a zone; they are
// interpreted as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	MySQLDateTime,
	"2006-01-02",
}

// ParseDateTime accepts full ISO-8601 instants (with Z or a numeric
// offset, fractional seconds optional), zone-less date-times, and bare
// dates like "2025-12-10", and normalizes to UTC.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date/time %q", s)
}
