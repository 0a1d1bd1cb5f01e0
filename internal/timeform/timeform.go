// Package timeform converts the wall-clock strings clients send
// ("2023-06-20", "10:30:00") into the absolute timestamps the store
// expects. The same conversion used to be repeated at every write path
// that carries date and time-of-day fields; it lives here once.
package timeform

import (
	"fmt"
	"time"
)

// DefaultOffsetHours is the fixed correction applied to time-of-day
// values. The deployment this service was written for assumed local
// time was UTC-6 while the server clock ran ahead of it. Whether that
// assumption is intentional has not been clarified by product, so the
// value is kept verbatim and overridable through config.
const DefaultOffsetHours = -6

const (
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "2006-01-02T15:04:05"
	shortTimeLayout = "2006-01-02T15:04"
)

// ParseDate parses a calendar date as a UTC timestamp at midnight. No
// offset correction is applied here, which means a corrected time-of-day
// field can land on the previous calendar day relative to its date
// field. That mismatch exists upstream and is preserved.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseTimeOfDay anchors a time-of-day string on the epoch day,
// interprets it in the server's local time zone and shifts it by
// offsetHours. A negative offset crossing midnight rolls the result
// back to the previous day.
func ParseTimeOfDay(s string, offsetHours int) (time.Time, error) {
	raw := "1970-01-01T" + s
	t, err := time.ParseInLocation(timeOfDayLayout, raw, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(shortTimeLayout, raw, time.Local)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Add(time.Duration(offsetHours) * time.Hour), nil
}
