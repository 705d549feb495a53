// internal/domain/day.go
package domain

import (
	"errors"
	"strings"
	"time"
)

// DayLayout is the wire format of a day-key ("2024-03-05").
const DayLayout = "2006-01-02"

// ErrInvalidTimestamp is returned when a supplied day or timestamp cannot be parsed.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Clock supplies "now". Services take one so tests can pin the server day.
type Clock func() time.Time

// NormalizeDay strips the time of day from t and returns midnight of its UTC calendar day.
// All completion storage and comparison goes through this function.
func NormalizeDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return NormalizeDay(a).Equal(NormalizeDay(b))
}

// ParseDay accepts either a bare date ("2024-03-05"), taken as that UTC calendar day,
// or an RFC3339 timestamp, converted to UTC before normalizing.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	if t, err := time.ParseInLocation(DayLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidTimestamp
	}
	return NormalizeDay(t), nil
}

// MonthRange returns the half-open interval [first day of month, first day of next month).
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// FormatDay renders a day-key in DayLayout.
func FormatDay(t time.Time) string {
	return NormalizeDay(t).Format(DayLayout)
}
