package scheduling

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date wire format used across the service.
const DateLayout = "2006-01-02"

// ParseDate converts a date string into a local-midnight calendar date.
// Only the leading 10 characters (YYYY-MM-DD) are considered; any time or
// zone suffix is discarded. Parsing happens in the local location, never
// via UTC, so a stored "2026-03-10T00:00:00Z" stays March 10 regardless of
// the server's offset.
func ParseDate(s string) (time.Time, error) {
	if len(s) < len(DateLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	d, err := time.ParseInLocation(DateLayout, s[:len(DateLayout)], time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return d, nil
}

// NormalizeDate anchors a time value at local midnight, keeping only its
// calendar date. Idempotent: normalizing a normalized value is a no-op.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// FormatDate renders a date back into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// dayOrdinal maps a calendar date to a whole-day integer so every
// comparison below is exact integer arithmetic, immune to DST gaps in the
// local zone.
func dayOrdinal(t time.Time) int {
	y, m, d := t.Date()
	u := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(u.Unix() / 86400)
}

// Overlaps reports whether two inclusive date intervals share at least one
// calendar day. Touching endpoints count as overlap. Symmetric.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !(dayOrdinal(s1) > dayOrdinal(e2) || dayOrdinal(s2) > dayOrdinal(e1))
}

// DaysBetween returns the inclusive day count from a to b; equal dates
// count as 1. Callers pass a <= b for duration and gap measurement.
func DaysBetween(a, b time.Time) int {
	return dayOrdinal(b) - dayOrdinal(a) + 1
}

// ShiftDays moves a date by n calendar days (n may be negative), crossing
// month and year boundaries correctly.
func ShiftDays(t time.Time, n int) time.Time {
	return NormalizeDate(NormalizeDate(t).AddDate(0, 0, n))
}

// dayAfter reports whether a falls on a strictly later calendar day than b.
func dayAfter(a, b time.Time) bool {
	return dayOrdinal(a) > dayOrdinal(b)
}

// dayBefore reports whether a falls on a strictly earlier calendar day than b.
func dayBefore(a, b time.Time) bool {
	return dayOrdinal(a) < dayOrdinal(b)
}

// SameDay reports whether two values fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return dayOrdinal(a) == dayOrdinal(b)
}
