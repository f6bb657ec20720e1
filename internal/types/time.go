package types

import "time"

// TimeLayout is the on-disk timestamp format: ISO-8601 combined date-time,
// naive local wall clock, no zone offset. The fractional part is optional on
// parse and trimmed on format, so values round-trip exactly.
const TimeLayout = "2006-01-02T15:04:05.999999999"

// DateLayout is the calendar-date format accepted by --date flags.
const DateLayout = "2006-01-02"

// FormatTime renders t in the on-disk timestamp format.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses an on-disk timestamp as local wall-clock time.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.Local)
}

// ParseDate parses a YYYY-MM-DD string to local midnight of that day.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// DateOf truncates t to local midnight, for calendar-date comparisons.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same local calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
