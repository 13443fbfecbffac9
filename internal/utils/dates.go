package utils

import (
	"regexp"
	"time"
)

// Entry dates accept single- or double-digit month and day. The match is a
// substring, not anchored, so text after a valid date is tolerated.
var datePattern = regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`)

// ExtractDate pulls the first yyyy-m-d shaped substring out of raw.
func ExtractDate(raw string) (string, bool) {
	m := datePattern.FindString(raw)
	return m, m != ""
}

// ParseDate parses a yyyy-m-d date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-1-2", s, time.UTC)
}

// FormatDateString renders a date as a human-readable calendar string,
// e.g. "Thu Jan 05 2023".
func FormatDateString(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}
