package validation

import (
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the calendar-date format accepted and emitted by the API.
const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses a strict YYYY-MM-DD calendar date. time.Parse alone
// accepts single-digit months and days, so the shape is checked first.
// The returned time is midnight UTC.
func ParseDate(value string) (time.Time, bool) {
	if !datePattern.MatchString(value) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParsePositiveInt parses a strictly positive integer.
func ParsePositiveInt(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
