package query

import (
	"strconv"
	"strings"
	"time"
)

// Content dates arrive as free-text, locale-formatted strings typed by
// editors ("March 5, 2024", "2024-03-05", bare "2024" on papers).
// Parsing tries known layouts in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"01/02/2006",
}

// ParseDate parses a free-text date defensively. An unparsable value
// returns the zero time, which sorts as the oldest possible instant;
// callers must not treat it as an error.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	// Bare year, e.g. paper years stored as "2021".
	if year, err := strconv.Atoi(s); err == nil && year >= 1 && year <= 9999 {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	return time.Time{}
}

// ParseYear reads a year stored as a string of digits.
// Returns (0, false) when the value is not a usable year.
func ParseYear(s string) (int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year < 1 || year > 9999 {
		return 0, false
	}
	return year, true
}
