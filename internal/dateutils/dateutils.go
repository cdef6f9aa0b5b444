// Package dateutils parses the loosely formatted dates found in spreadsheet
// exports and re-emits them as UTC calendar dates.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayoutISO is the canonical output layout.
const DateLayoutISO = "2006-01-02"

// lenientLayouts are tried in order. Numeric slash and dash dates are read
// month first; four-digit years are tried before two-digit ones.
var lenientLayouts = []string{
	time.RFC3339,
	"2006-1-2T15:04:05",
	"2006-1-2T15:04",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2",
	"2006/1/2 15:04:05",
	"2006/1/2",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"1-2-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon Jan 2 2006",
	"1/2/06",
}

var multiSpace = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses internal whitespace.
func CleanDateString(dateStr string) string {
	return multiSpace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseLenient parses dateStr with the first matching layout and returns the
// calendar date it names, anchored at midnight UTC. The date is taken in the
// value's own zone so an offset never shifts the day.
func ParseLenient(dateStr string) (time.Time, error) {
	clean := CleanDateString(dateStr)
	if clean == "" {
		return time.Time{}, fmt.Errorf("unable to parse date: empty value")
	}

	for _, layout := range lenientLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// NormalizeDate is ParseLenient followed by ToISODate.
func NormalizeDate(dateStr string) (string, error) {
	t, err := ParseLenient(dateStr)
	if err != nil {
		return "", err
	}
	return ToISODate(t), nil
}
