package datefmt

import (
	"strings"
	"time"
)

// zoned layouts carry their own offset.
var zoned = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05Z0700",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// local layouts are read in the formatter's zone.
var local = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"2006/1/2",
	time.ANSIC,
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
}

// dateOnly is read as UTC midnight.
const dateOnly = "2006-01-02"

// Parse reads a timestamp the way a browser Date would for machine-written
// data. Layouts without an offset use loc, except a bare ISO date which is
// UTC midnight.
func Parse(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, true
	}
	for _, layout := range zoned {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range local {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
