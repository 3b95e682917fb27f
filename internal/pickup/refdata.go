package pickup

import (
	"fmt"
	"strings"
	"time"
)

// ReferenceData holds the parsed reference tables for one calendar year.
// It is populated once by LoadReferenceData and read-only afterwards; the
// calculators never mutate it.
type ReferenceData struct {
	Streets        []StreetRecord
	Holidays       []Holiday // file order preserved, order decides same-week ties
	YardWasteWeeks map[string][]string
	SeasonStart    string // YYYY-MM-DD, inclusive
	SeasonEnd      string // YYYY-MM-DD, inclusive
	Year           int
}

// ParseDate parses a canonical YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// ParseWeekday resolves an English weekday name ("Monday") case-insensitively.
func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}
