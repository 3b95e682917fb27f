package pickup

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when input does not have the shape
// "<number> <street>". Empty input is a special case of this.
var ErrInvalidFormat = errors.New(`address must be in the format "123 Main Street"`)

// StreetNotFoundError means no street record matched the query at all.
type StreetNotFoundError struct {
	Street string
}

func (e *StreetNotFoundError) Error() string {
	return fmt.Sprintf("street %q not found in Weymouth pickup database", e.Street)
}

// HouseNumberError means the street matched but no record's number range
// contains the house number. Ranges carries the candidate ranges so
// callers can surface them as guidance.
type HouseNumberError struct {
	Street string
	Number int
	Ranges []string
}

func (e *HouseNumberError) Error() string {
	return fmt.Sprintf("house number %d not found for %s, valid ranges: %s",
		e.Number, e.Street, strings.Join(e.Ranges, ", "))
}

var (
	addressPattern = regexp.MustCompile(`^(\d+)\s+(.+)$`)
	leadingNumber  = regexp.MustCompile(`^\d+\s*`)
)

// ParseAddress splits free-text input into a house number and an
// uppercased street name. Surrounding whitespace is trimmed; internal
// whitespace in the street name is preserved.
func ParseAddress(raw string) (ParsedAddress, error) {
	m := addressPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return ParsedAddress{}, ErrInvalidFormat
	}
	number, err := strconv.Atoi(m[1])
	if err != nil {
		return ParsedAddress{}, ErrInvalidFormat
	}
	return ParsedAddress{Number: number, Street: strings.ToUpper(strings.TrimSpace(m[2]))}, nil
}

// FindStreetInfo matches a street name and house number against the
// street table. A record is a candidate when either name contains the
// other as a substring, so "MAIN" matches "MAIN STREET" and vice versa.
// Among candidates the first record in load order whose range contains
// the number wins; that tie-break is deliberate and must not change.
func (d *ReferenceData) FindStreetInfo(street string, houseNumber int) (*StreetRecord, error) {
	query := strings.ToUpper(street)

	var candidates []*StreetRecord
	for i := range d.Streets {
		rec := &d.Streets[i]
		if strings.Contains(rec.Street, query) || strings.Contains(query, rec.Street) {
			candidates = append(candidates, rec)
		}
	}

	for _, rec := range candidates {
		if houseNumber >= rec.Low && houseNumber <= rec.High {
			return rec, nil
		}
	}

	if len(candidates) > 0 {
		ranges := make([]string, len(candidates))
		for i, rec := range candidates {
			ranges[i] = fmt.Sprintf("%d-%d", rec.Low, rec.High)
		}
		return nil, &HouseNumberError{Street: query, Number: houseNumber, Ranges: ranges}
	}
	return nil, &StreetNotFoundError{Street: query}
}

// FindMatches returns autocomplete suggestions for a partial address: the
// deduplicated, sorted street names containing the input (any leading
// house number stripped), capped at 10. Inputs shorter than two
// characters return nothing.
func (d *ReferenceData) FindMatches(partial string) []string {
	streetPart := strings.ToUpper(leadingNumber.ReplaceAllString(strings.TrimSpace(partial), ""))
	if len(streetPart) < 2 {
		return nil
	}

	seen := make(map[string]bool)
	var matches []string
	for _, rec := range d.Streets {
		if strings.Contains(rec.Street, streetPart) && !seen[rec.Street] {
			seen[rec.Street] = true
			matches = append(matches, rec.Street)
		}
	}

	sort.Strings(matches)
	if len(matches) > 10 {
		matches = matches[:10]
	}
	return matches
}
