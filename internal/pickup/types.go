package pickup

import (
	"encoding/json"
	"time"
)

// StreetRecord maps a house number range on a street to its pickup
// assignment. Street names are canonicalized to uppercase at load time.
// Multiple records may share a street name with different ranges; load
// order decides ties (see FindStreetInfo).
type StreetRecord struct {
	Street string `json:"street"`
	Low    int    `json:"low"`
	High   int    `json:"high"`
	Day    string `json:"day"`
	Zone   string `json:"zone"`
}

// ParsedAddress is the result of splitting user input into a house number
// and an uppercased street name. Transient, never persisted.
type ParsedAddress struct {
	Number int
	Street string
}

// Holiday is one entry of the holiday calendar. Only entries falling on a
// Monday-Friday affect pickup; weekend entries are inert.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// HolidayInfo describes the holiday found in a pickup week. Delayed is
// false when the holiday falls after the nominal pickup day; the holiday
// is still reported for display.
type HolidayInfo struct {
	Name    string
	Date    time.Time
	Week    string
	Delayed bool
}

// YardWasteStatus is the outcome of a yard-waste eligibility check.
type YardWasteStatus int

const (
	YardWasteBeforeSeason YardWasteStatus = iota
	YardWastePending
	YardWasteActive
	YardWasteAfterSeason
)

func (s YardWasteStatus) String() string {
	switch s {
	case YardWasteBeforeSeason:
		return "BeforeSeason"
	case YardWastePending:
		return "Pending"
	case YardWasteActive:
		return "Active"
	case YardWasteAfterSeason:
		return "AfterSeason"
	}
	return "Unknown"
}

func (s YardWasteStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// PickupReport is the computed result for one (address, reference date)
// pair. Recomputed on every query, never cached across date changes.
type PickupReport struct {
	Address             string          `json:"address"`
	Street              string          `json:"street"`
	Zone                string          `json:"zone"`
	NominalDay          string          `json:"nominalDay"`
	EffectiveDay        string          `json:"effectiveDay"`
	HolidayShiftApplied bool            `json:"holidayShiftApplied"`
	HolidayName         string          `json:"holidayName,omitempty"`
	HolidayWeek         string          `json:"holidayWeek,omitempty"`
	YardWasteStatus     YardWasteStatus `json:"yardWasteStatus"`
}
