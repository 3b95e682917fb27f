package pickup

import (
	"fmt"
	"strings"
	"time"
)

// Session carries the only mutable state in a lookup: the reference date
// and the last successfully resolved address. The reference tables stay
// in the shared read-only ReferenceData.
type Session struct {
	Data        *ReferenceData
	Date        time.Time
	LastAddress string
}

func NewSession(data *ReferenceData, date time.Time) *Session {
	return &Session{Data: data, Date: date}
}

// Lookup resolves a raw address and builds the full pickup report for the
// session's reference date: street match, holiday shift, yard-waste
// eligibility. Pure given the session's inputs; calling it twice yields
// the same report.
//
// The holiday scan covers the reference date's week first and the
// following week second, stopping at the first week with a weekday
// holiday.
func (s *Session) Lookup(raw string) (*PickupReport, error) {
	parsed, err := ParseAddress(raw)
	if err != nil {
		return nil, err
	}
	rec, err := s.Data.FindStreetInfo(parsed.Street, parsed.Number)
	if err != nil {
		return nil, err
	}
	s.LastAddress = strings.TrimSpace(raw)

	nominal, err := ParseWeekday(rec.Day)
	if err != nil {
		return nil, fmt.Errorf("street %s: %w", rec.Street, err)
	}

	report := &PickupReport{
		Address:      s.LastAddress,
		Street:       rec.Street,
		Zone:         rec.Zone,
		NominalDay:   nominal.String(),
		EffectiveDay: nominal.String(),
	}

	info := s.Data.CheckHolidayDelay(s.Date, nominal)
	week := "this week"
	if info == nil {
		info = s.Data.CheckHolidayDelay(s.Date.AddDate(0, 0, 7), nominal)
		week = "next week"
	}
	if info != nil {
		info.Week = week
		report.HolidayName = info.Name
		report.HolidayWeek = info.Week
		if info.Delayed {
			report.HolidayShiftApplied = true
			report.EffectiveDay = ShiftedPickupDay(nominal).String()
		}
	}

	report.YardWasteStatus = s.Data.CheckYardWastePickup(s.Date, rec.Zone)
	return report, nil
}
