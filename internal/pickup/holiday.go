package pickup

import "time"

// weekdayNumber maps Monday..Friday to 1..5. Weekend days map to 0 so a
// weekend pickup day can never rank on or after a weekday holiday.
func weekdayNumber(d time.Weekday) int {
	if d >= time.Monday && d <= time.Friday {
		return int(d)
	}
	return 0
}

// IsPickupDelayedByHoliday reports whether a holiday on holidayDate delays
// a pickup nominally scheduled on pickupDay. Weekend holidays never delay;
// a weekday holiday delays every pickup on or after its weekday.
func IsPickupDelayedByHoliday(pickupDay time.Weekday, holidayDate time.Time) bool {
	h := holidayDate.Weekday()
	if h == time.Saturday || h == time.Sunday {
		return false
	}
	return weekdayNumber(pickupDay) >= int(h)
}

// ShiftedPickupDay returns the day a delayed pickup moves to: one step
// forward in the weekly cycle, applied exactly once. A Friday pickup
// shifts to Saturday rather than wrapping to the following Monday; that
// matches how the town actually runs make-up routes.
func ShiftedPickupDay(day time.Weekday) time.Weekday {
	return (day + 1) % 7
}

// CheckHolidayDelay scans the Sunday-start week containing ref for a
// weekday holiday and reports its effect on a pickup nominally on
// pickupDay. Returns nil when the week has no weekday holiday. When the
// holiday falls after the pickup day the result is informational
// (Delayed is false).
//
// Holidays are scanned in calendar-file order and the first hit wins, so
// a second weekday holiday in the same week is never reported.
func (d *ReferenceData) CheckHolidayDelay(ref time.Time, pickupDay time.Weekday) *HolidayInfo {
	week := WeekDates(ref)
	for _, h := range d.Holidays {
		date, err := ParseDate(h.Date)
		if err != nil {
			continue
		}
		weekday := date.Weekday()
		if weekday < time.Monday || weekday > time.Friday {
			continue
		}
		if !DateInWeek(date, week) {
			continue
		}
		return &HolidayInfo{
			Name:    h.Name,
			Date:    date,
			Delayed: IsPickupDelayedByHoliday(pickupDay, date),
		}
	}
	return nil
}
