package pickup

import "time"

// YardWasteMonday returns the Monday governing the collection week for a
// date. Sundays look forward to tomorrow's Monday; Monday through
// Saturday snap back to the Monday of the same Sunday-start week. The
// asymmetry is intentional: asking on a Sunday should answer for the week
// about to start, not the one that just ended.
func YardWasteMonday(d time.Time) time.Time {
	day := midnight(d)
	if d.Weekday() == time.Sunday {
		return day.AddDate(0, 0, 1)
	}
	return day.AddDate(0, 0, -(int(d.Weekday()) - 1))
}

// CheckYardWastePickup determines yard-waste eligibility for a zone on
// the given reference date. Outside the inclusive season window it
// returns BeforeSeason or AfterSeason; within it, Active when the
// governing Monday is one of the zone's scheduled weeks, Pending
// otherwise. Zones missing from the schedule have an empty week set and
// are simply never active.
func (d *ReferenceData) CheckYardWastePickup(ref time.Time, zone string) YardWasteStatus {
	day := FormatDate(ref)
	if day < d.SeasonStart {
		return YardWasteBeforeSeason
	}
	if day > d.SeasonEnd {
		return YardWasteAfterSeason
	}

	monday := FormatDate(YardWasteMonday(ref))
	for _, week := range d.YardWasteWeeks[zone] {
		if week == monday {
			return YardWasteActive
		}
	}
	return YardWastePending
}
