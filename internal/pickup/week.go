package pickup

import "time"

// FormatDate renders the date's calendar fields as YYYY-MM-DD. It reads
// the fields in the date's own location rather than converting to UTC,
// which avoids off-by-one results near midnight.
func FormatDate(d time.Time) string {
	return d.Format("2006-01-02")
}

// WeekStart returns the Sunday beginning the week containing d, at
// midnight in d's location.
func WeekStart(d time.Time) time.Time {
	return midnight(d).AddDate(0, 0, -int(d.Weekday()))
}

// WeekDates returns the seven days of the Sunday-start week containing d,
// Sunday first.
func WeekDates(d time.Time) []time.Time {
	start := WeekStart(d)
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// DateInWeek reports whether d falls on any of the given days, comparing
// calendar days rather than instants.
func DateInWeek(d time.Time, week []time.Time) bool {
	for _, day := range week {
		if sameDay(d, day) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
