package pickup

import (
	"sort"
	"testing"
)

func TestCollectionHolidays(t *testing.T) {
	holidays := CollectionHolidays(2025)

	if len(holidays) != 12 {
		t.Fatalf("Got %d holidays, want 12", len(holidays))
	}
	if !sort.SliceIsSorted(holidays, func(i, j int) bool { return holidays[i].Date < holidays[j].Date }) {
		t.Errorf("Holidays not in calendar order: %v", holidays)
	}

	byDate := make(map[string]string)
	for _, h := range holidays {
		byDate[h.Date] = h.Name
	}

	// Spot-check fixed and floating dates for 2025.
	wantDates := []string{
		"2025-01-01", // New Year's Day
		"2025-01-20", // MLK Day, third Monday
		"2025-02-17", // Presidents' Day
		"2025-04-21", // Patriots' Day, third Monday in April
		"2025-05-26", // Memorial Day, last Monday
		"2025-06-19",
		"2025-07-04",
		"2025-09-01", // Labor Day, first Monday
		"2025-10-13",
		"2025-11-11",
		"2025-11-27", // Thanksgiving, fourth Thursday
		"2025-12-25",
	}
	for _, d := range wantDates {
		if _, ok := byDate[d]; !ok {
			t.Errorf("Missing holiday on %s", d)
		}
	}
	if byDate["2025-04-21"] != "Patriots' Day" {
		t.Errorf("2025-04-21 = %q, want Patriots' Day", byDate["2025-04-21"])
	}
}
