package pickup

import (
	"sort"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// PatriotsDay is the Massachusetts state holiday on the third Monday in
// April. It is not in the federal set, so it is defined here.
var PatriotsDay = &cal.Holiday{
	Name:    "Patriots' Day",
	Type:    cal.ObservancePublic,
	Month:   time.April,
	Weekday: time.Monday,
	Offset:  3,
	Func:    cal.CalcWeekdayOffset,
}

// collectionHolidays are the closures observed by the collection
// contractor: the federal holidays plus Patriots' Day.
var collectionHolidays = []*cal.Holiday{
	us.NewYear,
	us.MlkDay,
	us.PresidentsDay,
	PatriotsDay,
	us.MemorialDay,
	us.Juneteenth,
	us.IndependenceDay,
	us.LaborDay,
	us.ColumbusDay,
	us.VeteransDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
}

// CollectionHolidays returns the holiday calendar for a year in calendar
// order, using each holiday's actual date. This is the generator behind
// the shipped holidays.json.
func CollectionHolidays(year int) []Holiday {
	out := make([]Holiday, 0, len(collectionHolidays))
	for _, h := range collectionHolidays {
		actual, _ := h.Calc(year)
		out = append(out, Holiday{Date: FormatDate(actual), Name: h.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
