package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harborline/wey-services/trash-pickup/internal/pickup"
)

// PickupDayMessage renders the headline line for a report.
func PickupDayMessage(report *pickup.PickupReport) string {
	return fmt.Sprintf("Pickup day: %s (Zone %s)", report.NominalDay, report.Zone)
}

// TrashMessage renders the holiday-delay line for a report.
func TrashMessage(report *pickup.PickupReport) string {
	switch {
	case report.HolidayShiftApplied:
		return fmt.Sprintf("Trash pickup delayed by one day %s due to %s - pickup on %s",
			report.HolidayWeek, report.HolidayName, report.EffectiveDay)
	case report.HolidayName != "":
		return fmt.Sprintf("No delays %s - %s is after your pickup day",
			report.HolidayWeek, report.HolidayName)
	default:
		return "No trash pickup delays this week or next week"
	}
}

// YardWasteMessage renders the yard-waste line for a report. The season
// boundary messages cite the season dates from the reference data.
func YardWasteMessage(data *pickup.ReferenceData, report *pickup.PickupReport) string {
	switch report.YardWasteStatus {
	case pickup.YardWasteBeforeSeason:
		return fmt.Sprintf("Yard waste season starts %s", data.SeasonStart)
	case pickup.YardWasteAfterSeason:
		return fmt.Sprintf("Yard waste season ended %s", data.SeasonEnd)
	case pickup.YardWasteActive:
		return fmt.Sprintf("Yes! Yard waste pickup this week (Zone %s)", report.Zone)
	default:
		return fmt.Sprintf("No yard waste pickup this week (Zone %s)", report.Zone)
	}
}

// LookupErrorMessage maps the resolver error kinds to the user-facing
// messages, one per kind.
func LookupErrorMessage(err error) string {
	var notFound *pickup.StreetNotFoundError
	var outOfRange *pickup.HouseNumberError
	switch {
	case errors.Is(err, pickup.ErrInvalidFormat):
		return `Please enter address in format: "123 Main Street"`
	case errors.As(err, &outOfRange):
		return fmt.Sprintf("House number %d not found for %s. Valid ranges: %s",
			outOfRange.Number, outOfRange.Street, strings.Join(outOfRange.Ranges, ", "))
	case errors.As(err, &notFound):
		return fmt.Sprintf("Street %q not found in Weymouth pickup database", notFound.Street)
	default:
		return ErrInternalServer
	}
}
