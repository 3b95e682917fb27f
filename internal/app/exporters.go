package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jszwec/csvutil"

	"github.com/harborline/wey-services/trash-pickup/internal/pickup"
)

// Event types
const (
	EventTrash     = "trash"
	EventYardWaste = "yard_waste"
)

// Event is a single projected collection event.
type Event struct {
	Date        string `json:"date" csv:"date"`
	Type        string `json:"type" csv:"type"`
	Description string `json:"description" csv:"description"`
}

// SortEventsByDate sorts events by date in ascending order
func SortEventsByDate(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Type < events[j].Type
	})
}

// ProjectEvents builds the remaining collection events for a street
// record from a start date through the end of the reference year: one
// trash pickup per week on the effective day (holiday shifts applied),
// plus the zone's yard-waste weeks.
func ProjectEvents(data *pickup.ReferenceData, rec *pickup.StreetRecord, from time.Time) []Event {
	nominal, err := pickup.ParseWeekday(rec.Day)
	if err != nil {
		return nil
	}

	fromStr := pickup.FormatDate(from)
	yearEnd := fmt.Sprintf("%d-12-31", data.Year)

	var events []Event
	for week := pickup.WeekStart(from); ; week = week.AddDate(0, 0, 7) {
		day := week.AddDate(0, 0, int(nominal))
		if info := data.CheckHolidayDelay(day, nominal); info != nil && info.Delayed {
			day = day.AddDate(0, 0, 1)
		}
		date := pickup.FormatDate(day)
		if date > yearEnd {
			break
		}
		if date < fromStr {
			continue
		}
		events = append(events, Event{
			Date:        date,
			Type:        EventTrash,
			Description: "Trash pickup",
		})
	}

	for _, monday := range data.YardWasteWeeks[rec.Zone] {
		if monday >= fromStr && monday <= yearEnd {
			events = append(events, Event{
				Date:        monday,
				Type:        EventYardWaste,
				Description: "Yard waste collection",
			})
		}
	}

	SortEventsByDate(events)
	return events
}

// GenerateICS generates an iCalendar (ICS) file with optional reminders
func GenerateICS(w http.ResponseWriter, r *http.Request, label string, year int, events []Event) {
	reminder1Day := r.URL.Query().Get("reminder1Day") == "true"
	reminderSameDay := r.URL.Query().Get("reminderSameDay") == "true"
	time1Day := r.URL.Query().Get("time1Day")
	timeSameDay := r.URL.Query().Get("timeSameDay")

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=pickup_%s_%d.ics", fileSlug(label), year))

	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", ICSProductID)
	fmt.Fprintf(w, "X-WR-CALNAME:Trash Pickup %s %d\n", label, year)
	fmt.Fprintf(w, "X-WR-TIMEZONE:%s\n", ICSTimezone)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")

	for _, event := range events {
		eventDate, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			continue
		}

		writeICSEvent(w, label, event, eventDate)

		if reminder1Day && time1Day != "" {
			AddAlarm(w, eventDate, 1, time1Day, event.Description)
		}
		if reminderSameDay && timeSameDay != "" {
			AddAlarm(w, eventDate, 0, timeSameDay, event.Description)
		}

		fmt.Fprintln(w, "END:VEVENT")
	}

	fmt.Fprintln(w, "END:VCALENDAR")
}

// writeICSEvent writes an all-day VEVENT, leaving it open so the caller
// can append VALARM blocks.
func writeICSEvent(w io.Writer, label string, event Event, eventDate time.Time) {
	uid := fmt.Sprintf("%s-%s-%s@%s", event.Date, event.Type, fileSlug(label), ICSUIDDomain)

	fmt.Fprintln(w, "BEGIN:VEVENT")
	fmt.Fprintf(w, "UID:%s\n", uid)
	fmt.Fprintf(w, "DTSTAMP:%s\n", time.Now().UTC().Format("20060102T150405Z"))
	fmt.Fprintf(w, "DTSTART;VALUE=DATE:%s\n", eventDate.Format("20060102"))
	fmt.Fprintf(w, "DTEND;VALUE=DATE:%s\n", eventDate.AddDate(0, 0, 1).Format("20060102"))
	fmt.Fprintf(w, "SUMMARY:%s\n", event.Description)
	fmt.Fprintf(w, "DESCRIPTION:%s - %s\n", event.Description, label)
	fmt.Fprintf(w, "LOCATION:%s\n", label)
}

// AddAlarm adds an alarm/reminder to an ICS event
func AddAlarm(w io.Writer, eventDate time.Time, daysBefore int, alarmTime string, description string) {
	parts := strings.Split(alarmTime, ":")
	if len(parts) != 2 {
		return
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return
	}

	// The event starts at 00:00 on eventDate; the trigger is the offset
	// from that to alarmTime on (eventDate - daysBefore), as an ISO 8601
	// duration (negative when before the event).
	alarmDate := eventDate.AddDate(0, 0, -daysBefore)
	alarmDateTime := time.Date(alarmDate.Year(), alarmDate.Month(), alarmDate.Day(), hour, minute, 0, 0, time.UTC)
	eventStart := time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, time.UTC)

	totalMinutes := int(alarmDateTime.Sub(eventStart).Minutes())
	isNegative := totalMinutes < 0
	if isNegative {
		totalMinutes = -totalMinutes
	}

	days := totalMinutes / (24 * 60)
	remainingMinutes := totalMinutes % (24 * 60)
	hours := remainingMinutes / 60
	minutes := remainingMinutes % 60

	var trigger string
	if isNegative {
		trigger = fmt.Sprintf("-P%dDT%dH%dM", days, hours, minutes)
	} else {
		trigger = fmt.Sprintf("P%dDT%dH%dM", days, hours, minutes)
	}

	fmt.Fprintln(w, "BEGIN:VALARM")
	fmt.Fprintln(w, "ACTION:DISPLAY")
	fmt.Fprintf(w, "DESCRIPTION:Reminder: %s\n", description)
	fmt.Fprintf(w, "TRIGGER:%s\n", trigger)
	fmt.Fprintln(w, "END:VALARM")
}

// GenerateCSV generates a CSV file with collection events
func GenerateCSV(w http.ResponseWriter, label string, year int, events []Event) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=pickup_%s_%d.csv", fileSlug(label), year))

	data, err := csvutil.Marshal(events)
	if err != nil {
		log.Printf("Error encoding CSV export: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
		return
	}
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing CSV export: %v", err)
	}
}

// GenerateJSON generates a JSON file with collection events
func GenerateJSON(w http.ResponseWriter, label string, year int, events []Event) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=pickup_%s_%d.json", fileSlug(label), year))

	data := map[string]interface{}{
		"street": label,
		"year":   year,
		"events": events,
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON export: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
	}
}

// GenerateSubscriptionICS generates an iCalendar (ICS) subscription feed.
// Unlike GenerateICS this is meant for calendar subscriptions: inline
// content (no attachment header), METHOD:PUBLISH, a refresh hint, and no
// VALARM blocks since calendar apps ignore alarms in subscribed feeds.
func GenerateSubscriptionICS(w http.ResponseWriter, r *http.Request, label string, events []Event) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")

	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", ICSProductID)
	fmt.Fprintln(w, "METHOD:PUBLISH")
	fmt.Fprintf(w, "X-WR-CALNAME:Trash Pickup %s\n", label)
	fmt.Fprintf(w, "X-WR-TIMEZONE:%s\n", ICSTimezone)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")
	fmt.Fprintln(w, "X-PUBLISHED-TTL:PT24H")

	for _, event := range events {
		eventDate, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			continue
		}
		writeICSEvent(w, label, event, eventDate)
		fmt.Fprintln(w, "END:VEVENT")
	}

	fmt.Fprintln(w, "END:VCALENDAR")
}

// fileSlug makes a label safe for filenames and UIDs.
func fileSlug(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "-")
}
