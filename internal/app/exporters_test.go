package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harborline/wey-services/trash-pickup/internal/pickup"
)

func exportTestData() *pickup.ReferenceData {
	return &pickup.ReferenceData{
		Streets: []pickup.StreetRecord{
			{Street: "MAIN STREET", Low: 1, High: 499, Day: "Wednesday", Zone: "2"},
		},
		Holidays: []pickup.Holiday{
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-07-04", Name: "Independence Day"},
			{Date: "2025-09-01", Name: "Labor Day"},
			{Date: "2025-11-27", Name: "Thanksgiving Day"},
		},
		YardWasteWeeks: map[string][]string{
			"2": {"2025-09-01", "2025-09-15"},
		},
		SeasonStart: "2025-04-14",
		SeasonEnd:   "2025-12-12",
		Year:        2025,
	}
}

func TestProjectEvents(t *testing.T) {
	data := exportTestData()
	rec := &data.Streets[0]

	from, _ := pickup.ParseDate("2025-08-27")
	events := ProjectEvents(data, rec, from)

	byDate := make(map[string]string)
	for _, e := range events {
		byDate[e.Date] = e.Type
	}

	// Weekly Wednesday pickups from the start date through year end: 19
	// weeks, plus the zone's two remaining yard-waste Mondays.
	if len(events) != 21 {
		t.Fatalf("Got %d events, want 21: %v", len(events), events)
	}

	// The start date itself is included
	if byDate["2025-08-27"] != EventTrash {
		t.Error("Missing trash pickup on the start date 2025-08-27")
	}

	// Labor Day week: pickup shifts from Wednesday to Thursday
	if _, ok := byDate["2025-09-03"]; ok {
		t.Error("Labor Day week pickup should not be on the nominal Wednesday")
	}
	if byDate["2025-09-04"] != EventTrash {
		t.Error("Labor Day week pickup should shift to Thursday 2025-09-04")
	}

	// Thanksgiving (Thursday) is after a Wednesday pickup: no shift
	if byDate["2025-11-26"] != EventTrash {
		t.Error("Thanksgiving week Wednesday pickup should not shift")
	}

	// Yard waste Mondays for the zone
	if byDate["2025-09-01"] != EventYardWaste || byDate["2025-09-15"] != EventYardWaste {
		t.Errorf("Missing yard waste events: %v", byDate)
	}

	// Last pickup of the year is Wednesday Dec 31
	if byDate["2025-12-31"] != EventTrash {
		t.Error("Missing final pickup of the year on 2025-12-31")
	}

	// Sorted ascending
	for i := 1; i < len(events); i++ {
		if events[i-1].Date > events[i].Date {
			t.Fatalf("Events not sorted: %v", events)
		}
	}
}

func TestProjectEventsSkipsDatesBeforeStart(t *testing.T) {
	data := exportTestData()
	rec := &data.Streets[0]

	// Friday start: the current week's Wednesday pickup already happened
	from, _ := pickup.ParseDate("2025-08-29")
	events := ProjectEvents(data, rec, from)

	if len(events) == 0 {
		t.Fatal("Expected events")
	}
	if events[0].Date != "2025-09-01" {
		t.Errorf("First event = %s, want 2025-09-01 (past Wednesday excluded)", events[0].Date)
	}
}

func TestSortEventsByDate(t *testing.T) {
	events := []Event{
		{Date: "2025-09-04", Type: EventTrash},
		{Date: "2025-09-01", Type: EventYardWaste},
		{Date: "2025-09-01", Type: EventTrash},
	}
	SortEventsByDate(events)

	if events[0].Date != "2025-09-01" || events[0].Type != EventTrash {
		t.Errorf("First event = %+v, want trash on 2025-09-01", events[0])
	}
	if events[1].Type != EventYardWaste {
		t.Errorf("Same-date tie should order by type, got %+v", events[1])
	}
	if events[2].Date != "2025-09-04" {
		t.Errorf("Last event = %+v, want 2025-09-04", events[2])
	}
}

func TestGenerateICS(t *testing.T) {
	events := []Event{
		{Date: "2025-09-04", Type: EventTrash, Description: "Trash pickup"},
		{Date: "2025-09-01", Type: EventYardWaste, Description: "Yard waste collection"},
	}

	// Request both reminder kinds
	req := httptest.NewRequest("GET", "/api/download?reminder1Day=true&time1Day=19:00&reminderSameDay=true&timeSameDay=07:00", nil)
	w := httptest.NewRecorder()

	GenerateICS(w, req, "MAIN STREET", 2025, events)

	resp := w.Result()
	body := w.Body.String()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/calendar") {
		t.Errorf("Expected Content-Type text/calendar, got %s", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "pickup_main-street_2025.ics") {
		t.Errorf("Unexpected Content-Disposition: %s", cd)
	}

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + ICSProductID,
		"X-WR-TIMEZONE:" + ICSTimezone,
		"BEGIN:VEVENT",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		if !strings.Contains(body, field) {
			t.Errorf("ICS output missing required field: %s", field)
		}
	}

	// All-day event format
	if !strings.Contains(body, "DTSTART;VALUE=DATE:20250904") {
		t.Error("Event should be all-day (DTSTART;VALUE=DATE)")
	}
	if !strings.Contains(body, "DTEND;VALUE=DATE:20250905") {
		t.Error("All-day event should end on next day")
	}

	// Each event gets both alarms
	if alarms := strings.Count(body, "BEGIN:VALARM"); alarms != 4 {
		t.Errorf("Expected 4 alarms (2 events x 2 reminders), got %d", alarms)
	}
	// 19:00 the day before is 5 hours before the event's midnight start
	if !strings.Contains(body, "TRIGGER:-P0DT5H0M") {
		t.Error("Missing day-before trigger -P0DT5H0M")
	}
	// 07:00 same day is 7 hours after midnight
	if !strings.Contains(body, "TRIGGER:P0DT7H0M") {
		t.Error("Missing same-day trigger P0DT7H0M")
	}

	// UID format
	if !strings.Contains(body, "UID:2025-09-04-trash-main-street@"+ICSUIDDomain) {
		t.Error("Missing or incorrect UID format")
	}
}

func TestGenerateICSWithoutReminders(t *testing.T) {
	events := []Event{{Date: "2025-09-04", Type: EventTrash, Description: "Trash pickup"}}

	req := httptest.NewRequest("GET", "/api/download", nil)
	w := httptest.NewRecorder()

	GenerateICS(w, req, "MAIN STREET", 2025, events)

	if alarms := strings.Count(w.Body.String(), "BEGIN:VALARM"); alarms != 0 {
		t.Errorf("Expected no alarms without reminder params, got %d", alarms)
	}
}

func TestGenerateSubscriptionICS(t *testing.T) {
	events := []Event{
		{Date: "2025-09-01", Type: EventYardWaste, Description: "Yard waste collection"},
	}

	req := httptest.NewRequest("GET", "/api/subscribe/2", nil)
	w := httptest.NewRecorder()

	GenerateSubscriptionICS(w, req, "Zone 2", events)

	resp := w.Result()
	body := w.Body.String()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/calendar") {
		t.Errorf("Expected Content-Type text/calendar, got %s", ct)
	}

	// Subscriptions are inline content, not attachments
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		t.Errorf("Subscription should not have Content-Disposition header, got: %s", cd)
	}

	requiredFields := []string{
		"METHOD:PUBLISH",
		"X-PUBLISHED-TTL:PT24H",
		"DTSTART;VALUE=DATE:20250901",
		"SUMMARY:Yard waste collection",
	}
	for _, field := range requiredFields {
		if !strings.Contains(body, field) {
			t.Errorf("Subscription ICS missing required field: %s", field)
		}
	}

	// Calendar apps ignore alarms in subscribed feeds
	if alarms := strings.Count(body, "BEGIN:VALARM"); alarms != 0 {
		t.Errorf("Subscription should not contain alarms (found %d VALARM blocks)", alarms)
	}
}

func TestGenerateCSV(t *testing.T) {
	events := []Event{
		{Date: "2025-09-01", Type: EventYardWaste, Description: "Yard waste collection"},
		{Date: "2025-09-04", Type: EventTrash, Description: "Trash pickup"},
	}

	w := httptest.NewRecorder()
	GenerateCSV(w, "MAIN STREET", 2025, events)

	resp := w.Result()
	body := w.Body.String()

	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/csv") {
		t.Errorf("Expected Content-Type text/csv, got %s", ct)
	}

	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) != 3 {
		t.Fatalf("Got %d CSV lines, want header + 2 rows: %q", len(lines), body)
	}
	if lines[0] != "date,type,description" {
		t.Errorf("CSV header = %q, want date,type,description", lines[0])
	}
	if !strings.Contains(lines[2], "2025-09-04") || !strings.Contains(lines[2], EventTrash) {
		t.Errorf("Unexpected CSV row: %q", lines[2])
	}
}

func TestGenerateJSON(t *testing.T) {
	events := []Event{
		{Date: "2025-09-04", Type: EventTrash, Description: "Trash pickup"},
	}

	w := httptest.NewRecorder()
	GenerateJSON(w, "MAIN STREET", 2025, events)

	var out struct {
		Street string  `json:"street"`
		Year   int     `json:"year"`
		Events []Event `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Invalid JSON export: %v", err)
	}
	if out.Street != "MAIN STREET" || out.Year != 2025 || len(out.Events) != 1 {
		t.Errorf("JSON export = %+v", out)
	}
}
