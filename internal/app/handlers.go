package app

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/harborline/wey-services/trash-pickup/internal/pickup"
)

// ServeIndex serves the lookup interface HTML
func (s *Server) ServeIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(IndexHTML); err != nil {
		log.Printf("Error writing index HTML: %v", err)
	}
}

// lookupResponse is the report plus the composed display messages.
type lookupResponse struct {
	*pickup.PickupReport
	ReferenceDate    string `json:"referenceDate"`
	PickupDayMessage string `json:"pickupDayMessage"`
	TrashMessage     string `json:"trashMessage"`
	YardWasteMessage string `json:"yardWasteMessage"`
}

// referenceDate resolves the optional date query param, defaulting to
// today.
func referenceDate(r *http.Request) (time.Time, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return time.Now(), nil
	}
	return pickup.ParseDate(dateStr)
}

// lookupStatus maps resolver errors to HTTP status codes.
func lookupStatus(err error) int {
	var notFound *pickup.StreetNotFoundError
	var outOfRange *pickup.HouseNumberError
	switch {
	case errors.Is(err, pickup.ErrInvalidFormat):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.As(err, &outOfRange):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// HandleLookup computes the full pickup report for an address.
// Query params: address (required), date (optional, YYYY-MM-DD)
func (s *Server) HandleLookup(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		http.Error(w, ErrMissingAddress, http.StatusBadRequest)
		return
	}
	date, err := referenceDate(r)
	if err != nil {
		http.Error(w, ErrInvalidDate, http.StatusBadRequest)
		return
	}

	data := s.Data()
	session := pickup.NewSession(data, date)
	report, err := session.Lookup(address)
	if err != nil {
		http.Error(w, LookupErrorMessage(err), lookupStatus(err))
		return
	}

	WriteJSON(w, lookupResponse{
		PickupReport:     report,
		ReferenceDate:    pickup.FormatDate(date),
		PickupDayMessage: PickupDayMessage(report),
		TrashMessage:     TrashMessage(report),
		YardWasteMessage: YardWasteMessage(data, report),
	})
}

// HandleSuggest returns autocomplete candidates for a partial address.
// Query param: q
func (s *Server) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	matches := s.Data().FindMatches(r.URL.Query().Get("q"))
	if matches == nil {
		matches = []string{}
	}
	WriteJSON(w, map[string][]string{"matches": matches})
}

// HandleConfig returns the reference dataset summary: year, season
// window, holiday calendar and known zones.
func (s *Server) HandleConfig(w http.ResponseWriter, r *http.Request) {
	data := s.Data()

	zones := make([]string, 0, len(data.YardWasteWeeks))
	for zone := range data.YardWasteWeeks {
		zones = append(zones, zone)
	}
	sort.Strings(zones)

	WriteJSON(w, map[string]interface{}{
		"year":        data.Year,
		"seasonStart": data.SeasonStart,
		"seasonEnd":   data.SeasonEnd,
		"holidays":    data.Holidays,
		"zones":       zones,
		"streets":     len(data.Streets),
	})
}

// HandleAddress manages the single saved address.
// GET returns it (404 when none), POST validates and saves it, DELETE
// clears it.
func (s *Server) HandleAddress(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		address, err := s.store.Load()
		if err != nil {
			if os.IsNotExist(err) {
				http.Error(w, ErrNoSavedAddress, http.StatusNotFound)
				return
			}
			log.Printf("Error loading saved address: %v", err)
			http.Error(w, ErrInternalServer, http.StatusInternalServerError)
			return
		}
		WriteJSON(w, map[string]string{"address": address})

	case http.MethodPost:
		var req struct {
			Address string `json:"address"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		address := strings.TrimSpace(req.Address)

		// Only resolvable addresses may be saved
		parsed, err := pickup.ParseAddress(address)
		if err == nil {
			_, err = s.Data().FindStreetInfo(parsed.Street, parsed.Number)
		}
		if err != nil {
			http.Error(w, LookupErrorMessage(err), http.StatusBadRequest)
			return
		}

		if err := s.store.Save(address); err != nil {
			log.Printf("Error saving address: %v", err)
			http.Error(w, ErrFailedToSave, http.StatusInternalServerError)
			return
		}
		WriteJSON(w, map[string]string{"status": "ok", "address": address})

	case http.MethodDelete:
		if err := s.store.Clear(); err != nil {
			log.Printf("Error clearing saved address: %v", err)
			http.Error(w, ErrInternalServer, http.StatusInternalServerError)
			return
		}
		WriteJSON(w, map[string]string{"status": "ok"})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleDownload exports the projected pickup events for an address in
// ICS, CSV or JSON format.
// Query params: address, format, date (optional start, defaults to today)
func (s *Server) HandleDownload(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		http.Error(w, ErrMissingAddress, http.StatusBadRequest)
		return
	}
	from, err := referenceDate(r)
	if err != nil {
		http.Error(w, ErrInvalidDate, http.StatusBadRequest)
		return
	}

	data := s.Data()
	parsed, err := pickup.ParseAddress(address)
	var rec *pickup.StreetRecord
	if err == nil {
		rec, err = data.FindStreetInfo(parsed.Street, parsed.Number)
	}
	if err != nil {
		http.Error(w, LookupErrorMessage(err), lookupStatus(err))
		return
	}

	events := ProjectEvents(data, rec, from)

	switch r.URL.Query().Get("format") {
	case "ics":
		GenerateICS(w, r, rec.Street, data.Year, events)
	case "csv":
		GenerateCSV(w, rec.Street, data.Year, events)
	case "json":
		GenerateJSON(w, rec.Street, data.Year, events)
	default:
		http.Error(w, ErrInvalidFormat, http.StatusBadRequest)
	}
}

// HandleSubscribe serves an ICS subscription feed of a zone's yard-waste
// collection weeks.
// URL: /api/subscribe/{zone}
func (s *Server) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	zone := r.URL.Path[len("/api/subscribe/"):]
	data := s.Data()

	weeks, ok := data.YardWasteWeeks[zone]
	if !ok {
		http.NotFound(w, r)
		return
	}

	events := make([]Event, 0, len(weeks))
	for _, monday := range weeks {
		events = append(events, Event{
			Date:        monday,
			Type:        EventYardWaste,
			Description: "Yard waste collection",
		})
	}
	SortEventsByDate(events)

	GenerateSubscriptionICS(w, r, "Zone "+zone, events)
}

// HandleAdminReload reloads the reference data from the data source.
func (s *Server) HandleAdminReload(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	if !s.AdminMode {
		http.Error(w, ErrAdminDisabled, http.StatusForbidden)
		return
	}

	if err := s.Reload(); err != nil {
		log.Printf("Error reloading reference data: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	WriteJSON(w, map[string]string{"status": "ok"})
}
