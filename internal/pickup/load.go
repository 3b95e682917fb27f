package pickup

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Reference data file names, loaded in this order. The street files
// concatenate into a single table; record order within and across files
// is the tie-break order for FindStreetInfo.
const (
	HolidaysFile  = "holidays.json"
	YardWasteFile = "yardwaste.json"
)

var StreetFiles = []string{
	"streets-a-c.json",
	"streets-d-g.json",
	"streets-h-m.json",
	"streets-n-s.json",
	"streets-t-z.json",
}

// LoadReferenceData reads all reference tables from dir within fsys. The
// load is all-or-nothing: any missing or malformed file fails the whole
// load and the caller must refuse to serve queries.
func LoadReferenceData(fsys fs.FS, dir string) (*ReferenceData, error) {
	data := &ReferenceData{
		YardWasteWeeks: make(map[string][]string),
	}

	if err := loadHolidays(fsys, path.Join(dir, HolidaysFile), data); err != nil {
		return nil, fmt.Errorf("load %s: %w", HolidaysFile, err)
	}
	if err := loadYardWaste(fsys, path.Join(dir, YardWasteFile), data); err != nil {
		return nil, fmt.Errorf("load %s: %w", YardWasteFile, err)
	}
	for _, name := range StreetFiles {
		if err := loadStreets(fsys, path.Join(dir, name), data); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}

	if len(data.Streets) == 0 {
		return nil, fmt.Errorf("street table is empty")
	}
	return data, nil
}

// loadHolidays decodes the holidays object with a token stream instead of
// a map so the file's key order survives. The same-week tie-break in
// CheckHolidayDelay depends on that order.
func loadHolidays(fsys fs.FS, name string, data *ReferenceData) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		if key != "holidays" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return err
			}
			continue
		}

		if err := expectDelim(dec, '{'); err != nil {
			return err
		}
		for dec.More() {
			dateTok, err := dec.Token()
			if err != nil {
				return err
			}
			date, ok := dateTok.(string)
			if !ok {
				return fmt.Errorf("holiday key is not a string")
			}
			var holidayName string
			if err := dec.Decode(&holidayName); err != nil {
				return err
			}
			if _, err := ParseDate(date); err != nil {
				return fmt.Errorf("holiday date %q: %w", date, err)
			}
			data.Holidays = append(data.Holidays, Holiday{Date: date, Name: holidayName})
		}
		if _, err := dec.Token(); err != nil {
			return err
		}
	}

	if len(data.Holidays) == 0 {
		return fmt.Errorf("no holidays found")
	}
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func loadYardWaste(fsys fs.FS, name string, data *ReferenceData) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}

	var file struct {
		SeasonStart    string              `json:"seasonStart"`
		SeasonEnd      string              `json:"seasonEnd"`
		YardWasteWeeks map[string][]string `json:"yardWasteWeeks"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return err
	}

	start, err := ParseDate(file.SeasonStart)
	if err != nil {
		return fmt.Errorf("seasonStart %q: %w", file.SeasonStart, err)
	}
	if _, err := ParseDate(file.SeasonEnd); err != nil {
		return fmt.Errorf("seasonEnd %q: %w", file.SeasonEnd, err)
	}
	if file.SeasonEnd < file.SeasonStart {
		return fmt.Errorf("season ends (%s) before it starts (%s)", file.SeasonEnd, file.SeasonStart)
	}
	for zone, weeks := range file.YardWasteWeeks {
		for _, week := range weeks {
			if _, err := ParseDate(week); err != nil {
				return fmt.Errorf("zone %s week %q: %w", zone, week, err)
			}
		}
	}

	data.SeasonStart = file.SeasonStart
	data.SeasonEnd = file.SeasonEnd
	if file.YardWasteWeeks != nil {
		data.YardWasteWeeks = file.YardWasteWeeks
	}
	data.Year = start.Year()
	return nil
}

func loadStreets(fsys fs.FS, name string, data *ReferenceData) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}

	var file struct {
		Streets []StreetRecord `json:"streets"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return err
	}

	for i, rec := range file.Streets {
		rec.Street = strings.ToUpper(strings.TrimSpace(rec.Street))
		if rec.Street == "" {
			return fmt.Errorf("record %d: empty street name", i)
		}
		if rec.Low > rec.High {
			return fmt.Errorf("record %d (%s): range %d-%d is inverted", i, rec.Street, rec.Low, rec.High)
		}
		if _, err := ParseWeekday(rec.Day); err != nil {
			return fmt.Errorf("record %d (%s): %w", i, rec.Street, err)
		}
		data.Streets = append(data.Streets, rec)
	}
	return nil
}
