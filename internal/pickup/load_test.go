package pickup

import (
	"strings"
	"testing"
	"testing/fstest"
)

const testHolidaysJSON = `{
  "holidays": {
    "2025-01-01": "New Year's Day",
    "2025-09-01": "Labor Day",
    "2025-07-04": "Independence Day"
  }
}`

const testYardWasteJSON = `{
  "seasonStart": "2025-04-14",
  "seasonEnd": "2025-12-12",
  "yardWasteWeeks": {
    "A": ["2025-04-14", "2025-04-28"],
    "B": ["2025-04-21"]
  }
}`

func testDataFS() fstest.MapFS {
	empty := []byte(`{"streets": []}`)
	return fstest.MapFS{
		"data/holidays.json":  {Data: []byte(testHolidaysJSON)},
		"data/yardwaste.json": {Data: []byte(testYardWasteJSON)},
		"data/streets-a-c.json": {Data: []byte(`{
			"streets": [
				{"street": "broad street", "low": 1, "high": 500, "day": "Monday", "zone": "A"}
			]
		}`)},
		"data/streets-d-g.json": {Data: empty},
		"data/streets-h-m.json": {Data: []byte(`{
			"streets": [
				{"street": "Main Street", "low": 1, "high": 499, "day": "Wednesday", "zone": "A"},
				{"street": "Main Street", "low": 500, "high": 1320, "day": "Thursday", "zone": "B"}
			]
		}`)},
		"data/streets-n-s.json": {Data: empty},
		"data/streets-t-z.json": {Data: empty},
	}
}

func TestLoadReferenceData(t *testing.T) {
	data, err := LoadReferenceData(testDataFS(), "data")
	if err != nil {
		t.Fatalf("LoadReferenceData failed: %v", err)
	}

	if data.Year != 2025 {
		t.Errorf("Year = %d, want 2025", data.Year)
	}
	if data.SeasonStart != "2025-04-14" || data.SeasonEnd != "2025-12-12" {
		t.Errorf("Season = %s..%s, want 2025-04-14..2025-12-12", data.SeasonStart, data.SeasonEnd)
	}
	if len(data.Streets) != 3 {
		t.Fatalf("Got %d street records, want 3", len(data.Streets))
	}
	if data.Streets[0].Street != "BROAD STREET" {
		t.Errorf("Street name not uppercased: %s", data.Streets[0].Street)
	}
	if len(data.YardWasteWeeks["A"]) != 2 || len(data.YardWasteWeeks["B"]) != 1 {
		t.Errorf("YardWasteWeeks = %v", data.YardWasteWeeks)
	}
}

func TestLoadReferenceDataHolidayOrder(t *testing.T) {
	// The JSON object deliberately lists Labor Day before Independence
	// Day; the loaded slice must keep that order, not re-sort by date.
	data, err := LoadReferenceData(testDataFS(), "data")
	if err != nil {
		t.Fatalf("LoadReferenceData failed: %v", err)
	}

	want := []Holiday{
		{Date: "2025-01-01", Name: "New Year's Day"},
		{Date: "2025-09-01", Name: "Labor Day"},
		{Date: "2025-07-04", Name: "Independence Day"},
	}
	if len(data.Holidays) != len(want) {
		t.Fatalf("Got %d holidays, want %d", len(data.Holidays), len(want))
	}
	for i := range want {
		if data.Holidays[i] != want[i] {
			t.Errorf("Holidays[%d] = %+v, want %+v", i, data.Holidays[i], want[i])
		}
	}
}

func TestLoadReferenceDataFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(fstest.MapFS)
		wantErr string
	}{
		{
			name:    "Missing holidays file",
			mutate:  func(m fstest.MapFS) { delete(m, "data/holidays.json") },
			wantErr: "holidays.json",
		},
		{
			name:    "Missing street file",
			mutate:  func(m fstest.MapFS) { delete(m, "data/streets-t-z.json") },
			wantErr: "streets-t-z.json",
		},
		{
			name: "Empty holiday table",
			mutate: func(m fstest.MapFS) {
				m["data/holidays.json"] = &fstest.MapFile{Data: []byte(`{"holidays": {}}`)}
			},
			wantErr: "no holidays",
		},
		{
			name: "Bad holiday date",
			mutate: func(m fstest.MapFS) {
				m["data/holidays.json"] = &fstest.MapFile{Data: []byte(`{"holidays": {"tomorrow": "Someday"}}`)}
			},
			wantErr: "holiday date",
		},
		{
			name: "Missing season bounds",
			mutate: func(m fstest.MapFS) {
				m["data/yardwaste.json"] = &fstest.MapFile{Data: []byte(`{"yardWasteWeeks": {}}`)}
			},
			wantErr: "seasonStart",
		},
		{
			name: "Season ends before it starts",
			mutate: func(m fstest.MapFS) {
				m["data/yardwaste.json"] = &fstest.MapFile{Data: []byte(
					`{"seasonStart": "2025-12-12", "seasonEnd": "2025-04-14", "yardWasteWeeks": {}}`)}
			},
			wantErr: "before it starts",
		},
		{
			name: "Bad yard waste week",
			mutate: func(m fstest.MapFS) {
				m["data/yardwaste.json"] = &fstest.MapFile{Data: []byte(
					`{"seasonStart": "2025-04-14", "seasonEnd": "2025-12-12", "yardWasteWeeks": {"A": ["soon"]}}`)}
			},
			wantErr: "week",
		},
		{
			name: "Unknown pickup day",
			mutate: func(m fstest.MapFS) {
				m["data/streets-a-c.json"] = &fstest.MapFile{Data: []byte(
					`{"streets": [{"street": "Broad Street", "low": 1, "high": 10, "day": "Moonday", "zone": "A"}]}`)}
			},
			wantErr: "unknown weekday",
		},
		{
			name: "Inverted house number range",
			mutate: func(m fstest.MapFS) {
				m["data/streets-a-c.json"] = &fstest.MapFile{Data: []byte(
					`{"streets": [{"street": "Broad Street", "low": 500, "high": 1, "day": "Monday", "zone": "A"}]}`)}
			},
			wantErr: "inverted",
		},
		{
			name: "All street tables empty",
			mutate: func(m fstest.MapFS) {
				for name := range m {
					if strings.Contains(name, "streets-") {
						m[name] = &fstest.MapFile{Data: []byte(`{"streets": []}`)}
					}
				}
			},
			wantErr: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testDataFS()
			tt.mutate(fsys)
			_, err := LoadReferenceData(fsys, "data")
			if err == nil {
				t.Fatal("Expected load to fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
