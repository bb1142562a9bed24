package calendar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileHolidaySource_Text(t *testing.T) {
	path := writeFile(t, "holidays.txt", `# 2024 exchange holidays
22-Jan-2024 Special holiday
26-Jan-2024 Republic Day

25-Dec-2024
not-a-date Broken line
26-Jan-2024
01-Jan-2025 Next year
`)

	src := NewFileHolidaySource(path, zap.NewNop())
	set, err := src.LoadHolidays(context.Background(), 2024)
	if err != nil {
		t.Fatalf("LoadHolidays() error = %v", err)
	}

	if set.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (%v)", set.Len(), set.Dates())
	}
	if got := set.Name(NewDate(2024, time.January, 26)); got != "Republic Day" {
		t.Errorf("Name(26-01-2024) = %q, want Republic Day", got)
	}
	if set.Contains(NewDate(2025, time.January, 1)) {
		t.Error("holiday from another year was kept")
	}
}

func TestFileHolidaySource_JSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "array of strings",
			content: `["22-Jan-2024", "26-Jan-2024", "08-Mar-2024"]`,
			want:    3,
		},
		{
			name:    "array of objects",
			content: `[{"date": "2024-03-25", "name": "Holi"}, {"date": "25-Dec-2024"}]`,
			want:    2,
		},
		{
			name:    "mixed",
			content: `["15-Aug-2024", {"date": "02-10-2024", "name": "Gandhi Jayanti"}]`,
			want:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "holidays.json", tt.content)

			set, err := NewFileHolidaySource(path, zap.NewNop()).LoadHolidays(context.Background(), 2024)
			if err != nil {
				t.Fatalf("LoadHolidays() error = %v", err)
			}
			if set.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", set.Len(), tt.want)
			}
		})
	}
}

func TestFileHolidaySource_Errors(t *testing.T) {
	missing := NewFileHolidaySource(filepath.Join(t.TempDir(), "nope.txt"), zap.NewNop())
	if _, err := missing.LoadHolidays(context.Background(), 2024); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeFile(t, "holidays.json", `{"holidays": []}`)
	if _, err := NewFileHolidaySource(path, zap.NewNop()).LoadHolidays(context.Background(), 2024); err == nil {
		t.Error("expected error for JSON object instead of array")
	}
}

func TestRemoteHolidaySource_FetchAndCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/holidays/2024.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["25-Mar-2024", {"date": "25-Dec-2024", "name": "Christmas"}]`))
	}))
	defer srv.Close()

	src := NewRemoteHolidaySource(srv.URL+"/holidays/{year}.json", time.Hour, zap.NewNop())

	set, err := src.LoadHolidays(context.Background(), 2024)
	if err != nil {
		t.Fatalf("LoadHolidays() error = %v", err)
	}
	if set.Len() != 2 || set.Name(NewDate(2024, time.December, 25)) != "Christmas" {
		t.Errorf("unexpected set: %v", set.Holidays())
	}

	if _, err := src.LoadHolidays(context.Background(), 2024); err != nil {
		t.Fatalf("second LoadHolidays() error = %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times, want 1 (cached)", hits.Load())
	}

	src.ClearCache()
	if _, err := src.LoadHolidays(context.Background(), 2024); err != nil {
		t.Fatalf("LoadHolidays() after ClearCache error = %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("server hit %d times after ClearCache, want 2", hits.Load())
	}

	if _, err := src.LoadHolidays(context.Background(), 2023); err == nil {
		t.Error("expected error for 404")
	}
}

type stubSource struct {
	set *HolidaySet
	err error
}

func (s stubSource) LoadHolidays(context.Context, int) (*HolidaySet, error) {
	return s.set, s.err
}

func TestCompositeHolidaySource(t *testing.T) {
	primarySet := HolidaysFromDates(NewDate(2024, time.January, 26))
	fallbackSet := HolidaysFromDates(NewDate(2024, time.December, 25))
	boom := errors.New("boom")

	tests := []struct {
		name     string
		primary  stubSource
		fallback stubSource
		want     *HolidaySet
		wantErr  bool
	}{
		{"primary ok", stubSource{set: primarySet}, stubSource{set: fallbackSet}, primarySet, false},
		{"fallback used", stubSource{err: boom}, stubSource{set: fallbackSet}, fallbackSet, false},
		{"both fail", stubSource{err: boom}, stubSource{err: boom}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewCompositeHolidaySource(tt.primary, tt.fallback, zap.NewNop())
			got, err := src.LoadHolidays(context.Background(), 2024)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadHolidays() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LoadHolidays() = %v, want %v", got, tt.want)
			}
			if tt.wantErr && !errors.Is(err, boom) {
				t.Errorf("error %v does not wrap the primary failure", err)
			}
		})
	}
}
