package stocks

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/username/yearcal/internal/calendar"
)

const sampleFile = `{
    "Dates": [
        {"PostDate": "01-01-2024", "StockNames": ["NESTLEIND", "ITC"], "PostDateNext": "02-01-2024"},
        {"PostDate": "14-08-2024", "StockNames": ["IOC", "ONGC"], "PostDateNext": "16-08-2024"}
    ]
}`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stocks.json")
	if err := os.WriteFile(path, []byte(sampleFile), 0o644); err != nil {
		t.Fatal(err)
	}

	idx, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}

	tests := []struct {
		name string
		date calendar.Date
		want Info
	}{
		{
			name: "first record",
			date: calendar.NewDate(2024, time.January, 1),
			want: Info{StockNames: "NESTLEIND, ITC", NextPostDate: "02-01-2024"},
		},
		{
			name: "second record",
			date: calendar.NewDate(2024, time.August, 14),
			want: Info{StockNames: "IOC, ONGC", NextPostDate: "16-08-2024"},
		},
		{
			name: "miss",
			date: calendar.NewDate(2024, time.August, 15),
			want: Info{StockNames: NotAvailable, NextPostDate: NotAvailable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.Describe(tt.date); got != tt.want {
				t.Errorf("Describe(%v) = %+v, want %+v", tt.date, got, tt.want)
			}
		})
	}
}

func TestNewIndex_InvalidPostDate(t *testing.T) {
	_, err := NewIndex([]Record{{PostDate: "2024/01/01"}})
	if err == nil {
		t.Error("expected error for invalid PostDate")
	}
}

func TestIndex_NilAndEmpty(t *testing.T) {
	var idx *Index
	want := Info{StockNames: NotAvailable, NextPostDate: NotAvailable}

	if got := idx.Describe(calendar.NewDate(2024, time.January, 1)); got != want {
		t.Errorf("nil Describe() = %+v, want %+v", got, want)
	}

	empty, err := NewIndex([]Record{{PostDate: "05-02-2024"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := empty.Describe(calendar.NewDate(2024, time.February, 5)); got != want {
		t.Errorf("record without names Describe() = %+v, want %+v", got, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte(`{"Dates": "nope"}`), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed file")
	}
}
