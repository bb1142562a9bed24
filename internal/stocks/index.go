package stocks

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/username/yearcal/internal/calendar"
	"github.com/username/yearcal/pkg/dateutil"
)

// NotAvailable is shown for dates without a stock event
const NotAvailable = "N/A"

// Record is one entry of the stock event file
type Record struct {
	PostDate     string   `json:"PostDate"`     // DD-MM-YYYY
	StockNames   []string `json:"StockNames"`
	PostDateNext string   `json:"PostDateNext"` // DD-MM-YYYY
}

// File is the on-disk layout: {"Dates": [...]}
type File struct {
	Dates []Record `json:"Dates"`
}

// Event is what the index holds for a post date
type Event struct {
	StockNames   []string
	NextPostDate string
}

// Info is the display form of an Event
type Info struct {
	StockNames   string `json:"stock_names"`
	NextPostDate string `json:"next_post_date"`
}

// Index maps post dates to stock events. Read-only after NewIndex.
type Index struct {
	events map[calendar.Date]Event
}

// NewIndex builds the index; a later record for the same date replaces an earlier one
func NewIndex(records []Record) (*Index, error) {
	idx := &Index{events: make(map[calendar.Date]Event, len(records))}

	for i, rec := range records {
		t, err := dateutil.ParseDate(rec.PostDate)
		if err != nil {
			return nil, fmt.Errorf("record #%d: invalid PostDate: %w", i, err)
		}

		names := make([]string, len(rec.StockNames))
		copy(names, rec.StockNames)

		idx.events[calendar.DateOf(t)] = Event{
			StockNames:   names,
			NextPostDate: strings.TrimSpace(rec.PostDateNext),
		}
	}

	return idx, nil
}

// Load reads and indexes a stock event file
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stock file: %w", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse stock file: %w", err)
	}

	return NewIndex(file.Dates)
}

// Len is safe on a nil index
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.events)
}

// Lookup returns the event posted on date
func (idx *Index) Lookup(date calendar.Date) (Event, bool) {
	if idx == nil {
		return Event{}, false
	}
	ev, ok := idx.events[date]
	return ev, ok
}

// Describe never fails; misses render as NotAvailable
func (idx *Index) Describe(date calendar.Date) Info {
	ev, ok := idx.Lookup(date)
	if !ok {
		return Info{StockNames: NotAvailable, NextPostDate: NotAvailable}
	}

	info := Info{
		StockNames:   strings.Join(ev.StockNames, ", "),
		NextPostDate: ev.NextPostDate,
	}
	if info.StockNames == "" {
		info.StockNames = NotAvailable
	}
	if info.NextPostDate == "" {
		info.NextPostDate = NotAvailable
	}
	return info
}
