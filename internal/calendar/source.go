package calendar

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/username/yearcal/pkg/dateutil"
)

// HolidaySource loads the holiday set for a reference year
type HolidaySource interface {
	LoadHolidays(ctx context.Context, year int) (*HolidaySet, error)
}

// holidayEntry is the object form of a JSON holiday record
type holidayEntry struct {
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

// decodeHolidayJSON accepts either ["22-Jan-2024", ...] or
// [{"date": "22-Jan-2024", "name": "..."}, ...]
func decodeHolidayJSON(data []byte) ([]holidayEntry, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("holiday JSON must be an array: %w", err)
	}

	entries := make([]holidayEntry, 0, len(raw))
	for i, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			entries = append(entries, holidayEntry{Date: s})
			continue
		}

		var entry holidayEntry
		if err := json.Unmarshal(item, &entry); err != nil {
			return nil, fmt.Errorf("holiday #%d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// buildHolidaySet parses entries, skipping unparseable dates and dates
// outside year
func buildHolidaySet(entries []holidayEntry, year int, logger *zap.Logger) *HolidaySet {
	holidays := make([]Holiday, 0, len(entries))
	for _, entry := range entries {
		t, err := dateutil.ParseDate(entry.Date)
		if err != nil {
			logger.Warn("Failed to parse holiday date",
				zap.String("date", entry.Date),
				zap.Error(err))
			continue
		}

		date := DateOf(t)
		if date.Year != year {
			logger.Debug("Skipping holiday outside reference year",
				zap.Stringer("date", date),
				zap.Int("year", year))
			continue
		}

		holidays = append(holidays, Holiday{Date: date, Name: strings.TrimSpace(entry.Name)})
	}

	return NewHolidaySet(holidays)
}
