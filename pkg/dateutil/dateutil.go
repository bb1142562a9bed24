package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted by ParseDate, tried in order
var dateLayouts = []string{
	"02-Jan-2006",
	"2-Jan-2006",
	"02-01-2006",
	"2006-01-02",
	"02.01.2006",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses date string in various formats.
// Holiday lists use DD-Mon-YYYY, stock records DD-MM-YYYY and
// HTML date inputs YYYY-MM-DD.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// FormatDMY formats date as DD-MM-YYYY
func FormatDMY(date time.Time) string {
	return date.Format("02-01-2006")
}

// WeekdayAbbrev returns the English three-letter weekday name ("Sat")
func WeekdayAbbrev(weekday time.Weekday) string {
	return weekday.String()[:3]
}

// ParseWeekday accepts full or abbreviated English weekday names, any case
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 3 {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			name := strings.ToLower(wd.String())
			if strings.HasPrefix(name, s) {
				return wd, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
