package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/yearcal/pkg/dateutil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeSaturday
	DayTypeSunday
	DayTypeHoliday
)

// String returns the CSS class used for the day on the calendar page.
// Workdays carry no class.
func (t DayType) String() string {
	switch t {
	case DayTypeHoliday:
		return "holiday"
	case DayTypeSaturday:
		return "saturday"
	case DayTypeSunday:
		return "sunday"
	default:
		return ""
	}
}

// Date is a calendar date without a time component.
// Values built with NewDate are always normalized.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normalizes overflowing days the way time.Date does:
// NewDate(2024, time.February, 30) is 1 March 2024 and day 0 is the
// last day of the previous month.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf drops the time of day from t
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the proleptic Gregorian day of week
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n days later (earlier for negative n)
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare returns -1, 0 or +1
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// String formats the date as DD-MM-YYYY
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, int(d.Month), d.Year)
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Month is a single month of a single year, used as a walk bound
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing d
func MonthOf(d Date) Month {
	return Month{Year: d.Year, Month: d.Month}
}

func (m Month) Contains(d Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// Days returns the number of days in the month
func (m Month) Days() int {
	return dateutil.DaysIn(m.Year, m.Month)
}

func (m Month) First() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

func (m Month) Last() Date {
	return Date{Year: m.Year, Month: m.Month, Day: m.Days()}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date Date
	Type DayType
	Note string
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year     int
	Month    time.Month
	WorkDays int
	Weekends int
	Holidays int
	Days     []DayInfo
}

// Calendar classifies days for the derivation engine
type Calendar interface {
	// Classify returns exactly one DayType for the date
	Classify(date Date) DayType

	// IsWorkday reports whether the date is neither a holiday nor a weekend day
	IsWorkday(date Date) bool

	// MonthInfo returns classification for every day of the month
	MonthInfo(year int, month time.Month) *MonthInfo
}

// Holiday is a named non-working date
type Holiday struct {
	Date Date
	Name string
}

// HolidaySet is an immutable, chronologically ordered set of holidays.
// It is built once at startup and shared read-only.
type HolidaySet struct {
	byDate  map[Date]string
	ordered []Holiday
}

// NewHolidaySet deduplicates holidays by date; the first non-empty name wins
func NewHolidaySet(holidays []Holiday) *HolidaySet {
	set := &HolidaySet{
		byDate: make(map[Date]string, len(holidays)),
	}

	for _, h := range holidays {
		name, seen := set.byDate[h.Date]
		if !seen {
			set.byDate[h.Date] = h.Name
			continue
		}
		if name == "" && h.Name != "" {
			set.byDate[h.Date] = h.Name
		}
	}

	set.ordered = make([]Holiday, 0, len(set.byDate))
	for date, name := range set.byDate {
		set.ordered = append(set.ordered, Holiday{Date: date, Name: name})
	}
	sort.Slice(set.ordered, func(i, j int) bool {
		return set.ordered[i].Date.Before(set.ordered[j].Date)
	})

	return set
}

// HolidaysFromDates builds an unnamed set
func HolidaysFromDates(dates ...Date) *HolidaySet {
	holidays := make([]Holiday, 0, len(dates))
	for _, d := range dates {
		holidays = append(holidays, Holiday{Date: d})
	}
	return NewHolidaySet(holidays)
}

// Contains is safe to call on a nil set
func (s *HolidaySet) Contains(date Date) bool {
	if s == nil {
		return false
	}
	_, ok := s.byDate[date]
	return ok
}

// Name returns the holiday name, empty when unnamed or absent
func (s *HolidaySet) Name(date Date) string {
	if s == nil {
		return ""
	}
	return s.byDate[date]
}

func (s *HolidaySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ordered)
}

// Holidays returns a copy in chronological order
func (s *HolidaySet) Holidays() []Holiday {
	if s == nil {
		return nil
	}
	out := make([]Holiday, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Dates returns the holiday dates in chronological order
func (s *HolidaySet) Dates() []Date {
	if s == nil {
		return nil
	}
	out := make([]Date, 0, len(s.ordered))
	for _, h := range s.ordered {
		out = append(out, h.Date)
	}
	return out
}

// OnDay returns holidays whose day-of-month equals day, chronologically
func (s *HolidaySet) OnDay(day int) []Date {
	var out []Date
	if s == nil {
		return out
	}
	for _, h := range s.ordered {
		if h.Date.Day == day {
			out = append(out, h.Date)
		}
	}
	return out
}
