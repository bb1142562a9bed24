package calendar

import "time"

// HolidayCalendar implements Calendar from a HolidaySet and the
// Saturday/Sunday weekend rule
type HolidayCalendar struct {
	holidays *HolidaySet
}

// NewHolidayCalendar creates a new HolidayCalendar. A nil set means no holidays.
func NewHolidayCalendar(holidays *HolidaySet) *HolidayCalendar {
	return &HolidayCalendar{holidays: holidays}
}

// Classify applies Holiday > Saturday > Sunday > Workday
func (c *HolidayCalendar) Classify(date Date) DayType {
	if c.holidays.Contains(date) {
		return DayTypeHoliday
	}

	switch date.Weekday() {
	case time.Saturday:
		return DayTypeSaturday
	case time.Sunday:
		return DayTypeSunday
	default:
		return DayTypeWorkday
	}
}

// IsWorkday checks if the given date is a working day
func (c *HolidayCalendar) IsWorkday(date Date) bool {
	return c.Classify(date) == DayTypeWorkday
}

// MonthInfo returns calendar info for the entire month
func (c *HolidayCalendar) MonthInfo(year int, month time.Month) *MonthInfo {
	bound := Month{Year: year, Month: month}
	info := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, bound.Days()),
	}

	for d := bound.First(); bound.Contains(d); d = d.AddDays(1) {
		dayType := c.Classify(d)
		switch dayType {
		case DayTypeWorkday:
			info.WorkDays++
		case DayTypeHoliday:
			info.Holidays++
		default:
			info.Weekends++
		}

		info.Days = append(info.Days, DayInfo{
			Date: d,
			Type: dayType,
			Note: c.holidays.Name(d),
		})
	}

	return info
}
