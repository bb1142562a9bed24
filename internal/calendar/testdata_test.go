package calendar

import "time"

// holidays2024 is the holiday list the calendar page shipped with
func holidays2024() *HolidaySet {
	return HolidaysFromDates(
		NewDate(2024, time.January, 22),
		NewDate(2024, time.January, 26),
		NewDate(2024, time.March, 8),
		NewDate(2024, time.March, 25),
		NewDate(2024, time.March, 29),
		NewDate(2024, time.April, 11),
		NewDate(2024, time.April, 17),
		NewDate(2024, time.May, 1),
		NewDate(2024, time.May, 20),
		NewDate(2024, time.June, 17),
		NewDate(2024, time.July, 17),
		NewDate(2024, time.August, 15),
		NewDate(2024, time.October, 2),
		NewDate(2024, time.November, 1),
		NewDate(2024, time.November, 15),
		NewDate(2024, time.December, 25),
	)
}
