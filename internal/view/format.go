package view

import (
	"github.com/username/yearcal/internal/calendar"
	"github.com/username/yearcal/internal/stocks"
	"github.com/username/yearcal/pkg/dateutil"
)

// outOfMonthMark flags a working day that lies outside its month
const outOfMonthMark = "*"

// FormatDate formats as DD-MM-YYYY
func FormatDate(d calendar.Date) string {
	return dateutil.FormatDMY(d.Time())
}

// FormatDateWeekday formats as "DD-MM-YYYY Tue"
func FormatDateWeekday(d calendar.Date) string {
	return FormatDate(d) + " " + dateutil.WeekdayAbbrev(d.Weekday())
}

// FormatWorkingDay renders NotFound as N/A and marks out-of-month dates
func FormatWorkingDay(w calendar.WorkingDay) string {
	switch w.Status {
	case calendar.StatusResolved:
		return FormatDate(w.Date)
	case calendar.StatusOutOfMonth:
		return FormatDate(w.Date) + outOfMonthMark
	default:
		return stocks.NotAvailable
	}
}

// PrePost is one display row of the pre/post table
type PrePost struct {
	Month string `json:"month"`
	Pre   string `json:"pre"`
	Post  string `json:"post"`
}

// Result is a DerivedResult rendered to display strings
type Result struct {
	Date            string      `json:"date"`
	Weekday         string      `json:"weekday"`
	Policy          string      `json:"policy"`
	PrePost         []PrePost   `json:"pre_post"`
	Stock           stocks.Info `json:"stock"`
	BothMatched     []string    `json:"both_matched"`
	SaturdayMatched []string    `json:"saturday_matched"`
	SundayMatched   []string    `json:"sunday_matched"`
	HolidayMatched  []string    `json:"holiday_matched"`
}

// Present formats a DerivedResult for display
func Present(result *calendar.DerivedResult, policy calendar.BoundaryPolicy, stock stocks.Info) *Result {
	out := &Result{
		Date:            FormatDate(result.Selected),
		Weekday:         dateutil.WeekdayAbbrev(result.Selected.Weekday()),
		Policy:          policy.String(),
		PrePost:         make([]PrePost, 0, len(result.PrePost)),
		Stock:           stock,
		BothMatched:     formatDates(result.BothMatched, FormatDateWeekday),
		SaturdayMatched: formatDates(result.SaturdayMatched, FormatDate),
		SundayMatched:   formatDates(result.SundayMatched, FormatDate),
		HolidayMatched:  formatDates(result.HolidayMatched, FormatDateWeekday),
	}

	for _, pair := range result.PrePost {
		out.PrePost = append(out.PrePost, PrePost{
			Month: pair.Month.String(),
			Pre:   FormatWorkingDay(pair.Pre),
			Post:  FormatWorkingDay(pair.Post),
		})
	}

	return out
}

func formatDates(dates []calendar.Date, format func(calendar.Date) string) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, format(d))
	}
	return out
}
