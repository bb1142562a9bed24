package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/username/yearcal/internal/calendar"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("page.html.tmpl").
		Funcs(sprig.FuncMap()).
		ParseFS(templateFS, "templates/page.html.tmpl"),
)

// PageDay is one cell of a month grid
type PageDay struct {
	Day      int
	Class    string
	DataDate string
	Title    string
	Selected bool
}

// PageMonth is one month grid; Offset is the number of empty leading
// cells (Sunday first)
type PageMonth struct {
	Name   string
	Year   int
	Offset int
	Days   []PageDay
}

// Page is the template model
type Page struct {
	Year     int
	Months   []PageMonth
	Selected string // YYYY-MM-DD for the date input
	Result   *Result
}

// BuildPage lays out the twelve month grids of year
func BuildPage(cal calendar.Calendar, year int, result *Result, selected *calendar.Date) *Page {
	page := &Page{
		Year:   year,
		Months: make([]PageMonth, 0, 12),
		Result: result,
	}
	if selected != nil {
		page.Selected = selected.Time().Format("2006-01-02")
	}

	for m := time.January; m <= time.December; m++ {
		info := cal.MonthInfo(year, m)
		month := PageMonth{
			Name:   m.String(),
			Year:   year,
			Offset: int(calendar.NewDate(year, m, 1).Weekday()),
			Days:   make([]PageDay, 0, len(info.Days)),
		}
		for _, day := range info.Days {
			month.Days = append(month.Days, PageDay{
				Day:      day.Date.Day,
				Class:    day.Type.String(),
				DataDate: FormatDate(day.Date),
				Title:    day.Note,
				Selected: selected != nil && day.Date == *selected,
			})
		}
		page.Months = append(page.Months, month)
	}

	return page
}

// RenderPage writes the calendar page
func RenderPage(w io.Writer, page *Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
