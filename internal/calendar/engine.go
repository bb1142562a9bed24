package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// BoundaryPolicy decides what a working-day walk yields when it leaves
// the month it was bounded to
type BoundaryPolicy int

const (
	// BoundaryStrict reports NotFound for that month
	BoundaryStrict BoundaryPolicy = iota
	// BoundaryLegacy returns the date the walk stopped at, which may lie
	// outside the month and need not be a workday
	BoundaryLegacy
	// BoundarySpill keeps walking past the month edge to the nearest workday
	BoundarySpill
)

func (p BoundaryPolicy) String() string {
	switch p {
	case BoundaryLegacy:
		return "legacy"
	case BoundarySpill:
		return "spill"
	default:
		return "strict"
	}
}

// ParseBoundaryPolicy accepts "strict", "legacy" or "spill"; empty means strict
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return BoundaryStrict, nil
	case "legacy":
		return BoundaryLegacy, nil
	case "spill":
		return BoundarySpill, nil
	default:
		return BoundaryStrict, fmt.Errorf("unknown boundary policy %q (want strict, legacy or spill)", s)
	}
}

// Status of a resolved pre/post working day
type Status int

const (
	StatusResolved Status = iota + 1
	StatusNotFound
	StatusOutOfMonth
)

func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusOutOfMonth:
		return "out_of_month"
	default:
		return "not_found"
	}
}

// WorkingDay is one side of a pre/post pair. Date is zero when NotFound.
type WorkingDay struct {
	Date   Date
	Status Status
}

// Found reports whether Date carries a value
func (w WorkingDay) Found() bool {
	return w.Status == StatusResolved || w.Status == StatusOutOfMonth
}

// PrePost holds the working days around the selected day-of-month in one month
type PrePost struct {
	Month time.Month
	Pre   WorkingDay
	Post  WorkingDay
}

// DerivedResult is everything derived for one selected date
type DerivedResult struct {
	Selected        Date
	PrePost         []PrePost
	BothMatched     []Date
	SaturdayMatched []Date
	SundayMatched   []Date
	HolidayMatched  []Date
}

// Engine derives date sets for a single reference year.
// It never mutates the holiday set and is safe for concurrent use.
type Engine struct {
	year     int
	holidays *HolidaySet
	cal      Calendar
	policy   BoundaryPolicy
	logger   *zap.Logger
}

// NewEngine creates a new Engine
func NewEngine(year int, holidays *HolidaySet, policy BoundaryPolicy, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		year:     year,
		holidays: holidays,
		cal:      NewHolidayCalendar(holidays),
		policy:   policy,
		logger:   logger,
	}
}

func (e *Engine) Year() int { return e.year }

func (e *Engine) Calendar() Calendar { return e.cal }

func (e *Engine) Holidays() *HolidaySet { return e.holidays }

func (e *Engine) Policy() BoundaryPolicy { return e.policy }

// ErrOutsideYear is returned for a selected date outside the reference year
var ErrOutsideYear = errors.New("date is outside the calendar year")

// CheckSelected rejects a selected date from another year. Query matches
// on the selected date's own weekday, so it must lie in the reference year.
func (e *Engine) CheckSelected(selected Date) error {
	if selected.Year != e.year {
		return fmt.Errorf("%s: %w %d", selected, ErrOutsideYear, e.year)
	}
	return nil
}

// Query runs every derivation for the selected date
func (e *Engine) Query(selected Date) *DerivedResult {
	day := selected.Day

	return &DerivedResult{
		Selected:        selected,
		PrePost:         e.PrePostWorkingDays(selected),
		BothMatched:     e.MatchingWeekdayDates(day, selected.Weekday()),
		SaturdayMatched: e.SaturdayMatches(day),
		SundayMatched:   e.SundayMatches(day),
		HolidayMatched:  e.HolidayDayOfMonthMatches(day),
	}
}

// PrePostWorkingDays returns one pair per month of the reference year,
// January first. Pre resolves day-1 backward, Post resolves day+1 forward.
func (e *Engine) PrePostWorkingDays(selected Date) []PrePost {
	pairs := make([]PrePost, 0, 12)
	for m := time.January; m <= time.December; m++ {
		bound := Month{Year: e.year, Month: m}
		pairs = append(pairs, PrePost{
			Month: m,
			Pre:   e.resolve(bound, selected.Day-1, -1),
			Post:  e.resolve(bound, selected.Day+1, 1),
		})
	}
	return pairs
}

func (e *Engine) resolve(bound Month, day, step int) WorkingDay {
	candidate := NewDate(bound.Year, bound.Month, day)
	exists := day >= 1 && day <= bound.Days()
	if exists && e.cal.IsWorkday(candidate) {
		return WorkingDay{Date: candidate, Status: StatusResolved}
	}

	if e.policy == BoundaryLegacy {
		reached, ok := walk(e.cal, candidate, bound, step)
		if ok {
			return WorkingDay{Date: reached, Status: StatusResolved}
		}
		return WorkingDay{Date: reached, Status: StatusOutOfMonth}
	}

	// A missing day past the edge the walk moves away from starts at that
	// edge; past the other edge there is nothing left in the month.
	start := candidate
	switch {
	case day > bound.Days() && step < 0:
		start = bound.Last()
	case day > bound.Days():
		start = bound.Last().AddDays(1)
	case day < 1 && step > 0:
		start = bound.First()
	case day < 1:
		start = bound.First().AddDays(-1)
	}

	reached, ok := walk(e.cal, start, bound, step)
	if ok {
		return WorkingDay{Date: reached, Status: StatusResolved}
	}

	if e.policy == BoundarySpill {
		if d, found := NearestWorkingDay(e.cal, reached, step); found {
			return WorkingDay{Date: d, Status: StatusOutOfMonth}
		}
	}

	e.logger.Debug("No working day inside month",
		zap.Int("year", bound.Year),
		zap.Int("month", int(bound.Month)),
		zap.Int("day", day),
		zap.Int("step", step),
		zap.Stringer("policy", e.policy))

	return WorkingDay{Status: StatusNotFound}
}

// MatchingWeekdayDates returns every date of the reference year whose
// day-of-month is day and whose weekday is weekday, in calendar order
func (e *Engine) MatchingWeekdayDates(day int, weekday time.Weekday) []Date {
	var matched []Date
	for m := time.January; m <= time.December; m++ {
		bound := Month{Year: e.year, Month: m}
		if day < 1 || day > bound.Days() {
			continue
		}
		d := Date{Year: e.year, Month: m, Day: day}
		if d.Weekday() == weekday {
			matched = append(matched, d)
		}
	}
	return matched
}

func (e *Engine) SaturdayMatches(day int) []Date {
	return e.MatchingWeekdayDates(day, time.Saturday)
}

func (e *Engine) SundayMatches(day int) []Date {
	return e.MatchingWeekdayDates(day, time.Sunday)
}

// HolidayDayOfMonthMatches filters the holiday set by day-of-month
func (e *Engine) HolidayDayOfMonthMatches(day int) []Date {
	return e.holidays.OnDay(day)
}
