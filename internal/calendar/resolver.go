package calendar

// maxSpillSteps caps unbounded walks so a set covering every day terminates
const maxSpillSteps = 366

// PreviousWorkingDay walks backward from `from` while the day is not a
// workday and stays inside bound.
//
// It returns (workday, true) on success. When the walk leaves bound, or
// starts outside it, it returns the first out-of-bound date reached and
// false.
func PreviousWorkingDay(cal Calendar, from Date, bound Month) (Date, bool) {
	return walk(cal, from, bound, -1)
}

// NextWorkingDay is PreviousWorkingDay walking forward
func NextWorkingDay(cal Calendar, from Date, bound Month) (Date, bool) {
	return walk(cal, from, bound, 1)
}

func walk(cal Calendar, from Date, bound Month, step int) (Date, bool) {
	d := from
	for bound.Contains(d) && !cal.IsWorkday(d) {
		d = d.AddDays(step)
	}
	return d, bound.Contains(d)
}

// NearestWorkingDay walks in the direction of step (+1 or -1) with no month
// bound. It gives up after a year of non-working days.
func NearestWorkingDay(cal Calendar, from Date, step int) (Date, bool) {
	d := from
	for i := 0; i < maxSpillSteps; i++ {
		if cal.IsWorkday(d) {
			return d, true
		}
		d = d.AddDays(step)
	}
	return Date{}, false
}
