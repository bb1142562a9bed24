package calendar

import (
	"testing"
	"time"
)

// closedCalendar has no working days at all
type closedCalendar struct{}

func (closedCalendar) Classify(Date) DayType { return DayTypeHoliday }
func (closedCalendar) IsWorkday(Date) bool { return false }
func (closedCalendar) MonthInfo(int, time.Month) *MonthInfo { return nil }

func TestWorkingDay_ZeroStepsOnWorkday(t *testing.T) {
	cal := NewHolidayCalendar(holidays2024())

	for d := NewDate(2024, time.January, 1); d.Year == 2024; d = d.AddDays(1) {
		if !cal.IsWorkday(d) {
			continue
		}

		prev, ok := PreviousWorkingDay(cal, d, MonthOf(d))
		if !ok || prev != d {
			t.Fatalf("PreviousWorkingDay(%v) = %v, %v; want same date", d, prev, ok)
		}
		next, ok := NextWorkingDay(cal, d, MonthOf(d))
		if !ok || next != d {
			t.Fatalf("NextWorkingDay(%v) = %v, %v; want same date", d, next, ok)
		}
	}
}

func TestPreviousWorkingDay(t *testing.T) {
	cal := NewHolidayCalendar(holidays2024())

	tests := []struct {
		name   string
		from   Date
		bound  Month
		want   Date
		wantOK bool
	}{
		{
			name:   "Sunday walks back over Saturday",
			from:   NewDate(2024, time.June, 16),
			bound:  Month{2024, time.June},
			want:   NewDate(2024, time.June, 14),
			wantOK: true,
		},
		{
			name:   "holiday after weekend",
			from:   NewDate(2024, time.January, 22),
			bound:  Month{2024, time.January},
			want:   NewDate(2024, time.January, 19),
			wantOK: true,
		},
		{
			name:   "walk leaves the month",
			from:   NewDate(2024, time.September, 1),
			bound:  Month{2024, time.September},
			want:   NewDate(2024, time.August, 31),
			wantOK: false,
		},
		{
			name:   "start outside the month",
			from:   NewDate(2024, time.March, 1),
			bound:  Month{2024, time.February},
			want:   NewDate(2024, time.March, 1),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PreviousWorkingDay(cal, tt.from, tt.bound)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("PreviousWorkingDay(%v) = %v, %v; want %v, %v", tt.from, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNextWorkingDay(t *testing.T) {
	cal := NewHolidayCalendar(holidays2024())

	tests := []struct {
		name   string
		from   Date
		bound  Month
		want   Date
		wantOK bool
	}{
		{
			name:   "holiday Monday",
			from:   NewDate(2024, time.June, 17),
			bound:  Month{2024, time.June},
			want:   NewDate(2024, time.June, 18),
			wantOK: true,
		},
		{
			name:   "Saturday walks forward to Monday",
			from:   NewDate(2024, time.February, 3),
			bound:  Month{2024, time.February},
			want:   NewDate(2024, time.February, 5),
			wantOK: true,
		},
		{
			name:   "month ends on a weekend",
			from:   NewDate(2024, time.March, 30),
			bound:  Month{2024, time.March},
			want:   NewDate(2024, time.April, 1),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextWorkingDay(cal, tt.from, tt.bound)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NextWorkingDay(%v) = %v, %v; want %v, %v", tt.from, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNearestWorkingDay(t *testing.T) {
	cal := NewHolidayCalendar(holidays2024())

	got, ok := NearestWorkingDay(cal, NewDate(2023, time.December, 31), -1)
	if !ok || got != NewDate(2023, time.December, 29) {
		t.Errorf("NearestWorkingDay(31-12-2023, -1) = %v, %v; want 29-12-2023", got, ok)
	}

	if _, ok := NearestWorkingDay(closedCalendar{}, NewDate(2024, time.January, 1), 1); ok {
		t.Error("NearestWorkingDay on a calendar without workdays must give up")
	}
}
