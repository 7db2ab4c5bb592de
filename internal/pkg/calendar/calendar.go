// Package calendar contains the pure date arithmetic behind date pickers:
// month grids, canonical local date strings and minimum-date comparison.
// Everything works on local calendar components, never on formatted
// timestamps, so results cannot shift across a timezone boundary.
package calendar

import (
	"fmt"
	"time"
)

// DaysInMonth возвращает число дней в месяце (month 1-12)
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// FirstWeekday возвращает день недели первого числа месяца (Sunday = 0)
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday())
}

// FormatLocalDate строит каноническую строку "YYYY-MM-DD" из локальных
// компонент даты.
func FormatLocalDate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// ParseLocalDate разбирает каноническую строку "YYYY-MM-DD" в локальную
// полночь этой даты.
func ParseLocalDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// IsSameLocalDate reports whether a and b fall on the same local calendar day.
func IsSameLocalDate(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// IsBeforeMinDate reports whether the candidate's local calendar date is
// strictly earlier than the minimum's. Time of day is ignored.
func IsBeforeMinDate(candidate, min time.Time) bool {
	c := truncateToLocalDate(candidate)
	m := truncateToLocalDate(min)
	return c.Before(m)
}

func truncateToLocalDate(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Cell - одна ячейка календарной сетки месяца
type Cell struct {
	// Day is 0 for the leading blanks before the first weekday.
	Day      int    `json:"day"`
	Date     string `json:"date,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// MonthGrid строит сетку месяца: пустые ячейки до первого дня недели,
// затем все дни месяца. minDate, when non-nil, marks earlier days disabled.
func MonthGrid(year int, month time.Month, minDate *time.Time) []Cell {
	first := FirstWeekday(year, month)
	total := DaysInMonth(year, month)

	cells := make([]Cell, 0, first+total)
	for i := 0; i < first; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= total; day++ {
		cell := Cell{
			Day:  day,
			Date: FormatLocalDate(year, month, day),
		}
		if minDate != nil {
			cell.Disabled = IsBeforeMinDate(time.Date(year, month, day, 0, 0, 0, 0, time.Local), *minDate)
		}
		cells = append(cells, cell)
	}
	return cells
}
