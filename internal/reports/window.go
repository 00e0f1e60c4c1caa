package reports

import (
	"time"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// addMonths shifts a date by calendar months, clamping the day to the end
// of the target month instead of letting it spill over (Mar 31 minus one
// month is Feb 28/29, not Mar 2/3).
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	shifted := first.AddDate(0, months, 0)
	if last := daysIn(shifted.Year(), shifted.Month()); d > last {
		d = last
	}
	return time.Date(shifted.Year(), shifted.Month(), d,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last day of the month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	y, m, _ := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	last := time.Date(y, m, daysIn(y, m), 0, 0, 0, 0, t.Location())
	return first, last
}

// trailingDebits returns the debits in the rolling window
// [anchor - 3 calendar months, anchor], in source order.
func trailingDebits(txns []model.Transaction, anchor time.Time) []model.Transaction {
	start := addMonths(anchor, -3)
	var out []model.Transaction
	for _, t := range FilterByDate(txns, start, anchor) {
		if t.IsDebit() {
			out = append(out, t)
		}
	}
	return out
}

// inMonth reports whether the record's date is valid and falls inside the
// given calendar month.
func inMonth(t model.Transaction, year int, month time.Month) bool {
	return t.DateValid && t.Date.Year() == year && t.Date.Month() == month
}
