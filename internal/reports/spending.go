package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// CategorySpendRow is one (month, category) aggregate of absolute debit
// spend.
type CategorySpendRow struct {
	Month    string          `json:"month"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// SpendingByCategory sums absolute debit spend for one category over the
// trailing three calendar months ending at anchor, grouped by calendar
// month. The category match is case-insensitive and exact. Sources without
// a category column, or windows with no matching debits, yield an empty
// result.
func SpendingByCategory(txns []model.Transaction, category string, anchor time.Time) []CategorySpendRow {
	want := strings.ToLower(category)

	type key struct{ month, category string }
	totals := make(map[key]decimal.Decimal)
	for _, t := range trailingDebits(txns, anchor) {
		if t.Category == "" || strings.ToLower(t.Category) != want {
			continue
		}
		k := key{month: t.Date.Format("2006-01"), category: t.Category}
		totals[k] = totals[k].Add(t.AbsAmount())
	}

	rows := make([]CategorySpendRow, 0, len(totals))
	for k, total := range totals {
		rows = append(rows, CategorySpendRow{Month: k.month, Category: k.category, Amount: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// WeekdaySpendRow is the mean absolute debit for one day of the week.
type WeekdaySpendRow struct {
	Weekday      string          `json:"weekday"`
	AverageSpend decimal.Decimal `json:"average_spend"`
}

// weekdayOrder fixes report ordering at Monday through Sunday.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// SpendingByWeekday averages absolute debit spend per day of the week over
// the trailing three calendar months ending at anchor, rounded to two
// decimal places. Rows appear in Monday-to-Sunday order; weekdays with no
// debits produce no row.
func SpendingByWeekday(txns []model.Transaction, anchor time.Time) []WeekdaySpendRow {
	sums := make(map[time.Weekday]decimal.Decimal)
	counts := make(map[time.Weekday]int64)
	for _, t := range trailingDebits(txns, anchor) {
		wd := t.Date.Weekday()
		sums[wd] = sums[wd].Add(t.AbsAmount())
		counts[wd]++
	}

	var rows []WeekdaySpendRow
	for _, wd := range weekdayOrder {
		if counts[wd] == 0 {
			continue
		}
		mean := sums[wd].Div(decimal.NewFromInt(counts[wd])).Round(2)
		rows = append(rows, WeekdaySpendRow{Weekday: wd.String(), AverageSpend: mean})
	}
	return rows
}

// Day-type labels for the workday/weekend split.
const (
	DayTypeWorkday = "workday"
	DayTypeWeekend = "weekend"
)

// DayTypeSpendRow is the mean absolute debit for workdays or weekends.
type DayTypeSpendRow struct {
	DayType      string          `json:"day_type"`
	AverageSpend decimal.Decimal `json:"average_spend"`
}

// SpendingByWorkday splits debit spend in the trailing three calendar
// months into workdays and weekends (Saturday and Sunday) and reports the
// mean absolute debit per class, rounded to two decimal places. At most two
// rows, workday first.
func SpendingByWorkday(txns []model.Transaction, anchor time.Time) []DayTypeSpendRow {
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int64)
	for _, t := range trailingDebits(txns, anchor) {
		class := DayTypeWorkday
		if wd := t.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			class = DayTypeWeekend
		}
		sums[class] = sums[class].Add(t.AbsAmount())
		counts[class]++
	}

	var rows []DayTypeSpendRow
	for _, class := range []string{DayTypeWorkday, DayTypeWeekend} {
		if counts[class] == 0 {
			continue
		}
		mean := sums[class].Div(decimal.NewFromInt(counts[class])).Round(2)
		rows = append(rows, DayTypeSpendRow{DayType: class, AverageSpend: mean})
	}
	return rows
}
