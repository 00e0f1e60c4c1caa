package reports

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/model"
)

var bonusCashbackRate = decimal.NewFromFloat(0.05)

// CashbackCategories estimates the bonus-cashback yield per category for
// one exact calendar month: 5% of the absolute debit total. Categories with
// no debits in the month are absent from the result. Invalid year/month
// input degrades to an empty map; this report never fails.
func CashbackCategories(txns []model.Transaction, year int, month int) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	if year <= 0 || month < 1 || month > 12 {
		return out
	}

	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !t.IsDebit() || t.Category == "" || !inMonth(t, year, time.Month(month)) {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.AbsAmount())
	}

	for category, total := range totals {
		out[category] = total.Mul(bonusCashbackRate)
	}
	return out
}

// InvestmentBank sums the round-up savings for one month: for every debit
// in the month, the amount needed to round its absolute value up to the
// next multiple of limit (zero when already an exact multiple), capped at
// limit. A bad month string or non-positive limit degrades to zero; this
// report never fails.
func InvestmentBank(month string, txns []model.Transaction, limit decimal.Decimal) decimal.Decimal {
	anchor, err := time.Parse("2006-01", month)
	if err != nil || !limit.IsPositive() {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, t := range txns {
		if !t.IsDebit() || !inMonth(t, anchor.Year(), anchor.Month()) {
			continue
		}
		rem := t.AbsAmount().Mod(limit)
		if rem.IsZero() {
			continue
		}
		roundUp := limit.Sub(rem)
		if roundUp.GreaterThan(limit) {
			roundUp = limit
		}
		total = total.Add(roundUp)
	}
	return total
}

// SimpleSearch returns the records whose description or category contains
// the query, case-insensitively, in original order. Missing fields are
// treated as empty strings; no match is an empty result, never an error.
func SimpleSearch(query string, txns []model.Transaction) []model.Transaction {
	q := strings.ToLower(query)
	var out []model.Transaction
	for _, t := range txns {
		if strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(t.Category), q) {
			out = append(out, t)
		}
	}
	return out
}
