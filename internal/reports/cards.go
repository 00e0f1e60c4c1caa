package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// CardSummary is the per-card spend line on the home report. LastDigits is
// always masked; raw card values never appear in output.
type CardSummary struct {
	LastDigits string          `json:"last_digits"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Cashback   decimal.Decimal `json:"cashback"`
}

// CardSummaries groups debits by card and totals the spend per card, in
// first-encountered order. Records without a card value are skipped.
// TotalSpent is always non-negative; Cashback is 1% of it, rounded to two
// decimal places.
func CardSummaries(txns []model.Transaction) []CardSummary {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, t := range txns {
		if !t.IsDebit() || t.CardLastDigits == "" {
			continue
		}
		if _, seen := totals[t.CardLastDigits]; !seen {
			order = append(order, t.CardLastDigits)
		}
		totals[t.CardLastDigits] = totals[t.CardLastDigits].Add(t.AbsAmount())
	}

	summaries := make([]CardSummary, 0, len(order))
	for _, card := range order {
		spent := totals[card].Round(2)
		summaries = append(summaries, CardSummary{
			LastDigits: model.MaskCard(card),
			TotalSpent: spent,
			Cashback:   model.CalculateCashback(spent).Round(2),
		})
	}
	return summaries
}

// TopTransaction is one row of the top-by-amount report.
type TopTransaction struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// TopTransactions returns the n records with the largest signed amount, so
// large credits rank above every debit. Ties keep original row order.
// Records whose amount failed coercion are skipped.
func TopTransactions(txns []model.Transaction, n int) []TopTransaction {
	if n <= 0 {
		return nil
	}

	valid := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Amount.Valid {
			valid = append(valid, t)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Amount.Decimal.GreaterThan(valid[j].Amount.Decimal)
	})
	if len(valid) > n {
		valid = valid[:n]
	}

	top := make([]TopTransaction, 0, len(valid))
	for _, t := range valid {
		row := TopTransaction{
			Amount:      t.Amount.Decimal,
			Category:    t.Category,
			Description: t.Description,
		}
		if t.DateValid {
			row.Date = t.Date.Format(time.DateOnly)
		}
		top = append(top, row)
	}
	return top
}
