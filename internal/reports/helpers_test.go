package reports

import (
	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// tx builds a minimal record for report tests. Empty date or amount leaves
// the field undefined.
func tx(date, amount string) model.Transaction {
	var t model.Transaction
	if date != "" {
		if d, err := model.ParseDate(date); err == nil {
			t.Date = d
			t.DateValid = true
		}
	}
	if amount != "" {
		t.Amount = decimal.NullDecimal{Decimal: decimal.RequireFromString(amount), Valid: true}
	}
	return t
}

func txCat(date, amount, category string) model.Transaction {
	t := tx(date, amount)
	t.Category = category
	return t
}

func txCard(date, amount, card string) model.Transaction {
	t := tx(date, amount)
	t.CardLastDigits = card
	return t
}
