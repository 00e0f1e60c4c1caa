package model

import (
	"github.com/shopspring/decimal"
)

var cashbackRate = decimal.NewFromFloat(0.01)

// MaskCard renders a card identifier for display: a fixed four-asterisk
// prefix followed by the last four characters of the raw value. An empty
// identifier masks to an empty string. Raw card values never leave the
// process unmasked.
func MaskCard(raw string) string {
	if raw == "" {
		return ""
	}
	r := []rune(raw)
	if len(r) > 4 {
		r = r[len(r)-4:]
	}
	return "****" + string(r)
}

// CalculateCashback returns the standard 1% cashback for a spend total.
// Negative amounts earn nothing.
func CalculateCashback(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount.Mul(cashbackRate)
}
