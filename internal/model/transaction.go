package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the canonical record every report consumes, independent of
// which statement format it came from. Only fields whose source column was
// present are populated; monetary fields use decimal.NullDecimal so a value
// that failed coercion stays distinguishable from zero.
//
// Records are immutable once built by the importer: reports derive new
// structures and never write back.
type Transaction struct {
	Date            time.Time           `json:"date"`
	DateValid       bool                `json:"-"`
	Amount          decimal.NullDecimal `json:"amount"`
	Currency        string              `json:"currency,omitempty"`
	CardLastDigits  string              `json:"card_last_digits,omitempty"`
	Category        string              `json:"category,omitempty"`
	Description     string              `json:"description,omitempty"`
	MCC             string              `json:"mcc,omitempty"`
	Cashback        decimal.NullDecimal `json:"cashback,omitempty"`
	Bonuses         decimal.NullDecimal `json:"bonuses,omitempty"`
	Rounding        decimal.NullDecimal `json:"rounding,omitempty"`
	RoundedAmount   decimal.NullDecimal `json:"rounded_amount,omitempty"`
	Status          string              `json:"status,omitempty"`
	PaymentDate     time.Time           `json:"payment_date,omitzero"`
	PaymentAmount   decimal.NullDecimal `json:"payment_amount,omitempty"`
	PaymentCurrency string              `json:"payment_currency,omitempty"`
}

// IsDebit reports whether the record is a spend (negative amount).
// Records whose amount failed coercion are neither debit nor credit.
func (t Transaction) IsDebit() bool {
	return t.Amount.Valid && t.Amount.Decimal.IsNegative()
}

// AbsAmount returns the absolute amount, or zero when the amount is undefined.
func (t Transaction) AbsAmount() decimal.Decimal {
	if !t.Amount.Valid {
		return decimal.Zero
	}
	return t.Amount.Decimal.Abs()
}
