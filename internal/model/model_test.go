package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskCard(t *testing.T) {
	assert.Equal(t, "****5678", MaskCard("1234567812345678"))
	assert.Equal(t, "****7197", MaskCard("*7197"))
	assert.Equal(t, "", MaskCard(""))
}

func TestMaskCard_ShortValue(t *testing.T) {
	// Fewer than four characters masks whatever is there.
	assert.Equal(t, "****12", MaskCard("12"))
}

func TestMaskCard_Length(t *testing.T) {
	// Masked output of any value of length >= 4 is always 8 runes.
	for _, raw := range []string{"1234", "1234567812345678", "*7197", "abcd"} {
		assert.Len(t, []rune(MaskCard(raw)), 8, "masking %q", raw)
	}
}

func TestCalculateCashback(t *testing.T) {
	assert.True(t, decimal.NewFromInt(10).Equal(CalculateCashback(decimal.NewFromInt(1000))))
	assert.True(t, decimal.Zero.Equal(CalculateCashback(decimal.Zero)))
	assert.True(t, decimal.Zero.Equal(CalculateCashback(decimal.NewFromInt(-500))))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("31.12.2021 16:44:00")
	require.NoError(t, err)
	assert.Equal(t, 2021, d.Year())
	assert.Equal(t, 12, int(d.Month()))
	assert.Equal(t, 31, d.Day())
	assert.Equal(t, 16, d.Hour())

	// Day-first when the order is ambiguous.
	d, err = ParseDate("02.01.2023")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Day())
	assert.Equal(t, 1, int(d.Month()))

	d, err = ParseDate("2023-01-02")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Day())

	_, err = ParseDate("not a date")
	assert.Error(t, err)
}

func TestTransaction_IsDebit(t *testing.T) {
	debit := Transaction{Amount: decimal.NullDecimal{Decimal: decimal.NewFromInt(-100), Valid: true}}
	credit := Transaction{Amount: decimal.NullDecimal{Decimal: decimal.NewFromInt(100), Valid: true}}
	undefined := Transaction{}

	assert.True(t, debit.IsDebit())
	assert.False(t, credit.IsDebit())
	assert.False(t, undefined.IsDebit())
}

func TestTransaction_AbsAmount(t *testing.T) {
	debit := Transaction{Amount: decimal.NullDecimal{Decimal: decimal.NewFromInt(-100), Valid: true}}
	assert.True(t, decimal.NewFromInt(100).Equal(debit.AbsAmount()))
	assert.True(t, decimal.Zero.Equal(Transaction{}.AbsAmount()))
}
