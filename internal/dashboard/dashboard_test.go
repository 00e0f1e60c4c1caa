package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens-dev/spendlens/internal/market"
	"github.com/spendlens-dev/spendlens/internal/model"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{17, "Good afternoon"},
		{18, "Good evening"},
		{22, "Good evening"},
		{23, "Good night"},
		{0, "Good night"},
		{4, "Good night"},
	}
	for _, tt := range tests {
		at := time.Date(2023, 1, 15, tt.hour, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, Greeting(at), "hour %d", tt.hour)
	}
}

func txn(date string, amount int64, card string) model.Transaction {
	d, _ := model.ParseDate(date)
	return model.Transaction{
		Date:           d,
		DateValid:      true,
		Amount:         decimal.NullDecimal{Decimal: decimal.NewFromInt(amount), Valid: true},
		CardLastDigits: card,
	}
}

func TestBuild(t *testing.T) {
	txns := []model.Transaction{
		txn("05.01.2023", -1000, "*7197"),
		txn("10.01.2023", -500, "*7197"),
		txn("20.01.2023", -900, "*7197"),  // after the anchor
		txn("15.12.2022", -9000, "*7197"), // previous month
	}
	rates := []market.Quote{{Symbol: "USD", Value: decimal.NewFromFloat(75.5)}}
	stocks := []market.Quote{{Symbol: "AAPL", Value: decimal.NewFromFloat(150.12)}}

	at := time.Date(2023, 1, 15, 9, 0, 0, 0, time.UTC)
	doc := Build(txns, at, 5, rates, stocks)

	assert.Equal(t, "Good morning", doc.Greeting)
	require.Len(t, doc.Cards, 1)
	assert.Equal(t, "****7197", doc.Cards[0].LastDigits)
	assert.Equal(t, "1500.00", doc.Cards[0].TotalSpent.StringFixed(2))
	assert.Equal(t, "15.00", doc.Cards[0].Cashback.StringFixed(2))

	// Only the two month-to-date records qualify for the top list.
	assert.Len(t, doc.TopTransactions, 2)

	assert.Equal(t, rates, doc.CurrencyRates)
	assert.Equal(t, stocks, doc.StockPrices)
}

func TestBuild_TopCappedAtN(t *testing.T) {
	var txns []model.Transaction
	for day := 1; day <= 10; day++ {
		txns = append(txns, txn(time.Date(2023, 1, day, 0, 0, 0, 0, time.UTC).Format("02.01.2006"), -10, "*1"))
	}
	at := time.Date(2023, 1, 31, 12, 0, 0, 0, time.UTC)
	doc := Build(txns, at, 5, nil, nil)
	assert.Len(t, doc.TopTransactions, 5)
}

func TestBuild_EmptyInput(t *testing.T) {
	doc := Build(nil, time.Date(2023, 1, 15, 13, 0, 0, 0, time.UTC), 5, nil, nil)
	assert.Equal(t, "Good afternoon", doc.Greeting)
	assert.Empty(t, doc.Cards)
	assert.Empty(t, doc.TopTransactions)
}
