// Package dashboard assembles the time-of-day-aware home report: greeting,
// month-to-date card summaries, top transactions, and market quotes.
package dashboard

import (
	"time"

	"github.com/spendlens-dev/spendlens/internal/market"
	"github.com/spendlens-dev/spendlens/internal/model"
	"github.com/spendlens-dev/spendlens/internal/reports"
)

// Document is the serializable home report bundle.
type Document struct {
	Greeting        string                   `json:"greeting"`
	Cards           []reports.CardSummary    `json:"cards"`
	TopTransactions []reports.TopTransaction `json:"top_transactions"`
	CurrencyRates   []market.Quote           `json:"currency_rates"`
	StockPrices     []market.Quote           `json:"stock_prices"`
}

// Greeting returns the salutation for the hour of day: morning 05-11,
// afternoon 12-17, evening 18-22, night otherwise.
func Greeting(at time.Time) string {
	switch hour := at.Hour(); {
	case hour >= 5 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 18:
		return "Good afternoon"
	case hour >= 18 && hour < 23:
		return "Good evening"
	default:
		return "Good night"
	}
}

// Build assembles the home document for the month-to-date window ending at
// the anchor time. Market quotes are passed in; the bundle never knows
// whether they are live or fallback values.
func Build(txns []model.Transaction, at time.Time, topN int, rates, stocks []market.Quote) Document {
	monthStart, _ := reports.MonthRange(at)
	window := reports.FilterByDate(txns, monthStart, at)

	return Document{
		Greeting:        Greeting(at),
		Cards:           reports.CardSummaries(window),
		TopTransactions: reports.TopTransactions(window, topN),
		CurrencyRates:   rates,
		StockPrices:     stocks,
	}
}
