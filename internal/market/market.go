// Package market fetches live currency rates and stock prices for the home
// report. Both sources share one contract: they always return a quote list,
// degrading to a fixed fallback set on missing credentials, transport
// errors, bad statuses, or malformed bodies. Callers never distinguish live
// from fallback data.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/config"
)

// Quote is one symbol/value pair, for currencies and stocks alike.
type Quote struct {
	Symbol string          `json:"symbol"`
	Value  decimal.Decimal `json:"value"`
}

// Source returns the current quote list.
type Source interface {
	Quotes(ctx context.Context) []Quote
}

// HTTPSource fetches quotes from a JSON endpoint of the shape
// {"quotes": {"SYMBOL": value, ...}}, keeping only configured symbols in
// their configured order.
type HTTPSource struct {
	name     string
	url      string
	apiKey   string
	symbols  []string
	fallback []Quote
	client   *http.Client
	log      zerolog.Logger
}

// NewCurrencySource builds the currency-rate source from configuration.
func NewCurrencySource(cfg config.MarketConfig, log zerolog.Logger) *HTTPSource {
	return newHTTPSource("currency", cfg.CurrencyURL, cfg.CurrencyAPIKey,
		cfg.Currencies, cfg.CurrencyFallback, cfg.TimeoutSeconds, log)
}

// NewStockSource builds the stock-price source from configuration.
func NewStockSource(cfg config.MarketConfig, log zerolog.Logger) *HTTPSource {
	return newHTTPSource("stock", cfg.StockURL, cfg.StockAPIKey,
		cfg.Stocks, cfg.StockFallback, cfg.TimeoutSeconds, log)
}

func newHTTPSource(name, url, apiKey string, symbols []string, fallback []config.Quote, timeoutSeconds int, log zerolog.Logger) *HTTPSource {
	return &HTTPSource{
		name:     name,
		url:      url,
		apiKey:   apiKey,
		symbols:  symbols,
		fallback: staticQuotes(fallback),
		client:   &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
		log:      log,
	}
}

// Quotes fetches live quotes, falling back to the static set on any
// failure.
func (s *HTTPSource) Quotes(ctx context.Context) []Quote {
	if s.url == "" || s.apiKey == "" {
		s.log.Warn().Str("source", s.name).Msg("quote source not configured, using fallback")
		return s.fallback
	}

	quotes, err := s.fetch(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("source", s.name).Msg("quote fetch failed, using fallback")
		return s.fallback
	}
	if len(quotes) == 0 {
		s.log.Warn().Str("source", s.name).Msg("quote response had no known symbols, using fallback")
		return s.fallback
	}
	return quotes
}

func (s *HTTPSource) fetch(ctx context.Context) ([]Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	q := req.URL.Query()
	q.Set("apikey", s.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting quotes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote endpoint returned %s", resp.Status)
	}

	var body struct {
		Quotes map[string]float64 `json:"quotes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding quotes: %w", err)
	}

	var quotes []Quote
	for _, sym := range s.symbols {
		value, ok := body.Quotes[sym]
		if !ok {
			continue
		}
		quotes = append(quotes, Quote{Symbol: sym, Value: decimal.NewFromFloat(value).Round(2)})
	}
	return quotes, nil
}

func staticQuotes(fallback []config.Quote) []Quote {
	quotes := make([]Quote, 0, len(fallback))
	for _, f := range fallback {
		quotes = append(quotes, Quote{Symbol: f.Symbol, Value: decimal.NewFromFloat(f.Value)})
	}
	return quotes
}
