package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// Parser converts one statement file format into canonical Transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() string
}

// Registry holds parsers keyed by file extension.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for a file extension (with or without the leading
// dot), or nil.
func (r *Registry) Get(ext string) Parser {
	return r.parsers[strings.TrimPrefix(strings.ToLower(ext), ".")]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&WorkbookParser{})
	r.Register(&DelimitedParser{})
	return r
}

// Load reads a statement file, dispatching on its extension. It is the only
// read the pipeline performs; everything downstream works on the returned
// slice.
func Load(path string) ([]model.Transaction, error) {
	return DefaultRegistry().Load(path)
}

// Load reads a statement file using the parser registered for its extension.
func (r *Registry) Load(path string) ([]model.Transaction, error) {
	ext := filepath.Ext(path)
	p := r.Get(ext)
	if p == nil {
		return nil, &UnsupportedFormatError{Ext: ext}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s statement: %w", p.Format(), err)
	}
	return txns, nil
}

// Canonical field identifiers, shared by both parsers.
const (
	fieldDate            = "date"
	fieldPaymentDate     = "payment_date"
	fieldCard            = "card_last_digits"
	fieldStatus          = "status"
	fieldAmount          = "amount"
	fieldCurrency        = "currency"
	fieldPaymentAmount   = "payment_amount"
	fieldPaymentCurrency = "payment_currency"
	fieldCashback        = "cashback"
	fieldCategory        = "category"
	fieldMCC             = "mcc"
	fieldDescription     = "description"
	fieldBonuses         = "bonuses"
	fieldRounding        = "rounding"
	fieldRoundedAmount   = "rounded_amount"
)

// dateHeader is the operation-date column both formats are expected to carry.
const dateHeader = "Дата операции"

// headerFields maps the known localized statement headers to canonical field
// identifiers. Headers absent from a source simply leave their field
// unpopulated; unrecognized headers are ignored.
var headerFields = map[string]string{
	dateHeader:                     fieldDate,
	"Дата платежа":                 fieldPaymentDate,
	"Номер карты":                  fieldCard,
	"Статус":                       fieldStatus,
	"Сумма операции":               fieldAmount,
	"Валюта операции":              fieldCurrency,
	"Сумма платежа":                fieldPaymentAmount,
	"Валюта платежа":               fieldPaymentCurrency,
	"Кэшбэк":                       fieldCashback,
	"Категория":                    fieldCategory,
	"MCC":                          fieldMCC,
	"Описание":                     fieldDescription,
	"Бонусы (включая кэшбэк)":      fieldBonuses,
	"Округление на инвесткопилку":  fieldRounding,
	"Сумма операции с округлением": fieldRoundedAmount,
}

// resolveColumns maps a header row to canonical-field -> column-index.
// The first occurrence of a recognized header wins.
func resolveColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		field, ok := headerFields[strings.TrimSpace(h)]
		if !ok {
			continue
		}
		if _, seen := cols[field]; !seen {
			cols[field] = i
		}
	}
	return cols
}

// buildTransactions converts raw rows into canonical records. A missing or
// wholly unparseable date column fails the batch; a single bad date or
// amount value degrades to an undefined field on that record only. Source
// row order is preserved.
func buildTransactions(header []string, rows [][]string) ([]model.Transaction, error) {
	cols := resolveColumns(header)

	dateIdx, ok := cols[fieldDate]
	if !ok {
		return nil, &DateColumnError{Column: dateHeader, Reason: "column not found"}
	}

	nonEmpty, parseable := 0, 0
	for _, row := range rows {
		raw := strings.TrimSpace(cell(row, dateIdx))
		if raw == "" {
			continue
		}
		nonEmpty++
		if _, err := model.ParseDate(raw); err == nil {
			parseable++
		}
	}
	if nonEmpty > 0 && parseable == 0 {
		return nil, &DateColumnError{Column: dateHeader, Reason: "no value parses as a calendar date"}
	}

	txns := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, buildTransaction(row, cols))
	}
	return txns, nil
}

func buildTransaction(row []string, cols map[string]int) model.Transaction {
	var t model.Transaction

	if idx, ok := cols[fieldDate]; ok {
		if d, err := model.ParseDate(strings.TrimSpace(cell(row, idx))); err == nil {
			t.Date = d
			t.DateValid = true
		}
	}
	if idx, ok := cols[fieldPaymentDate]; ok {
		if d, err := model.ParseDate(strings.TrimSpace(cell(row, idx))); err == nil {
			t.PaymentDate = d
		}
	}

	if idx, ok := cols[fieldAmount]; ok {
		t.Amount = coerceAmount(cell(row, idx))
	}
	if idx, ok := cols[fieldPaymentAmount]; ok {
		t.PaymentAmount = coerceAmount(cell(row, idx))
	}
	if idx, ok := cols[fieldCashback]; ok {
		t.Cashback = coerceAmount(cell(row, idx))
	}
	if idx, ok := cols[fieldBonuses]; ok {
		t.Bonuses = coerceAmount(cell(row, idx))
	}
	if idx, ok := cols[fieldRounding]; ok {
		t.Rounding = coerceAmount(cell(row, idx))
	}
	if idx, ok := cols[fieldRoundedAmount]; ok {
		t.RoundedAmount = coerceAmount(cell(row, idx))
	}

	if idx, ok := cols[fieldCard]; ok {
		t.CardLastDigits = strings.TrimSpace(cell(row, idx))
	}
	if idx, ok := cols[fieldStatus]; ok {
		t.Status = strings.TrimSpace(cell(row, idx))
	}
	if idx, ok := cols[fieldCurrency]; ok {
		t.Currency = strings.TrimSpace(cell(row, idx))
	}
	if idx, ok := cols[fieldPaymentCurrency]; ok {
		t.PaymentCurrency = strings.TrimSpace(cell(row, idx))
	}
	if idx, ok := cols[fieldCategory]; ok {
		t.Category = strings.TrimSpace(cell(row, idx))
	}
	if idx, ok := cols[fieldMCC]; ok {
		t.MCC = strings.TrimSpace(cell(row, idx))
	}
	if idx, ok := cols[fieldDescription]; ok {
		t.Description = strings.TrimSpace(cell(row, idx))
	}

	return t
}

// coerceAmount parses a localized numeric string: comma decimal separator,
// space (or NBSP) thousands separator. Anything that still fails to parse
// becomes an undefined value rather than an error.
func coerceAmount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	s = strings.NewReplacer(" ", "", " ", "", ",", ".").Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// cell returns row[idx], tolerating short rows (trailing empty workbook
// cells are not materialized by the reader).
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
