package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// DelimitedParser parses delimited statement exports. Bank exports in this
// convention use a comma decimal separator, so the field delimiter is
// usually a semicolon; the parser sniffs the header line and accepts either.
type DelimitedParser struct{}

// Format returns the file extension this parser handles.
func (p *DelimitedParser) Format() string { return "csv" }

// Parse reads a delimited statement and returns canonical Transactions in
// source row order.
func (p *DelimitedParser) Parse(r io.Reader) ([]model.Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffDelimiter(data)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading delimited statement: %w", err)
	}

	if len(records) == 0 {
		return nil, &DateColumnError{Column: dateHeader, Reason: "column not found"}
	}

	return buildTransactions(records[0], records[1:])
}

// sniffDelimiter picks the field delimiter from the header line. Semicolon
// wins whenever present, since commas also appear inside localized numbers.
func sniffDelimiter(data []byte) rune {
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}
	if bytes.ContainsRune(header, ';') {
		return ';'
	}
	return ','
}
