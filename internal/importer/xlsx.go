package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// WorkbookParser parses XLSX statement exports. Only the first sheet is
// read; the first row is the localized header.
type WorkbookParser struct{}

// Format returns the file extension this parser handles.
func (p *WorkbookParser) Format() string { return "xlsx" }

// Parse reads an XLSX statement and returns canonical Transactions in
// source row order.
func (p *WorkbookParser) Parse(r io.Reader) ([]model.Transaction, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, &DateColumnError{Column: dateHeader, Reason: "column not found"}
	}

	return buildTransactions(rows[0], rows[1:])
}
