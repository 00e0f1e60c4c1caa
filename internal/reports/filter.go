package reports

import (
	"fmt"
	"time"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// FilterByDate returns the records whose date falls in [start, end],
// inclusive on both bounds. Records with an undefined date cannot satisfy a
// bound comparison and are excluded. Input order is preserved; an empty
// result is valid output.
func FilterByDate(txns []model.Transaction, start, end time.Time) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if !t.DateValid {
			continue
		}
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterByDateRange is FilterByDate with string bounds, parsed with the
// same day-first layouts as ingestion.
func FilterByDateRange(txns []model.Transaction, start, end string) ([]model.Transaction, error) {
	s, err := model.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	e, err := model.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}
	return FilterByDate(txns, s, e), nil
}
