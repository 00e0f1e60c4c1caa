package reports

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON serializes a report result to a file. Report output is a plain
// writer call after the report call; reports themselves never touch disk.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// WriteCSV writes a report table with its header row.
func WriteCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CategorySpendTable renders category-spend rows for WriteCSV.
func CategorySpendTable(rows []CategorySpendRow) ([]string, [][]string) {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Month, r.Category, r.Amount.StringFixed(2)})
	}
	return []string{"month", "category", "amount"}, out
}

// WeekdaySpendTable renders weekday-spend rows for WriteCSV.
func WeekdaySpendTable(rows []WeekdaySpendRow) ([]string, [][]string) {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Weekday, r.AverageSpend.StringFixed(2)})
	}
	return []string{"weekday", "average_spend"}, out
}

// DayTypeSpendTable renders workday/weekend rows for WriteCSV.
func DayTypeSpendTable(rows []DayTypeSpendRow) ([]string, [][]string) {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.DayType, r.AverageSpend.StringFixed(2)})
	}
	return []string{"day_type", "average_spend"}, out
}
