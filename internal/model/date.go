package model

import (
	"fmt"
	"time"
)

// Statement exports give dates day-first; the ISO layouts cover values
// passed on the command line and pre-normalized workbook cells.
var dateLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// ParseDate parses a calendar date using the same day-first layouts the
// importer applies to statement rows.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
