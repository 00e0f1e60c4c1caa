package importer

import "fmt"

// UnsupportedFormatError is returned by Load for file extensions no parser
// is registered for. It aborts the whole load.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported statement format %q: only .xlsx and .csv are supported", e.Ext)
}

// DateColumnError is returned when the operation-date column is missing or
// cannot be interpreted as dates at all. Unlike a single bad date value,
// this fails the whole batch.
type DateColumnError struct {
	Column string
	Reason string
}

func (e *DateColumnError) Error() string {
	return fmt.Sprintf("date column %q: %s", e.Column, e.Reason)
}
