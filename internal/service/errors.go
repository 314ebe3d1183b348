package service

import "errors"

var (
	// ErrNotFound is returned when an operation expects a record that does
	// not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAmbiguous is returned when an exactly-one-match operation finds
	// more than one candidate row.
	ErrAmbiguous = errors.New("more than one record matches")
	// ErrBadTimestamp is returned when a timestamp string does not parse.
	ErrBadTimestamp = errors.New("invalid timestamp")
)
