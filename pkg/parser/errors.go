package parser

import (
	"errors"
	"fmt"
)

// ErrNoRecords indicates the input text yielded no interview records.
var ErrNoRecords = errors.New("no interview records found in input")

// MissingFieldError reports a record that lacks a required field.
type MissingFieldError struct {
	// Position is the record's 1-based position in the input.
	Position int

	// Field names the missing field (id, date, or time).
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d: missing required field %q", e.Position, e.Field)
}
