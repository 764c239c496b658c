package enrich

import "fmt"

// InvalidDateError reports a date field that could not be parsed.
type InvalidDateError struct {
	// Position is the record's 1-based position in the input.
	Position int

	// Value is the offending date text.
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("record %d: invalid date %q (want YYYY-MM-DD)", e.Position, e.Value)
}

// InvalidTimeError reports a time field whose leading hour could not be
// parsed, or fell outside 0-23.
type InvalidTimeError struct {
	// Position is the record's 1-based position in the input.
	Position int

	// Value is the offending time text.
	Value string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("record %d: invalid time %q (want HH:MM)", e.Position, e.Value)
}
