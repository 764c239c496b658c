package parser

// Required field names used in MissingFieldError.
const (
	FieldID   = "id"
	FieldDate = "date"
	FieldTime = "time"
)

// ValidateRecords checks that every record carries the fields enrichment
// needs. A cancelled record still requires all other fields; the
// cancellation flag never satisfies the check.
func ValidateRecords(records []RawRecord) error {
	for i, r := range records {
		pos := i + 1
		switch {
		case r.ID == "":
			return &MissingFieldError{Position: pos, Field: FieldID}
		case r.DateText == "":
			return &MissingFieldError{Position: pos, Field: FieldDate}
		case r.TimeText == "":
			return &MissingFieldError{Position: pos, Field: FieldTime}
		}
	}
	return nil
}
