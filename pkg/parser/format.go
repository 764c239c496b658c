package parser

import "strings"

// Default field labels and markers for the interview-log text format.
const (
	DefaultIDLabel      = "Candidate ID:"
	DefaultDateLabel    = "Date:"
	DefaultTimeLabel    = "Time:"
	DefaultCancelMarker = "cancel"
)

// Format describes how record fields are labelled in the input text.
// Labels are matched case-sensitively as line prefixes; the cancellation
// marker is matched case-insensitively as a substring.
type Format struct {
	// IDLabel starts a new record.
	IDLabel string

	// DateLabel carries the record's date field.
	DateLabel string

	// TimeLabel carries the record's time-range field.
	TimeLabel string

	// CancelMarker flags the record under construction as cancelled.
	CancelMarker string

	// StripTokens are removed from the time field before trimming,
	// typically timezone abbreviations such as "IST".
	StripTokens []string
}

// DefaultFormat returns the standard interview-log format.
func DefaultFormat() Format {
	return Format{
		IDLabel:      DefaultIDLabel,
		DateLabel:    DefaultDateLabel,
		TimeLabel:    DefaultTimeLabel,
		CancelMarker: DefaultCancelMarker,
		StripTokens:  []string{"IST"},
	}
}

// ClassifyLine determines what role a single input line plays.
// Label prefixes take priority over the cancellation marker, in the
// fixed order ID, date, time, cancel.
func ClassifyLine(line string, format Format) LineKind {
	switch {
	case strings.HasPrefix(line, format.IDLabel):
		return LineID
	case strings.HasPrefix(line, format.DateLabel):
		return LineDate
	case strings.HasPrefix(line, format.TimeLabel):
		return LineTime
	case strings.Contains(strings.ToLower(line), strings.ToLower(format.CancelMarker)):
		return LineCancel
	default:
		return LineIgnored
	}
}
