// Package parser converts raw interview-log text into a sequence of records.
package parser

// RawRecord is a single interview entry exactly as the source text describes
// it, before enrichment. Immutable once returned by Parse.
type RawRecord struct {
	// ID is the candidate identifier.
	ID string `json:"id"`

	// DateText is the unparsed date field (expected YYYY-MM-DD).
	DateText string `json:"date_text"`

	// TimeText is the unparsed time range, with zone tokens stripped.
	TimeText string `json:"time_text"`

	// Cancelled is true when a cancellation marker line was seen inside
	// this record's block.
	Cancelled bool `json:"cancelled"`
}

// LineKind classifies a single line of input text.
type LineKind int

const (
	// LineIgnored is any line that matches no known label or marker.
	LineIgnored LineKind = iota

	// LineID starts a new record (candidate identifier label).
	LineID

	// LineDate carries the record's date field.
	LineDate

	// LineTime carries the record's time-range field.
	LineTime

	// LineCancel marks the record under construction as cancelled.
	LineCancel
)

// String returns a short name for the line kind.
func (k LineKind) String() string {
	switch k {
	case LineID:
		return "id"
	case LineDate:
		return "date"
	case LineTime:
		return "time"
	case LineCancel:
		return "cancel"
	default:
		return "ignored"
	}
}
