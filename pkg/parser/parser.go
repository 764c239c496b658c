package parser

import (
	"strings"
)

// Parse scans text line by line and assembles interview records.
//
// One record is kept "under construction" at a time: an ID line finalizes
// the previous record and starts a new one, date/time lines fill in the
// current record's fields, and a cancellation marker flags it. Lines that
// match nothing are ignored, as are field lines that appear before the
// first ID line. Returns ErrNoRecords when the scan produces no records.
func Parse(text string, format Format) ([]RawRecord, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var records []RawRecord
	var current *RawRecord

	for _, line := range lines {
		switch ClassifyLine(line, format) {
		case LineID:
			if current != nil {
				records = append(records, *current)
			}
			current = &RawRecord{ID: afterFirstColon(line)}

		case LineDate:
			if current != nil {
				current.DateText = afterFirstColon(line)
			}

		case LineTime:
			if current != nil {
				current.TimeText = stripTokens(line[len(format.TimeLabel):], format.StripTokens)
			}

		case LineCancel:
			// Only meaningful inside a record block; never starts one.
			if current != nil {
				current.Cancelled = true
			}
		}
	}

	if current != nil {
		records = append(records, *current)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	return records, nil
}

// afterFirstColon returns the trimmed remainder of a labelled line.
func afterFirstColon(line string) string {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[idx+1:])
}

// stripTokens removes every occurrence of the given tokens and trims the result.
func stripTokens(s string, tokens []string) string {
	for _, tok := range tokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	return strings.TrimSpace(s)
}
