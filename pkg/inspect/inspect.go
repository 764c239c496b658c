// Package inspect analyzes input text to explain how the parser will read
// it. It powers the diagnose command: when a run fails with no records or
// missing fields, the scan shows which lines were recognized and which were
// ignored.
package inspect

import (
	"errors"
	"strings"

	"intervista/pkg/parser"
)

// ScanResult holds the outcome of inspecting an input text.
type ScanResult struct {
	// TotalLines is the number of lines scanned (after trimming the input).
	TotalLines int

	// BlankLines is the number of empty or whitespace-only lines.
	BlankLines int

	// IDLines, DateLines, TimeLines, and CancelLines count recognized lines.
	IDLines     int
	DateLines   int
	TimeLines   int
	CancelLines int

	// IgnoredLines counts non-blank lines that matched nothing.
	IgnoredLines int

	// IgnoredSamples holds up to the sample limit of ignored lines.
	IgnoredSamples []string

	// OrphanFieldLines counts date/time/cancel lines seen before the first
	// ID line. The parser silently drops these.
	OrphanFieldLines int

	// Records describes each record the parser would assemble.
	Records []RecordCheck
}

// RecordCheck reports field presence for one assembled record.
type RecordCheck struct {
	// Position is the record's 1-based position in the input.
	Position int

	// ID is the candidate identifier (may be empty).
	ID string

	// HasDate and HasTime report whether the required fields were seen.
	HasDate bool
	HasTime bool

	// Cancelled reports whether a cancellation marker was seen.
	Cancelled bool
}

// Complete returns true when the record carries all required fields.
func (c RecordCheck) Complete() bool {
	return c.ID != "" && c.HasDate && c.HasTime
}

// Inspector scans input text against a parse format.
type Inspector struct {
	format      parser.Format
	sampleLimit int
}

// Option configures the Inspector.
type Option func(*Inspector)

// WithFormat overrides the parse format (default standard format).
func WithFormat(f parser.Format) Option {
	return func(i *Inspector) {
		i.format = f
	}
}

// WithSampleLimit sets how many ignored lines to keep as samples (default 5).
func WithSampleLimit(n int) Option {
	return func(i *Inspector) {
		if n > 0 {
			i.sampleLimit = n
		}
	}
}

// New creates an Inspector.
func New(opts ...Option) *Inspector {
	i := &Inspector{
		format:      parser.DefaultFormat(),
		sampleLimit: 5,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Scan classifies every line of text and reports what the parser would
// assemble from it. Scan itself never fails: a text that would make the
// parser fail still produces a useful result.
func (i *Inspector) Scan(text string) *ScanResult {
	result := &ScanResult{}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return result
	}

	lines := strings.Split(trimmed, "\n")
	result.TotalLines = len(lines)

	seenID := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			result.BlankLines++
			continue
		}

		switch parser.ClassifyLine(line, i.format) {
		case parser.LineID:
			result.IDLines++
			seenID = true
		case parser.LineDate:
			result.DateLines++
			if !seenID {
				result.OrphanFieldLines++
			}
		case parser.LineTime:
			result.TimeLines++
			if !seenID {
				result.OrphanFieldLines++
			}
		case parser.LineCancel:
			result.CancelLines++
			if !seenID {
				result.OrphanFieldLines++
			}
		default:
			result.IgnoredLines++
			if len(result.IgnoredSamples) < i.sampleLimit {
				result.IgnoredSamples = append(result.IgnoredSamples, line)
			}
		}
	}

	records, err := parser.Parse(text, i.format)
	if errors.Is(err, parser.ErrNoRecords) {
		return result
	}

	for idx, r := range records {
		result.Records = append(result.Records, RecordCheck{
			Position:  idx + 1,
			ID:        r.ID,
			HasDate:   r.DateText != "",
			HasTime:   r.TimeText != "",
			Cancelled: r.Cancelled,
		})
	}

	return result
}
