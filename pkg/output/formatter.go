package output

import (
	"context"
	"fmt"
	"io"
)

// Formatter renders an analysis report in one output format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls how much of the report a formatter emits.
type FormatOptions struct {
	// Verbose adds the per-record listing and run timings.
	Verbose bool

	// Quiet reduces output to the headline counts.
	Quiet bool
}

// New returns the formatter for the named format, failing on names
// no formatter claims.
func New(format string, opts FormatOptions) (Formatter, error) {
	switch format {
	case "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}
