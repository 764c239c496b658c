package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter renders reports as machine-readable JSON, indented for
// pipes and diffs.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// quietSummary is the reduced quiet-mode document: the headline counts
// plus the reference date they were classified against.
type quietSummary struct {
	AsOf         string `json:"as_of"`
	TotalRecords int    `json:"total_records"`
	Completed    int    `json:"completed"`
	Upcoming     int    `json:"upcoming"`
	Cancelled    int    `json:"cancelled"`
}

// Format renders the report as JSON. Quiet mode emits only the summary
// counts and the as-of date; otherwise the full report document is
// written (tables, records, metadata).
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if f.opts.Quiet {
		return enc.Encode(quietSummary{
			AsOf:         report.Metadata.AsOf.Format("2006-01-02"),
			TotalRecords: report.Summary.TotalRecords,
			Completed:    report.Summary.Completed,
			Upcoming:     report.Summary.Upcoming,
			Cancelled:    report.Summary.Cancelled,
		})
	}

	return enc.Encode(report)
}
