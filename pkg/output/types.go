// Package output provides formatting and report generation for pipeline results.
package output

import (
	"time"

	"intervista/pkg/aggregate"
	"intervista/pkg/enrich"
	"intervista/pkg/pipeline"
)

// Report is the complete analysis output handed to formatters and webhooks.
type Report struct {
	// Summary provides headline counts.
	Summary Summary `json:"summary"`

	// Tables are the aggregate summaries.
	Tables *aggregate.Tables `json:"tables"`

	// Records is the full enriched collection, for drill-down.
	Records []*enrich.Record `json:"records"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides headline counts.
type Summary struct {
	// TotalRecords is the number of records analyzed.
	TotalRecords int `json:"total_records"`

	// Completed, Upcoming, and Cancelled are the per-status counts.
	Completed int `json:"completed"`
	Upcoming  int `json:"upcoming"`
	Cancelled int `json:"cancelled"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Source is the input file path ("-" for stdin, "request" for HTTP).
	Source string `json:"source"`

	// ReportID uniquely identifies the run that produced this report.
	ReportID string `json:"report_id"`

	// AsOf is the reference date used for status classification.
	AsOf time.Time `json:"as_of"`

	// AnalyzedAt is when the analysis completed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration_ns"`
}

// NewReport creates a Report from a pipeline result.
func NewReport(result *pipeline.Result, source string) *Report {
	return &Report{
		Summary: Summary{
			TotalRecords: result.Tables.Total,
			Completed:    result.Tables.StatusCounts[0].Count,
			Upcoming:     result.Tables.StatusCounts[1].Count,
			Cancelled:    result.Tables.StatusCounts[2].Count,
		},
		Tables:  result.Tables,
		Records: result.Records,
		Metadata: Metadata{
			Source:     source,
			ReportID:   result.Metadata.RunID,
			AsOf:       result.Metadata.AsOf,
			AnalyzedAt: result.Metadata.EndTime,
			Duration:   result.Metadata.EndTime.Sub(result.Metadata.StartTime),
		},
	}
}

// HasCancellations returns true if any record was cancelled.
func (r *Report) HasCancellations() bool {
	return r.Summary.Cancelled > 0
}
