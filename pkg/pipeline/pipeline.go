// Package pipeline runs the full parse -> validate -> enrich -> aggregate
// transformation over one interview-log text blob.
//
// Each run is synchronous, side-effect-free, and atomic: either the complete
// enriched-and-aggregated result is returned, or an error and no partial
// output. Independent runs share no state.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"intervista/pkg/aggregate"
	"intervista/pkg/enrich"
	"intervista/pkg/parser"
)

// Result is the complete output of one pipeline run.
type Result struct {
	// Records is the enriched record collection, in input order.
	Records []*enrich.Record

	// Tables are the aggregate summaries over Records.
	Tables *aggregate.Tables

	// Metadata provides context about the run.
	Metadata Metadata
}

// Metadata provides context about a pipeline run.
type Metadata struct {
	// RunID uniquely identifies this run.
	RunID string

	// AsOf is the reference date used for completed/upcoming status.
	AsOf time.Time

	// StartTime is when the run began.
	StartTime time.Time

	// EndTime is when the run completed.
	EndTime time.Time
}

// Pipeline holds the parse and enrichment settings for runs.
// The zero-configuration pipeline from New() uses the standard format.
type Pipeline struct {
	format     parser.Format
	enrichOpts []enrich.Option
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithFormat overrides the input text format.
func WithFormat(f parser.Format) Option {
	return func(p *Pipeline) {
		p.format = f
	}
}

// WithEnrichOptions passes options through to the enrichment step.
func WithEnrichOptions(opts ...enrich.Option) Option {
	return func(p *Pipeline) {
		p.enrichOpts = append(p.enrichOpts, opts...)
	}
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{format: parser.DefaultFormat()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the pipeline over text, classifying record status relative
// to asOf. The same text and asOf always produce the same result apart
// from run metadata.
func (p *Pipeline) Run(text string, asOf time.Time) (*Result, error) {
	start := time.Now()

	raws, err := parser.Parse(text, p.format)
	if err != nil {
		return nil, fmt.Errorf("parsing input: %w", err)
	}

	if err := parser.ValidateRecords(raws); err != nil {
		return nil, fmt.Errorf("validating records: %w", err)
	}

	enricher := enrich.NewEnricher(asOf, p.enrichOpts...)
	records := make([]*enrich.Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := enricher.Enrich(raw, i+1)
		if err != nil {
			return nil, fmt.Errorf("enriching records: %w", err)
		}
		records = append(records, rec)
	}

	result := &Result{
		Records: records,
		Tables:  aggregate.Compute(records),
		Metadata: Metadata{
			RunID:     uuid.NewString(),
			AsOf:      asOf,
			StartTime: start,
			EndTime:   time.Now(),
		},
	}

	return result, nil
}

// Run executes a single pipeline run with the standard format.
func Run(text string, asOf time.Time) (*Result, error) {
	return New().Run(text, asOf)
}
