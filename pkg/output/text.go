package output

import (
	"context"
	"fmt"
	"io"
	"time"

	"intervista/pkg/aggregate"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "Intervista: %d records, %d completed, %d upcoming, %d cancelled\n",
		report.Summary.TotalRecords,
		report.Summary.Completed,
		report.Summary.Upcoming,
		report.Summary.Cancelled)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Intervista Analysis Report ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Records analyzed: %d (as of %s)\n",
		report.Summary.TotalRecords,
		report.Metadata.AsOf.Format("2006-01-02"))
	fmt.Fprintln(w)

	f.formatTable("Status", report.Tables.StatusCounts, w)
	f.formatTable("Weekday/Weekend", report.Tables.WeekSplit, w)
	f.formatTable("By day", report.Tables.DayOfWeek, w)
	f.formatTable("By time slot", report.Tables.TimeSlots, w)
	f.formatTable("Monthly trend", report.Tables.MonthlyTrend, w)

	fmt.Fprintln(w, "Insights:")
	for _, insight := range report.Tables.Insights {
		fmt.Fprintf(w, "  - %s\n", insight.Description)
	}
	fmt.Fprintln(w)

	if f.opts.Verbose {
		f.formatRecords(report, w)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(time.Millisecond))
	}

	return nil
}

func (f *TextFormatter) formatTable(title string, buckets []aggregate.Bucket, w io.Writer) {
	fmt.Fprintf(w, "%s:\n", title)
	for _, b := range buckets {
		fmt.Fprintf(w, "  %-10s %4d  (%.1f%%)\n", b.Label, b.Count, b.Percent)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatRecords(report *Report, w io.Writer) {
	fmt.Fprintln(w, "Records:")
	for _, r := range report.Records {
		fmt.Fprintf(w, "  %s  %s %s  %s %s  %s\n",
			r.ID,
			r.Date.Format("2006-01-02"),
			r.DayOfWeek,
			r.TimeText,
			r.TimeSlot,
			r.Status)
	}
	fmt.Fprintln(w)
}
