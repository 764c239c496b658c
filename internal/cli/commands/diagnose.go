package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"intervista/pkg/inspect"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	ConfigPath string
	Verbose    bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command.
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <input-file>",
		Short: "Diagnose common input problems",
		Long: `Diagnose common interview-log input problems.

This command scans the input and explains how the parser reads it:
- Which lines are recognized as record fields
- Which lines are ignored
- Records that would fail validation (missing id/date/time)
- Field lines that appear before the first record and are dropped

Example:
  intervista diagnose interviews.txt
  intervista diagnose -v interviews.txt  # verbose output

Exit codes:
  0 - Input looks analyzable
  1 - Problems found
  2 - Runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Optional config file (labels, slots)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(cmd *cobra.Command, inputPath string, opts *DiagnoseOptions) error {
	cfg, err := loadConfig(cmd.Context(), opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	text, _, err := readInput(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	scan := inspect.New(inspect.WithFormat(cfg.ParserFormat())).Scan(text)

	results := []DiagnosticResult{
		checkInputNonEmpty(scan),
	}

	if scan.TotalLines > 0 {
		results = append(results, checkRecordStarts(scan, cfg.Format.IDLabel))
		results = append(results, checkRequiredFields(scan)...)
		results = append(results, checkOrphanLines(scan))
		results = append(results, checkIgnoredLines(scan, opts))
	}

	printDiagnostics(results, opts)
	return nil
}

func checkInputNonEmpty(scan *inspect.ScanResult) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Input Text",
	}

	if scan.TotalLines == 0 {
		result.Status = "error"
		result.Message = "Input is empty or whitespace-only"
		result.Suggests = []string{
			"Paste or pipe the interview log text into the input file",
		}
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("%d lines (%d blank)", scan.TotalLines, scan.BlankLines)
	return result
}

func checkRecordStarts(scan *inspect.ScanResult, idLabel string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Record Starts",
	}

	if scan.IDLines == 0 {
		result.Status = "error"
		result.Message = fmt.Sprintf("No %q lines found, so no records can be assembled", idLabel)
		result.Suggests = []string{
			fmt.Sprintf("Each record must start with a %q line (label is case-sensitive)", idLabel),
		}
		if len(scan.IgnoredSamples) > 0 {
			result.Details = append([]string{"Unrecognized lines:"}, scan.IgnoredSamples...)
		}
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("%d record(s) start in the input", scan.IDLines)
	return result
}

func checkRequiredFields(scan *inspect.ScanResult) []DiagnosticResult {
	results := []DiagnosticResult{}

	if len(scan.Records) == 0 {
		return results
	}

	result := DiagnosticResult{
		Check: "Required Fields",
	}

	var incomplete []string
	for _, rec := range scan.Records {
		if rec.Complete() {
			continue
		}

		missing := ""
		switch {
		case rec.ID == "":
			missing = "id"
		case !rec.HasDate:
			missing = "date"
		case !rec.HasTime:
			missing = "time"
		}
		incomplete = append(incomplete, fmt.Sprintf("record %d: missing %s", rec.Position, missing))
	}

	if len(incomplete) > 0 {
		result.Status = "error"
		result.Message = fmt.Sprintf("%d record(s) would fail validation", len(incomplete))
		result.Details = incomplete
		result.Suggests = []string{
			"Every record needs Candidate ID:, Date:, and Time: lines, even when cancelled",
		}
	} else {
		result.Status = "ok"
		result.Message = fmt.Sprintf("All %d record(s) carry id, date, and time", len(scan.Records))
	}

	results = append(results, result)
	return results
}

func checkOrphanLines(scan *inspect.ScanResult) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Field Placement",
	}

	if scan.OrphanFieldLines > 0 {
		result.Status = "warning"
		result.Message = fmt.Sprintf("%d field line(s) appear before the first record and are dropped", scan.OrphanFieldLines)
		result.Suggests = []string{
			"Move date/time/cancellation lines below their record's Candidate ID: line",
		}
		return result
	}

	result.Status = "ok"
	result.Message = "All field lines fall inside record blocks"
	return result
}

func checkIgnoredLines(scan *inspect.ScanResult, opts *DiagnoseOptions) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Ignored Lines",
	}

	if scan.IgnoredLines == 0 {
		result.Status = "ok"
		result.Message = "Every non-blank line was recognized"
		return result
	}

	// Ignored lines are legal; they only matter when the user expected
	// them to carry data.
	result.Status = "ok"
	result.Message = fmt.Sprintf("%d non-blank line(s) matched no label and will be ignored", scan.IgnoredLines)
	if opts.Verbose {
		result.Details = scan.IgnoredSamples
	}
	return result
}

func printDiagnostics(results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Println("=== Intervista Input Diagnostics ===")
	fmt.Println()

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		// Status icon
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		fmt.Printf("[%s] %s\n", icon, r.Check)
		fmt.Printf("    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Printf("      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Printf("      Hint: %s\n", s)
		}

		fmt.Println()
	}

	// Summary
	fmt.Println("---")
	fmt.Printf("Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	if errCount > 0 {
		fmt.Println("\nFix the errors above before running analysis.")
		ExitCode = 1
	} else if warnCount > 0 {
		fmt.Println("\nInput is analyzable but has warnings.")
	} else {
		fmt.Println("\nInput looks good!")
	}
}
