package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"intervista/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := struct {
		ConfigPath string
	}{}

	cmd := &cobra.Command{
		Use:   "validate <input-file>",
		Short: "Validate an interview log without analyzing it",
		Long: `Parse and validate an interview-log file without running analysis.

Checks:
  - At least one record can be assembled from the text
  - Every record has an id, date, and time field

Use "-" as the input file to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], opts.ConfigPath)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Optional config file (labels, slots)")

	return cmd
}

func runValidate(cmd *cobra.Command, inputPath, configPath string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	text, source, err := readInput(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Printf("Validating %s...\n", source)

	records, err := parser.Parse(text, cfg.ParserFormat())
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := parser.ValidateRecords(records); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Printf("\nInput valid!\n")
	fmt.Printf("  Records: %d\n", len(records))

	fmt.Printf("\nRecords:\n")
	for i, r := range records {
		marker := ""
		if r.Cancelled {
			marker = "  (cancelled)"
		}
		fmt.Printf("  %d. %s  %s  %s%s\n", i+1, r.ID, r.DateText, r.TimeText, marker)
	}

	return nil
}
