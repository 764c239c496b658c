// Package cli provides the command-line interface for Intervista.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"intervista/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "intervista",
		Short: "Turn interview logs into summary statistics",
		Long: `Intervista parses semi-structured interview logs and aggregates them
into summary statistics.

Each run is one pass: parse the text into records, validate them, derive
calendar and time-slot attributes, and compute the summary tables
(status counts, weekday/weekend split, day and slot histograms, monthly
trend, and derived insights).

Input format, one block per record:

  Candidate ID: <id>
  Date: <YYYY-MM-DD>
  Time: <HH:MM> - <HH:MM> [IST]
  [Cancelled]`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewDiagnoseCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
