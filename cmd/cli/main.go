// Intervista - Interview Log Analysis Tool
//
// Intervista parses semi-structured interview logs into records, derives
// calendar and time-slot attributes, and aggregates them into summary
// statistics.
package main

import (
	"os"

	"intervista/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
