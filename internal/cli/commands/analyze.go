package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"intervista/pkg/config"
	"intervista/pkg/enrich"
	"intervista/pkg/output"
	"intervista/pkg/pipeline"
	"intervista/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Output     string
	AsOf       string
	ConfigPath string
	Verbose    bool
	Quiet      bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <input-file>",
		Short: "Analyze an interview log",
		Long: `Run the full analysis pipeline over an interview-log file.

Parses the text into records, validates them, derives calendar and
time-slot attributes, and prints the summary tables and insights.
Use "-" as the input file to read from stdin.

Record status is classified against the current date unless --as-of
pins a fixed reference date (useful for reproducible runs).

Exit codes:
  0 - Analysis completed
  2 - Input or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.AsOf, "as-of", "", "Reference date for status classification (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Optional config file (labels, slots, webhooks)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show the per-record listing")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no tables")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "always", "When to fire webhook (always|on_cancellations|never)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	text, source, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	asOf := time.Now()
	if opts.AsOf != "" {
		asOf, err = time.Parse(cfg.DateLayout, opts.AsOf)
		if err != nil {
			return fmt.Errorf("invalid as-of date %q: %w", opts.AsOf, err)
		}
	}

	// Resolve the formatter up front so a bad --output fails before any work.
	formatter, err := output.New(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	pipe := pipeline.New(
		pipeline.WithFormat(cfg.ParserFormat()),
		pipeline.WithEnrichOptions(
			enrich.WithDateLayout(cfg.DateLayout),
			enrich.WithSlotThresholds(cfg.SlotThresholds()),
		),
	)

	result, err := pipe.Run(text, asOf)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	report := output.NewReport(result, source)

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Send webhooks (errors logged but don't fail analysis)
	sendWebhooks(ctx, cfg, opts, report)

	return nil
}

// loadConfig loads the config file, or the built-in defaults when no path
// is given.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(ctx, path)
}

// readInput reads the whole input text from a file, or from stdin when
// path is "-".
func readInput(path string) (text, source string, err error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "-", nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided input path is expected
	if err != nil {
		return "", "", err
	}
	return string(data), path, nil
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged to stderr but don't fail the analysis.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *AnalyzeOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)

	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasCancellations()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *AnalyzeOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)

	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerAlways
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire for this report.
func shouldFireWebhook(trigger config.WebhookTrigger, hasCancellations bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	case config.WebhookTriggerOnCancellations:
		return hasCancellations
	default:
		return true
	}
}
