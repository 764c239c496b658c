package config

import (
	"os"
	"time"

	"intervista/pkg/enrich"
	"intervista/pkg/parser"
)

// Default values for configuration.
const (
	DefaultDateLayout     = enrich.DefaultDateLayout
	DefaultWebhookTimeout = 10 * time.Second
	DefaultServerAddr     = ":8420"
)

// Environment variable names.
const (
	EnvServerAddr = "INTERVISTA_ADDR"
	EnvDateLayout = "INTERVISTA_DATE_LAYOUT"
)

// DefaultConfig returns a configuration with the standard interview-log
// format and slot boundaries.
func DefaultConfig() *Config {
	format := parser.DefaultFormat()
	slots := enrich.DefaultSlotThresholds()

	return &Config{
		Format: FormatConfig{
			IDLabel:      format.IDLabel,
			DateLabel:    format.DateLabel,
			TimeLabel:    format.TimeLabel,
			CancelMarker: format.CancelMarker,
			StripTokens:  format.StripTokens,
		},
		DateLayout: DefaultDateLayout,
		Slots: SlotConfig{
			MorningEnd:   slots.MorningEnd,
			AfternoonEnd: slots.AfternoonEnd,
			EveningEnd:   slots.EveningEnd,
		},
		Server: ServerConfig{
			Addr:           DefaultServerAddr,
			AllowedOrigins: []string{"*"},
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if addr := os.Getenv(EnvServerAddr); addr != "" {
		c.Server.Addr = addr
	}
	if layout := os.Getenv(EnvDateLayout); layout != "" {
		c.DateLayout = layout
	}
}
