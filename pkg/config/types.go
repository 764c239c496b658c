// Package config provides configuration loading and validation for Intervista.
package config

import (
	"time"

	"intervista/pkg/enrich"
	"intervista/pkg/parser"
)

// Config is the root configuration structure loaded from YAML.
// Every field has a working default, so the config file is optional.
type Config struct {
	Format     FormatConfig    `yaml:"format"`
	DateLayout string          `yaml:"date_layout"`
	Slots      SlotConfig      `yaml:"slots"`
	Webhooks   []WebhookConfig `yaml:"webhooks,omitempty"`
	Server     ServerConfig    `yaml:"server"`
}

// FormatConfig defines how record fields are labelled in the input text.
type FormatConfig struct {
	// IDLabel is the line prefix that starts a new record.
	IDLabel string `yaml:"id_label"`

	// DateLabel is the line prefix carrying the date field.
	DateLabel string `yaml:"date_label"`

	// TimeLabel is the line prefix carrying the time-range field.
	TimeLabel string `yaml:"time_label"`

	// CancelMarker is the case-insensitive substring that flags cancellation.
	CancelMarker string `yaml:"cancel_marker"`

	// StripTokens are removed from the time field, e.g. timezone suffixes.
	StripTokens []string `yaml:"strip_tokens"`
}

// SlotConfig defines the exclusive upper hour bound of each time slot.
type SlotConfig struct {
	MorningEnd   int `yaml:"morning_end"`
	AfternoonEnd int `yaml:"afternoon_end"`
	EveningEnd   int `yaml:"evening_end"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	WebhookTriggerAlways          WebhookTrigger = "always"
	WebhookTriggerOnCancellations WebhookTrigger = "on_cancellations"
	WebhookTriggerNever           WebhookTrigger = "never"
)

// WebhookConfig defines a single webhook endpoint.
type WebhookConfig struct {
	// Name identifies the webhook in log output.
	Name string `yaml:"name,omitempty"`

	// URL is the endpoint to POST the JSON report to.
	URL string `yaml:"url"`

	// Token is an optional bearer token. Supports ${VAR} expansion.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires (default always).
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the request timeout (default 10s).
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`

	// AllowedOrigins configures CORS for browser consumers.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ParserFormat converts the format section into the parser's Format.
func (c *Config) ParserFormat() parser.Format {
	return parser.Format{
		IDLabel:      c.Format.IDLabel,
		DateLabel:    c.Format.DateLabel,
		TimeLabel:    c.Format.TimeLabel,
		CancelMarker: c.Format.CancelMarker,
		StripTokens:  c.Format.StripTokens,
	}
}

// SlotThresholds converts the slots section into enrichment thresholds.
func (c *Config) SlotThresholds() enrich.SlotThresholds {
	return enrich.SlotThresholds{
		MorningEnd:   c.Slots.MorningEnd,
		AfternoonEnd: c.Slots.AfternoonEnd,
		EveningEnd:   c.Slots.EveningEnd,
	}
}
