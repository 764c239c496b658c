package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if err := validateFormat(&cfg.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	if cfg.DateLayout == "" {
		return errors.New("date_layout: layout is required")
	}

	if err := validateSlots(&cfg.Slots); err != nil {
		return fmt.Errorf("slots: %w", err)
	}

	// Webhooks are optional, but validate if present
	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}

	return nil
}

func validateFormat(f *FormatConfig) error {
	if f.IDLabel == "" {
		return errors.New("id_label is required")
	}
	if f.DateLabel == "" {
		return errors.New("date_label is required")
	}
	if f.TimeLabel == "" {
		return errors.New("time_label is required")
	}
	if f.CancelMarker == "" {
		return errors.New("cancel_marker is required")
	}
	return nil
}

func validateSlots(s *SlotConfig) error {
	if s.MorningEnd <= 0 || s.AfternoonEnd <= s.MorningEnd || s.EveningEnd <= s.AfternoonEnd {
		return fmt.Errorf("boundaries must satisfy 0 < morning_end < afternoon_end < evening_end (got %d, %d, %d)",
			s.MorningEnd, s.AfternoonEnd, s.EveningEnd)
	}
	if s.EveningEnd > 24 {
		return fmt.Errorf("evening_end must be <= 24, got %d", s.EveningEnd)
	}
	return nil
}

// validateWebhook checks one webhook entry and fills its defaults: the
// token may reference environment variables ($VAR or ${VAR}), the trigger
// defaults to always, the timeout to DefaultWebhookTimeout.
func validateWebhook(wh *WebhookConfig) error {
	if err := checkWebhookURL(wh.URL); err != nil {
		return err
	}

	wh.Token = os.Expand(wh.Token, os.Getenv)

	switch wh.Trigger {
	case "":
		wh.Trigger = WebhookTriggerAlways
	case WebhookTriggerAlways, WebhookTriggerOnCancellations, WebhookTriggerNever:
	default:
		return fmt.Errorf("invalid trigger %q (must be always, on_cancellations, or never)", wh.Trigger)
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}

func checkWebhookURL(raw string) error {
	if raw == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("url must have a host")
	}

	return nil
}
