package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/straja-ai/docuguard/internal/labels"
	"github.com/straja-ai/docuguard/internal/tokenize"
)

// Validate checks the loaded config for required fields and safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if cfg.Pipeline.Workers <= 0 {
		return fmt.Errorf("pipeline.workers must be positive, got %d", cfg.Pipeline.Workers)
	}
	if _, err := labels.ParseMode(cfg.Pipeline.LabelMode); err != nil {
		return fmt.Errorf("pipeline.label_mode: %w", err)
	}
	if _, err := tokenize.New(cfg.Tokenizer.Kind); err != nil {
		return fmt.Errorf("tokenizer.kind: %w", err)
	}

	if err := validateTelemetryConfig(cfg.Telemetry); err != nil {
		return err
	}

	return nil
}

func validateTelemetryConfig(t TelemetryConfig) error {
	if !t.Enabled {
		return nil
	}
	if strings.TrimSpace(t.Endpoint) == "" {
		return errors.New("telemetry enabled but endpoint is empty")
	}
	if _, _, err := net.SplitHostPort(t.Endpoint); err != nil {
		return fmt.Errorf("telemetry.endpoint must be host:port, got %q", t.Endpoint)
	}
	if t.Protocol != "" {
		switch strings.ToLower(strings.TrimSpace(t.Protocol)) {
		case "grpc", "http":
		default:
			return fmt.Errorf("telemetry.protocol must be grpc or http, got %q", t.Protocol)
		}
	}
	return nil
}
