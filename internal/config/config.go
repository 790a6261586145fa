package config

import (
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds DocuGuard configuration.
type Config struct {
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// PipelineConfig controls document processing.
type PipelineConfig struct {
	Workers   int    `yaml:"workers"`    // documents processed concurrently; 0 = GOMAXPROCS
	LabelMode string `yaml:"label_mode"` // benchmark | real_world
}

// TokenizerConfig selects the tokenizer for documents without tokens.
type TokenizerConfig struct {
	Kind string `yaml:"kind"` // basic | prose; used when a document has no tokens
}

// TelemetryConfig controls OpenTelemetry export.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Protocol string `yaml:"protocol"` // grpc | http
	Service  string `yaml:"service"`
	Version  string `yaml:"version"`
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Pipeline.Workers <= 0 {
		cfg.Pipeline.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Pipeline.LabelMode == "" {
		cfg.Pipeline.LabelMode = "benchmark"
	}
	if cfg.Tokenizer.Kind == "" {
		cfg.Tokenizer.Kind = "basic"
	}
	if cfg.Telemetry.Protocol == "" {
		cfg.Telemetry.Protocol = "grpc"
	}
	if cfg.Telemetry.Service == "" {
		cfg.Telemetry.Service = "docuguard"
	}
}
