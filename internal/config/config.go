// =============================================================================
// Receipt Generator - Configuration Module
// =============================================================================
//
// This module loads and manages the main application configuration.
//
// CONFIGURATION FILE (config.yaml):
//   output_dir: ./output
//   report_name_format: "receipts_{timestamp}_{uuid}"
//   currency: INR
//   seed: 0
//   max_concurrency: 4
//   listen_addr: ":8080"
//   log_level: info
//
// A missing configuration file is not an error: the defaults cover every
// setting, and the file only overrides them. A file that exists but cannot
// be parsed is an error.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// OutputDir is the directory where generated reports are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ReportNameFormat defines the format for report file names.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {catalog}   - Catalog file name (without extension)
	// Default: "receipts_{timestamp}_{uuid}"
	ReportNameFormat string `yaml:"report_name_format"`

	// Currency is the ISO 4217 code used for amount display.
	// Default: "INR"
	Currency string `yaml:"currency"`

	// Seed seeds the random stream for reproducible runs.
	// 0 means time-based seeding (non-reproducible).
	// Default: 0
	Seed int64 `yaml:"seed"`

	// MaxConcurrency is the maximum number of catalog files generated
	// concurrently by the generate command. Set to 1 for sequential runs.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ListenAddr is the address the serve command binds to.
	// Default: ":8080"
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// LoadMainConfig loads the main configuration from a YAML file, applies
// defaults and validates the result. A missing file yields the defaults.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	var cfg MainConfig

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the default configuration.
func Default() *MainConfig {
	var cfg MainConfig
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *MainConfig) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ReportNameFormat == "" {
		cfg.ReportNameFormat = "receipts_{timestamp}_{uuid}"
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = 4
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate checks the configuration for invalid values.
func validate(cfg *MainConfig) error {
	if cfg.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", cfg.MaxConcurrency)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}

	return nil
}
