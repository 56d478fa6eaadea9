package config

import (
	"github.com/sdejongh/byteverify/pkg/compare"
	"github.com/sdejongh/byteverify/pkg/models"
	"github.com/sdejongh/byteverify/pkg/verify"
)

// Config represents the application configuration
type Config struct {
	Verify  VerifyConfig  `yaml:"verify"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// VerifyConfig holds verification settings
type VerifyConfig struct {
	BaseDir         string `yaml:"base_dir"`         // Directory holding originals/ and saved/
	HiddenPrefix    string `yaml:"hidden_prefix"`    // Names starting with this are skipped
	SampleLimit     int    `yaml:"sample_limit"`     // Differing offsets reported per file
	ReportAnomalies bool   `yaml:"report_anomalies"` // Log skipped non-regular entries
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show a progress bar
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Format     string `yaml:"format"` // "json" or "text"
	Level      string `yaml:"level"`  // "debug", "info", "warn", "error"
	File       string `yaml:"file"`   // Log file path (empty = stderr)
	MaxSize    int64  `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Verify: VerifyConfig{
			BaseDir:         "target_files",
			HiddenPrefix:    verify.DefaultHiddenPrefix,
			SampleLimit:     compare.DefaultSampleLimit,
			ReportAnomalies: false,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: false,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Format:     "json",
			Level:      "warn",
			File:       "",
			MaxSize:    10 * 1024 * 1024,
			MaxBackups: 3,
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Verify.BaseDir == "" {
		return &models.ValidationError{
			Field:   "verify.base_dir",
			Message: "must not be empty",
		}
	}

	if c.Verify.SampleLimit < 1 {
		return &models.ValidationError{
			Field:   "verify.sample_limit",
			Message: "must be at least 1",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	if c.Logging.MaxSize < 0 || c.Logging.MaxBackups < 0 {
		return &models.ValidationError{
			Field:   "logging.max_size",
			Message: "rotation limits must not be negative",
		}
	}

	return nil
}
