package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sdejongh/byteverify/internal/platform"
	"github.com/sdejongh/byteverify/pkg/config"
	"github.com/sdejongh/byteverify/pkg/logging"
	"github.com/sdejongh/byteverify/pkg/models"
)

// Layout holds the resolved directories of a verification target
type Layout struct {
	Base      string
	Originals string
	Saved     string
}

// validateLayout checks that base contains originals/ and saved/ directories
func validateLayout(fsys afero.Fs, base string) (*Layout, error) {
	if err := platform.ValidatePath(base); err != nil {
		return nil, err
	}

	base = platform.NormalizePath(base)
	layout := &Layout{
		Base:      base,
		Originals: filepath.Join(base, "originals"),
		Saved:     filepath.Join(base, "saved"),
	}

	var missing []string
	for _, dir := range []string{layout.Originals, layout.Saved} {
		ok, err := afero.DirExists(fsys, dir)
		if err != nil || !ok {
			missing = append(missing, dir)
		}
	}

	if len(missing) > 0 {
		return nil, &models.SetupError{
			Expected: []string{layout.Originals, layout.Saved},
			Missing:  missing,
		}
	}

	return layout, nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// newLogger builds the logger described by cfg. Console logs go to stderr.
func newLogger(cfg *config.Config, stderr io.Writer) (logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NewNullLogger(), nil
	}

	level := logging.ParseLevel(cfg.Logging.Level)

	if cfg.Logging.File != "" {
		logger, err := logging.NewFileLogger(logging.FileLoggerConfig{
			Path:       cfg.Logging.File,
			Format:     logging.Format(cfg.Logging.Format),
			Level:      level,
			MaxSize:    cfg.Logging.MaxSize,
			MaxBackups: cfg.Logging.MaxBackups,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return logger, nil
	}

	if cfg.Output.Quiet && level < logging.ErrorLevel {
		level = logging.ErrorLevel
	}
	return logging.NewConsoleLogger(stderr, level), nil
}
