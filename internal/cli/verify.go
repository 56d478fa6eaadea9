package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sdejongh/byteverify/pkg/compare"
	"github.com/sdejongh/byteverify/pkg/config"
	"github.com/sdejongh/byteverify/pkg/output"
	"github.com/sdejongh/byteverify/pkg/storage"
	"github.com/sdejongh/byteverify/pkg/verify"
)

// NewVerifyCommand creates the verify command
func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [BASE_DIR]",
		Short: "Compare BASE_DIR/originals against BASE_DIR/saved",
		Long: `Compare every regular, non-hidden file directly inside BASE_DIR/originals
with the file of the same name in BASE_DIR/saved, byte for byte.
BASE_DIR defaults to the configured base directory ("target_files").`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVerify,
	}

	addVerifyFlags(cmd)

	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cmd, cfg)
	if len(args) == 1 {
		cfg.Verify.BaseDir = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Fail fast before any comparison
	layout, err := validateLayout(afero.NewOsFs(), cfg.Verify.BaseDir)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	originals, err := storage.NewLocal(layout.Originals)
	if err != nil {
		return fmt.Errorf("failed to open originals: %w", err)
	}
	defer originals.Close()

	saved, err := storage.NewLocal(layout.Saved)
	if err != nil {
		return fmt.Errorf("failed to open saved: %w", err)
	}
	defer saved.Close()

	formatter, err := output.New(cfg.Output.Format, cfg.Output.Progress)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Output.Quiet {
		out = io.Discard
	}

	engine := verify.NewEngine(
		originals,
		saved,
		compare.NewBinaryComparator(cfg.Verify.SampleLimit),
		formatter,
		logger,
		verify.Options{
			BaseDir:         layout.Base,
			HiddenPrefix:    cfg.Verify.HiddenPrefix,
			ReportAnomalies: cfg.Verify.ReportAnomalies,
			Output:          out,
		},
	)

	report, err := engine.Run(ctx)
	if err != nil {
		if formatter.Name() == "json" {
			formatter.Start(out, layout.Base, 0)
			formatter.Error(err)
		}
		return &ExitError{Code: report.Status.ExitCode(), Err: fmt.Errorf("verification failed: %w", err)}
	}

	if verifyFlags.Report != "" {
		if err := output.WriteReport(report, verifyFlags.Report, verifyFlags.ReportFormat); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if code := report.Status.ExitCode(); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// applyFlagsToConfig overrides config values with explicitly set command-line flags
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("output") {
		cfg.Output.Format = verifyFlags.Output
	}
	if flags.Changed("progress") {
		cfg.Output.Progress = verifyFlags.Progress
	}
	if flags.Changed("hidden-prefix") {
		cfg.Verify.HiddenPrefix = verifyFlags.HiddenPrefix
	}
	if flags.Changed("samples") {
		cfg.Verify.SampleLimit = verifyFlags.SampleLimit
	}
	if flags.Changed("report-anomalies") {
		cfg.Verify.ReportAnomalies = verifyFlags.ReportAnomalies
	}

	// Quiet wins over progress
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	if globalFlags.Verbose {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
}
