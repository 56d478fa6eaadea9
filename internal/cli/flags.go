package cli

import (
	"github.com/spf13/cobra"

	"github.com/sdejongh/byteverify/pkg/compare"
	"github.com/sdejongh/byteverify/pkg/verify"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

var globalFlags GlobalFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/byteverify/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Verbose,
		"verbose",
		"v",
		false,
		"verbose output (debug logging)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Quiet,
		"quiet",
		"q",
		false,
		"suppress non-error output",
	)
}

// VerifyFlags holds verify command flag values
type VerifyFlags struct {
	Output          string
	Report          string
	ReportFormat    string
	Progress        bool
	HiddenPrefix    string
	SampleLimit     int
	ReportAnomalies bool
}

var verifyFlags VerifyFlags

// addVerifyFlags registers the verify flags on cmd
func addVerifyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&verifyFlags.Output, "output", "o", "human", "output format: human, json")
	cmd.Flags().StringVar(&verifyFlags.Report, "report", "", "write a report of all failures to file")
	cmd.Flags().StringVar(&verifyFlags.ReportFormat, "report-format", "human", "report file format: human, json")
	cmd.Flags().BoolVar(&verifyFlags.Progress, "progress", false, "show a progress bar instead of one line per file")
	cmd.Flags().StringVar(&verifyFlags.HiddenPrefix, "hidden-prefix", verify.DefaultHiddenPrefix, "skip originals whose name starts with this prefix (empty disables)")
	cmd.Flags().IntVar(&verifyFlags.SampleLimit, "samples", compare.DefaultSampleLimit, "differing offsets to show per file")
	cmd.Flags().BoolVar(&verifyFlags.ReportAnomalies, "report-anomalies", false, "log originals entries skipped because they are not regular files")
}
