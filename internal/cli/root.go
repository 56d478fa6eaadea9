package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ExitError carries the process exit code out of a command.
// Err is nil when the outcome was already reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewRootCommand builds the command tree. Running it without a subcommand
// behaves like "verify".
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "byteverify [BASE_DIR]",
		Short: "Verify saved files are byte-identical to their originals",
		Long: `byteverify checks that every file in BASE_DIR/originals has a
byte-identical copy with the same name in BASE_DIR/saved.

Each file is reported as PASS, FAIL (with size or byte-level diagnostics)
or SKIP (counterpart missing or unreadable). The exit status is 0 only when
every file matched.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate),
		Args:          cobra.MaximumNArgs(1),
		RunE:          runVerify,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(rootCmd)
	addVerifyFlags(rootCmd)

	rootCmd.AddCommand(NewVerifyCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}
