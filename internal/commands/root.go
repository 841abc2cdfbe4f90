package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cleared-dev/minibank/internal/buildinfo"
)

const verboseFlag = "verbose"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "minibank",
		Short:   "In-memory bank ledger demo",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool(verboseFlag, false, "log ledger operations to stderr")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}

// newLogger returns a no-op logger unless --verbose is set, in which case it
// writes development-format logs to the command's stderr.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, err := cmd.Flags().GetBool(verboseFlag)
	if err != nil {
		return nil, fmt.Errorf("reading --%s: %w", verboseFlag, err)
	}
	if !verbose {
		return zap.NewNop(), nil
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(cmd.ErrOrStderr()), zapcore.DebugLevel)
	return zap.New(core), nil
}
