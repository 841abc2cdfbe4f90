package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/minibank/internal/demo"
)

func newDemoCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the deposit/withdraw demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			_, err = demo.Run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, log)
			if demo.IsLedgerError(err) {
				// Already reported on stderr; a rejected operation just ends the run.
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config (default ./minibank.yaml, else built-in)")

	return cmd
}
