package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/minibank/internal/demo"
	"github.com/cleared-dev/minibank/internal/report"
)

func newReportCommand() *cobra.Command {
	var configPath string
	var format string
	var currency string

	formats := make([]string, len(report.Formats))
	for i, f := range report.Formats {
		formats[i] = string(f)
	}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the scenario and print the resulting accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			// demo.Run validates the currency along with the rest of the config.
			if cmd.Flags().Changed("currency") {
				cfg.Currency = currency
			}

			bank, err := demo.Run(io.Discard, cmd.ErrOrStderr(), cfg, log)
			if err != nil {
				if demo.IsLedgerError(err) {
					return nil
				}
				return err
			}

			opts := report.Options{Format: f, Currency: cfg.Currency}
			return report.Write(cmd.OutOrStdout(), bank, opts)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config (default ./minibank.yaml, else built-in)")
	cmd.Flags().StringVar(&format, "format", string(report.FormatText), fmt.Sprintf("output format (%s)", strings.Join(formats, ", ")))
	cmd.Flags().StringVar(&currency, "currency", "", "ISO currency for the display column; empty disables it (default from config)")

	return cmd
}
