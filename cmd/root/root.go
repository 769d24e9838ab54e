// Package root contains the root command for the application
package root

import (
	"os"

	"tdnguyen/vispend/internal/config"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/snapshot"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Snapshot string
	Output   string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "vispend",
		Short: "A CLI tool to extract, query and analyze Vietnamese spending records.",
		Long: `vispend turns free-form Vietnamese text and receipt OCR output into
structured transactions, answers natural-language spending questions and
produces trend, forecast, anomaly and savings reports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to vispend!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Route the shared facade through the configured logger
			logging.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
			snapshot.SetLogger(logging.GetLogger())

			// Apply the configured CSV delimiter, then let the raw
			// CSV_DELIMITER env variable override it
			if cfg := config.GetGlobalConfig(); len(cfg.CSV.Delimiter) == 1 {
				snapshot.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				snapshot.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Snapshot, "snapshot", "s", "data/transactions.csv", "Transaction snapshot CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
}
