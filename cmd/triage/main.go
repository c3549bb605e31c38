package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"triage/internal/config"
	"triage/internal/logging"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	// Loaded during PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "triage - classify loosely structured records",
	Long: `triage reads loosely structured records and reduces each one to a
classification result based on its status, priority, tags, and meta_* keys.

Records are JSON objects; "next" keys link records into chains that the
classifier walks until a record with status "done" is reached.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", ".triage.json", "Config file (JSON or YAML)")

	// Add commands to root
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
