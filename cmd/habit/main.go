// habitcli is a personal habit tracker for the terminal: declare daily or
// weekly habits, check them off, and review streaks, reminders, and a
// dashboard. State lives in flat JSON files under the data directory; each
// invocation loads, runs one operation, saves, and exits.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	dataDir    string
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command. Running it without a subcommand shows
// the welcome screen.
var rootCmd = &cobra.Command{
	Use:   "habit",
	Short: "HCLI - Your Personal Habit Tracker",
	Long: `HCLI is a personal habit tracker for the terminal.

Declare recurring habits (daily or weekly), record completions, and review
streaks, pending reminders, and a check-in dashboard. All state persists in
flat JSON files; there is no server and no account.

Run without arguments to see the welcome screen and your current status.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
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
	rootCmd.RunE = runWelcome
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Override the data directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(streaksCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(reminderCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(setupUserCmd)
	rootCmd.AddCommand(welcomeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
