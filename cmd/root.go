package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"mobile-setup/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `mobile-setup`.
var rootCmd = &cobra.Command{
	Use:   "mobile-setup",
	Short: "macOS mobile development machine setup tool",

	// PersistentPreRun runs before any subcommand; it initializes the
	// logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes flags, registers subcommands, and starts command
// execution. A command error (a required tool missing after its install
// attempt) exits non-zero; completing with tolerated failures exits zero.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
