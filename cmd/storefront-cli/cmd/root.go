package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront-cli",
	Short: "Storefront CLI tool",
	Long: `storefront-cli talks to the storefront backend from a terminal.

Available commands:
  login    Sign in against the users API and print the resulting feedback
  version  Print the CLI version

Use "storefront-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
