// Package cli implements the fightclub command-line interface using Cobra.
// Each subcommand renders one slice of the dashboard read model.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fightclub",
	Short: "fightclub — personal progress dashboard",
	Long: `fightclub aggregates your missions, rewards, badges and alter-egos
into a single progress dashboard, served locally over HTTP or rendered
straight to the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
