package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "puzzle15",
	Short: "Solve and play the 4x4 sliding-tile puzzle",
	Long: `puzzle15 models the classic fifteen puzzle: a 4x4 grid of numbered
tiles with one empty cell. It finds minimum-length move sequences between
board positions, generates scrambles, and can serve the puzzle over HTTP.`,
}

// Execute runs the CLI, exiting nonzero when a command fails.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
