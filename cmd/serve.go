package cmd

import (
	"github.com/rybkr/puzzle15/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the puzzle over HTTP and websockets",
		Long: `Run an HTTP server exposing the solver and scrambler as a JSON API,
plus a websocket endpoint for interactive play.

Examples:
  puzzle15 serve
  puzzle15 serve --addr :9000`,
		RunE: runServe,
	}

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	return server.New(nil).ListenAndServe(serveAddr)
}
