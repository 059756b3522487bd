package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "partyserver",
	Short: "Party server: session lifecycle, turn coordination, presence",
	Long:  `WebSocket + HTTP server for short-lived multiplayer party sessions.`,
	RunE:  runServe, // default: run the server (same as "partyserver serve")
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// Execute runs the root command and returns the error (for main to log.Fatal).
func Execute() error {
	return rootCmd.Execute()
}
