package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ssechunk",
	Short: "ssechunk simulates chunked Server-Sent Events streaming",
	Long: `ssechunk splits a text payload into fixed-size chunks by code point, wraps each chunk
in a JSON content event, renders SSE "data:" lines and closes with a done event.
Without arguments it prints a report for the built-in sample.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
