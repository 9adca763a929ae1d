package main

import (
	"fmt"

	"github.com/aretw0/ssechunk"
	"github.com/aretw0/ssechunk/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ssechunk",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		banner, _ := cmd.Flags().GetBool("banner")
		if banner {
			tui.PrintBanner(out, tui.NewStyle(out), ssechunk.Version)
			return
		}
		fmt.Fprintf(out, "ssechunk version %s\n", ssechunk.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("banner", false, "Print the banner with the version")
}
