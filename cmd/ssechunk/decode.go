package main

import (
	"github.com/aretw0/ssechunk/internal/cli"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Replay an SSE stream the way the browser client reads it",
	Long: `Reads an SSE stream from a file or stdin, prints one line per decoded event and
checks that the streamed content matches the text of the done event.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ""
		if len(args) > 0 {
			input = args[0]
		}
		strict, _ := cmd.Flags().GetBool("strict")
		debug, _ := cmd.Flags().GetBool("debug")

		return cli.Decode(cli.DecodeOptions{
			InputPath: input,
			Debug:     debug,
			Strict:    strict,
			Stdin:     cmd.InOrStdin(),
			Stdout:    cmd.OutOrStdout(),
			Stderr:    cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().Bool("strict", false, "Exit with an error if the stream is incomplete or inconsistent")
}
