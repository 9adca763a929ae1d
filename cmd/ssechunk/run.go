package main

import (
	"github.com/aretw0/ssechunk/internal/cli"
	"github.com/aretw0/ssechunk/pkg/fixture"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [fixture]",
	Short: "Chunk a payload and print the simulated SSE stream",
	Long: `Chunks the payload of a fixture file (YAML or JSON) or the built-in sample and prints
a report of the rendered SSE lines. With --raw the stream itself is written to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fixturePath, _ := cmd.Flags().GetString("fixture")
		if !cmd.Flags().Changed("fixture") && len(args) > 0 {
			fixturePath = args[0]
		}
		chunkSize, _ := cmd.Flags().GetInt("chunk-size")
		preview, _ := cmd.Flags().GetInt("preview")
		raw, _ := cmd.Flags().GetBool("raw")
		withMetrics, _ := cmd.Flags().GetBool("metrics")
		debug, _ := cmd.Flags().GetBool("debug")

		return cli.Execute(cli.RunOptions{
			FixturePath: fixturePath,
			ChunkSize:   chunkSize,
			SizeSet:     cmd.Flags().Changed("chunk-size"),
			Preview:     preview,
			PreviewSet:  cmd.Flags().Changed("preview"),
			Raw:         raw,
			Debug:       debug,
			Metrics:     withMetrics,
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)

	// 'run' is the default when no command is provided.
	addRunFlags(rootCmd)
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("fixture", "f", "", "Fixture file (YAML or JSON); defaults to the built-in sample")
	cmd.Flags().IntP("chunk-size", "n", fixture.DefaultChunkSize, "Code points per chunk")
	cmd.Flags().Int("preview", fixture.DefaultPreview, "Number of chunks shown in the report")
	cmd.Flags().Bool("raw", false, "Write the raw SSE stream instead of the report")
	cmd.Flags().Bool("metrics", false, "Dump run metrics to stderr in Prometheus text format")
}
