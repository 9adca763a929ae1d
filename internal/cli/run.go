package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/ssechunk/internal/logging"
	"github.com/aretw0/ssechunk/internal/metrics"
	"github.com/aretw0/ssechunk/internal/presentation/tui"
	"github.com/aretw0/ssechunk/pkg/fixture"
	"github.com/aretw0/ssechunk/pkg/runner"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	FixturePath string // Empty means the built-in sample
	ChunkSize   int    // Applied only when SizeSet
	Preview     int    // Applied only when PreviewSet
	SizeSet     bool
	PreviewSet  bool
	Raw         bool // Write the SSE stream instead of the report
	Debug       bool
	Metrics     bool

	Stdout io.Writer
	Stderr io.Writer
}

// Execute handles the 'run' command logic, dispatching to report or raw mode.
func Execute(opts RunOptions) error {
	opts = withStdio(opts)
	logger := createLogger(opts.Debug, opts.Stderr)

	fx, err := resolveFixture(opts)
	if err != nil {
		return err
	}

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithStyle(tui.NewStyle(opts.Stdout)),
	}
	var m *metrics.Metrics
	if opts.Metrics {
		m = metrics.New()
		runnerOpts = append(runnerOpts, runner.WithMetrics(m))
	}

	r := runner.NewRunner(runnerOpts...)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if opts.Raw {
		err = r.Stream(sigCtx, fx, opts.Stdout)
	} else {
		_, err = r.Run(sigCtx, fx, opts.Stdout)
	}
	if err != nil {
		return handleExecutionError(err, logger, sigCtx.Signal())
	}

	if m != nil {
		return m.WriteText(opts.Stderr)
	}
	return nil
}

func resolveFixture(opts RunOptions) (fixture.Fixture, error) {
	fx := fixture.Default()
	if opts.FixturePath != "" {
		loaded, err := fixture.Load(opts.FixturePath)
		if err != nil {
			return fixture.Fixture{}, err
		}
		fx = loaded
	}
	if opts.SizeSet {
		fx.ChunkSize = opts.ChunkSize
	}
	if opts.PreviewSet {
		fx.Preview = opts.Preview
	}
	if err := fx.Validate(); err != nil {
		return fixture.Fixture{}, err
	}
	return fx, nil
}

func withStdio(opts RunOptions) RunOptions {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return opts
}

// createLogger configures the application logger.
// Logs go to stderr so stdout only carries the report or the stream.
func createLogger(debug bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return logging.NewWithWriter(w, level)
}

func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
