package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/ssechunk/pkg/runner"
)

// ErrInconsistentStream is returned when a replayed stream does not add up.
var ErrInconsistentStream = errors.New("inconsistent stream")

// DecodeOptions contains all the configuration for the Decode command.
type DecodeOptions struct {
	InputPath string // Empty or "-" reads Stdin
	Debug     bool
	Strict    bool // Fail when the stream is incomplete or inconsistent

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Decode replays an SSE stream and summarises it.
func Decode(opts DecodeOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	logger := createLogger(opts.Debug, opts.Stderr)

	src := opts.Stdin
	if opts.InputPath != "" && opts.InputPath != "-" {
		f, err := os.Open(opts.InputPath)
		if err != nil {
			return fmt.Errorf("failed to open stream: %w", err)
		}
		defer f.Close()
		src = f
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	r := runner.NewRunner(runner.WithLogger(logger))
	transcript, err := r.Replay(sigCtx, src, opts.Stdout)
	if err != nil {
		return handleExecutionError(err, logger, sigCtx.Signal())
	}

	switch {
	case transcript.Done == nil:
		printSystemMessage(opts.Stdout, "Stream ended without a done event (%d events, %d skipped).", len(transcript.Events), transcript.Skipped)
	case transcript.Consistent():
		printSystemMessage(opts.Stdout, "Done event matches streamed content (%d events, %d skipped).", len(transcript.Events), transcript.Skipped)
	default:
		printSystemMessage(opts.Stdout, "Done event does not match streamed content (%d events, %d skipped).", len(transcript.Events), transcript.Skipped)
	}

	if opts.Strict && !transcript.Consistent() {
		return ErrInconsistentStream
	}
	return nil
}
