package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/ssechunk/internal/logging"
	"github.com/aretw0/ssechunk/internal/presentation/tui"
	"github.com/aretw0/ssechunk/pkg/chunker"
	"github.com/aretw0/ssechunk/pkg/domain"
	"github.com/aretw0/ssechunk/pkg/fixture"
	"github.com/aretw0/ssechunk/pkg/sse"
)

// Runner turns fixtures into SSE streams.
type Runner struct {
	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Metrics, if set, records every rendered event.
	Metrics Observer

	// Style colors report labels.
	// If nil, labels are printed as plain text.
	Style Styler
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: logging.NewNop(),
		Style:  tui.Plain(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	if r.Style == nil {
		r.Style = tui.Plain()
	}
	return r
}

// Report is the outcome of a simulation.
type Report struct {
	Fixture fixture.Fixture
	// Chunks holds every content chunk in order.
	Chunks []string
	// Lines holds the rendered SSE line of each chunk, aligned with Chunks.
	Lines []string
	// DoneLine is the rendered done event.
	DoneLine string
}

// Build chunks the fixture and renders every event without printing anything.
func (r *Runner) Build(ctx context.Context, fx fixture.Fixture) (*Report, error) {
	report := &Report{Fixture: fx}
	err := r.walk(ctx, fx, func(ev domain.Event) error {
		line, err := sse.Render(ev)
		if err != nil {
			return err
		}
		r.record(ev, line)
		switch e := ev.(type) {
		case domain.ContentEvent:
			report.Chunks = append(report.Chunks, e.Text)
			report.Lines = append(report.Lines, line)
		case domain.DoneEvent:
			report.DoneLine = line
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Run builds the simulation and prints its report to w.
func (r *Runner) Run(ctx context.Context, fx fixture.Fixture, w io.Writer) (*Report, error) {
	report, err := r.Build(ctx, fx)
	if err != nil {
		return nil, err
	}
	if err := report.Print(w, r.Style); err != nil {
		return nil, err
	}
	return report, nil
}

// Stream writes the raw SSE stream of the fixture to w.
func (r *Runner) Stream(ctx context.Context, fx fixture.Fixture, w io.Writer) error {
	out := sse.NewWriter(w)
	err := r.walk(ctx, fx, func(ev domain.Event) error {
		line, err := out.WriteEvent(ev)
		if err != nil {
			return err
		}
		r.record(ev, line)
		return nil
	})
	if err != nil {
		return err
	}
	r.Logger.Debug("Stream written", "fixture", fx.Name, "events", out.Count())
	return nil
}

// walk emits one content event per chunk followed by the done event.
func (r *Runner) walk(ctx context.Context, fx fixture.Fixture, emit func(domain.Event) error) error {
	if err := fx.Validate(); err != nil {
		return err
	}
	chunks, err := chunker.Chunks(fx.Text, fx.ChunkSize)
	if err != nil {
		return err
	}

	r.Logger.Debug("Simulation started", "fixture", fx.Name, "chunk_size", fx.ChunkSize, "bytes", len(fx.Text))

	idx := 0
	for chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(domain.NewContentEvent(chunk)); err != nil {
			return fmt.Errorf("chunk %d: %w", idx, err)
		}
		r.Logger.Debug("Chunk emitted", "index", idx, "bytes", len(chunk))
		if r.Metrics != nil {
			r.Metrics.ObserveChunk(chunk)
		}
		idx++
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := emit(domain.NewDoneEvent(fx.Text)); err != nil {
		return fmt.Errorf("done event: %w", err)
	}
	r.Logger.Debug("Simulation finished", "fixture", fx.Name, "chunks", idx)
	return nil
}

func (r *Runner) record(ev domain.Event, line string) {
	if r.Metrics != nil {
		r.Metrics.ObserveEvent(ev.Kind(), line)
	}
}

// Print writes the human-readable report: the quoted original text, the first
// Preview chunk lines and the head of the done line.
func (rep *Report) Print(w io.Writer, s Styler) error {
	if s == nil {
		s = tui.Plain()
	}
	var b strings.Builder

	b.WriteString(s.Header("=== Original text ===") + "\n")
	b.WriteString(strconv.Quote(rep.Fixture.Text) + "\n\n")

	b.WriteString(s.Header(fmt.Sprintf("=== First %d chunks ===", rep.Fixture.Preview)) + "\n")
	for idx, line := range rep.Lines {
		if idx >= rep.Fixture.Preview {
			break
		}
		fmt.Fprintf(&b, "%s %s\n", s.Label(fmt.Sprintf("Chunk %d:", idx)), strconv.Quote(line))
	}
	b.WriteString("\n")

	b.WriteString(s.Header(fmt.Sprintf("=== Done event (first %d chars) ===", rep.Fixture.DoneLimit)) + "\n")
	b.WriteString(strconv.Quote(chunker.Head(rep.DoneLine, rep.Fixture.DoneLimit)) + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
