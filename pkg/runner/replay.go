package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/ssechunk/pkg/domain"
	"github.com/aretw0/ssechunk/pkg/sse"
)

// Transcript is what a client reconstructs from a stream.
type Transcript struct {
	Events []domain.Event
	// Skipped counts data lines that could not be decoded.
	Skipped int
	// Text is the concatenation of every content event.
	Text string
	// Done is the first done event seen, if any.
	Done *domain.DoneEvent
}

// Consistent reports whether the stream completed and the streamed content
// equals the full text carried by the done event.
func (t *Transcript) Consistent() bool {
	return t.Done != nil && t.Done.FullText == t.Text
}

// Replay decodes the SSE stream in src, prints one line per event to w and
// returns the reconstructed transcript. Undecodable events are logged and
// skipped, as the browser client does.
func (r *Runner) Replay(ctx context.Context, src io.Reader, w io.Writer) (*Transcript, error) {
	dec := sse.NewDecoder(src)
	t := &Transcript{}
	var text strings.Builder

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ev, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if sse.Recoverable(err) {
				r.Logger.Warn("Skipping event", "error", err)
				t.Skipped++
				continue
			}
			return nil, err
		}

		idx := len(t.Events)
		t.Events = append(t.Events, ev)

		var desc string
		switch e := ev.(type) {
		case domain.ContentEvent:
			text.WriteString(e.Text)
			desc = strconv.Quote(e.Text)
		case domain.DoneEvent:
			if t.Done == nil {
				done := e
				t.Done = &done
			}
			desc = fmt.Sprintf("full_text=%d code points", utf8.RuneCountInString(e.FullText))
		case domain.MetaEvent:
			desc = fmt.Sprintf("subject=%q model=%q", e.Subject, e.Model)
		case domain.ErrorEvent:
			desc = strconv.Quote(e.Message)
			r.Logger.Warn("Stream reported an error", "message", e.Message)
		}
		if _, err := fmt.Fprintf(w, "[%d] %s %s\n", idx, ev.Kind(), desc); err != nil {
			return nil, fmt.Errorf("failed to write event %d: %w", idx, err)
		}
	}

	t.Text = text.String()
	r.Logger.Debug("Replay finished", "events", len(t.Events), "skipped", t.Skipped, "consistent", t.Consistent())
	return t, nil
}
