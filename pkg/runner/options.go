package runner

import (
	"log/slog"

	"github.com/aretw0/ssechunk/pkg/domain"
)

// Observer receives every rendered event and chunk of a run.
type Observer interface {
	ObserveEvent(kind domain.EventType, line string)
	ObserveChunk(chunk string)
}

// Styler decorates report labels.
type Styler interface {
	Header(text string) string
	Label(text string) string
}

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithMetrics records every rendered event on m.
func WithMetrics(m Observer) Option {
	return func(r *Runner) {
		r.Metrics = m
	}
}

// WithStyle configures how report labels are colored.
func WithStyle(s Styler) Option {
	return func(r *Runner) {
		r.Style = s
	}
}
