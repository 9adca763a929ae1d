package metrics

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/aretw0/ssechunk/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics summarises a simulation run. It uses a private registry so several
// runs in one process (tests) never collide.
type Metrics struct {
	registry   *prometheus.Registry
	events     *prometheus.CounterVec
	bytes      prometheus.Counter
	chunkRunes prometheus.Histogram
}

// New creates and registers the run metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ssechunk_events_total",
				Help: "Total number of SSE events rendered",
			},
			[]string{"type"},
		),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ssechunk_stream_bytes_total",
			Help: "Total bytes of rendered SSE lines",
		}),
		chunkRunes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ssechunk_chunk_code_points",
			Help:    "Code points per content chunk",
			Buckets: prometheus.LinearBuckets(1, 4, 8),
		}),
	}
	m.registry.MustRegister(m.events, m.bytes, m.chunkRunes)
	return m
}

// ObserveEvent records a rendered line of the given type.
func (m *Metrics) ObserveEvent(kind domain.EventType, line string) {
	m.events.WithLabelValues(string(kind)).Inc()
	m.bytes.Add(float64(len(line)))
}

// ObserveChunk records the size of a content chunk.
func (m *Metrics) ObserveChunk(chunk string) {
	m.chunkRunes.Observe(float64(utf8.RuneCountInString(chunk)))
}

// WriteText dumps all metrics in the Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
