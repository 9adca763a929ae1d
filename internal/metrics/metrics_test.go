package metrics

import (
	"bytes"
	"testing"

	"github.com/aretw0/ssechunk/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New()

	m.ObserveEvent(domain.EventContent, "data: a\n\n")
	m.ObserveChunk("置換")
	m.ObserveEvent(domain.EventContent, "data: b\n\n")
	m.ObserveChunk("x")
	m.ObserveEvent(domain.EventDone, "data: ab\n\n")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.events.WithLabelValues("content")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues("done")))
	assert.Equal(t, float64(9+9+10), testutil.ToFloat64(m.bytes))
}

func TestMetrics_WriteText(t *testing.T) {
	m := New()
	m.ObserveEvent(domain.EventContent, "data: a\n\n")

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE ssechunk_events_total counter")
	assert.Contains(t, out, `ssechunk_events_total{type="content"} 1`)
	assert.Contains(t, out, "ssechunk_stream_bytes_total 9")
}
