package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/ssechunk/pkg/domain"
	"github.com/aretw0/ssechunk/pkg/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay_RoundTrip(t *testing.T) {
	r := NewRunner()
	fx := fixture.Default()

	var stream bytes.Buffer
	require.NoError(t, r.Stream(context.Background(), fx, &stream))

	var out bytes.Buffer
	transcript, err := r.Replay(context.Background(), &stream, &out)
	require.NoError(t, err)

	report, err := r.Build(context.Background(), fx)
	require.NoError(t, err)

	assert.True(t, transcript.Consistent())
	assert.Equal(t, fx.Text, transcript.Text)
	assert.Equal(t, 0, transcript.Skipped)
	require.Len(t, transcript.Events, len(report.Chunks)+1)
	for i, c := range report.Chunks {
		assert.Equal(t, domain.NewContentEvent(c), transcript.Events[i])
	}
	assert.Equal(t, domain.NewDoneEvent(fx.Text), *transcript.Done)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, len(transcript.Events))
	assert.Equal(t, `[0] content "置換積分（u置換）\n  - 形"`, lines[0])
}

func TestReplay_SkipsBrokenEvents(t *testing.T) {
	stream := strings.Join([]string{
		`data: {"type":"meta","subject":"math"}`,
		``,
		`data: {"type":"content","text":"ab"}`,
		``,
		`data: {not json}`,
		``,
		`data: {"type":"ping"}`,
		``,
		`data: {"type":"error","message":"rate limited"}`,
		``,
		`data: {"type":"done","full_text":"ab","latency_ms":12}`,
		``,
	}, "\n")

	var out bytes.Buffer
	transcript, err := NewRunner().Replay(context.Background(), strings.NewReader(stream), &out)
	require.NoError(t, err)

	assert.Equal(t, 2, transcript.Skipped)
	assert.Len(t, transcript.Events, 4)
	assert.True(t, transcript.Consistent())
	assert.Equal(t, float64(12), transcript.Done.LatencyMS)

	assert.Equal(t, `[0] meta subject="math" model=""
[1] content "ab"
[2] error "rate limited"
[3] done full_text=2 code points
`, out.String())
}

func TestReplay_Incomplete(t *testing.T) {
	stream := "data: {\"type\":\"content\",\"text\":\"ab\"}\n\n"

	transcript, err := NewRunner().Replay(context.Background(), strings.NewReader(stream), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Nil(t, transcript.Done)
	assert.False(t, transcript.Consistent())
}

func TestReplay_Mismatch(t *testing.T) {
	stream := "data: {\"type\":\"content\",\"text\":\"ab\"}\n\ndata: {\"type\":\"done\",\"full_text\":\"abc\"}\n\n"

	transcript, err := NewRunner().Replay(context.Background(), strings.NewReader(stream), &bytes.Buffer{})
	require.NoError(t, err)
	assert.NotNil(t, transcript.Done)
	assert.False(t, transcript.Consistent())
}
