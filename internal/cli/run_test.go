package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/ssechunk/internal/testutils"
	"github.com/aretw0/ssechunk/pkg/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_DefaultReport(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Execute(RunOptions{Stdout: &stdout, Stderr: &stderr})
	require.NoError(t, err)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "=== Original text ===\n\"置換積分"))
	assert.Contains(t, out, "=== First 5 chunks ===")
	assert.Contains(t, out, "Chunk 4:")
	assert.NotContains(t, out, "Chunk 5:")
	assert.Contains(t, out, "=== Done event (first 200 chars) ===")
	assert.Empty(t, stderr.String())
}

func TestExecute_RawWithOverrides(t *testing.T) {
	path := testutils.WriteFile(t, "fixture.yaml", "text: abcdef\nchunk_size: 4\n")

	var stdout, stderr bytes.Buffer
	err := Execute(RunOptions{
		FixturePath: path,
		ChunkSize:   2,
		SizeSet:     true,
		Raw:         true,
		Metrics:     true,
		Stdout:      &stdout,
		Stderr:      &stderr,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(stdout.String(), "data: "))
	assert.Contains(t, stdout.String(), `"text":"ab"`)
	assert.Contains(t, stderr.String(), `ssechunk_events_total{type="content"} 3`)
}

func TestExecute_RejectsNonPositiveChunkSize(t *testing.T) {
	for _, size := range []int{0, -2} {
		err := Execute(RunOptions{ChunkSize: size, SizeSet: true, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
		assert.ErrorIs(t, err, fixture.ErrInvalid)
	}
}

func TestExecute_MissingFixture(t *testing.T) {
	err := Execute(RunOptions{
		FixturePath: filepath.Join(t.TempDir(), "nope.yaml"),
		Stdout:      &bytes.Buffer{},
		Stderr:      &bytes.Buffer{},
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExecute_PreviewOverride(t *testing.T) {
	var stdout bytes.Buffer
	err := Execute(RunOptions{Preview: 1, PreviewSet: true, Stdout: &stdout, Stderr: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "=== First 1 chunks ===")
	assert.NotContains(t, stdout.String(), "Chunk 1:")
}

func TestExecute_DebugLogs(t *testing.T) {
	var stderr bytes.Buffer
	err := Execute(RunOptions{Debug: true, Stdout: &bytes.Buffer{}, Stderr: &stderr})
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "Simulation finished")
}
