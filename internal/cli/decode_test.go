package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/ssechunk/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_RawRoundTrip(t *testing.T) {
	var stream bytes.Buffer
	require.NoError(t, Execute(RunOptions{Raw: true, Stdout: &stream, Stderr: &bytes.Buffer{}}))

	var out bytes.Buffer
	err := Decode(DecodeOptions{Stdin: &stream, Stdout: &out, Stderr: &bytes.Buffer{}, Strict: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), ">>> Done event matches streamed content")
}

func TestDecode_FromFile(t *testing.T) {
	body := "data: {\"type\":\"content\",\"text\":\"ab\"}\n\ndata: {\"type\":\"done\",\"full_text\":\"abc\"}\n\n"
	path := testutils.WriteFile(t, "stream.txt", body)

	var out bytes.Buffer
	err := Decode(DecodeOptions{InputPath: path, Stdout: &out, Stderr: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "does not match")

	err = Decode(DecodeOptions{InputPath: path, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Strict: true})
	assert.ErrorIs(t, err, ErrInconsistentStream)
}

func TestDecode_Incomplete(t *testing.T) {
	var out, stderr bytes.Buffer
	err := Decode(DecodeOptions{
		Stdin:  strings.NewReader("data: oops\n\ndata: {\"type\":\"content\",\"text\":\"ab\"}\n\n"),
		Stdout: &out,
		Stderr: &stderr,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "without a done event (1 events, 1 skipped)")
	assert.Contains(t, stderr.String(), "Skipping event")
}

func TestDecode_MissingFile(t *testing.T) {
	err := Decode(DecodeOptions{InputPath: filepath.Join(t.TempDir(), "none"), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
