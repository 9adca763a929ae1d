package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStyle_NonTerminalIsPlain(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyle(&buf)

	assert.Equal(t, "=== Original text ===", s.Header("=== Original text ==="))
	assert.Equal(t, "Chunk 0:", s.Label("Chunk 0:"))
}

func TestZeroStyleIsPlain(t *testing.T) {
	var s Style
	assert.Equal(t, "x", s.Header("x"))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, Plain(), "v0.1.0")
	assert.Contains(t, buf.String(), "v0.1.0")
	assert.NotContains(t, buf.String(), "\x1b[")
}
