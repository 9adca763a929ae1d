package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DataPrefix starts every data line of the stream.
const DataPrefix = "data: "

// Marshal encodes v as compact JSON. Non-ASCII text is kept literally and
// HTML-sensitive characters are not escaped, so the payload reads the same
// on the wire as in the source text.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return unescapeSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeSeparators writes U+2028 and U+2029 back as literal characters.
// encoding/json always escapes them, even with HTML escaping off. Escape
// sequences are consumed in pairs so an escaped backslash followed by
// "u2028" in the source text is left alone.
func unescapeSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		switch seq := b[i+1:]; {
		case bytes.HasPrefix(seq, []byte("u2028")):
			out = append(out, "\u2028"...)
			i += 5
		case bytes.HasPrefix(seq, []byte("u2029")):
			out = append(out, "\u2029"...)
			i += 5
		default:
			out = append(out, b[i], b[i+1])
			i++
		}
	}
	return out
}

// Render returns the SSE line for v: "data: " + json + "\n\n".
func Render(v any) (string, error) {
	payload, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return DataPrefix + string(payload) + "\n\n", nil
}

// Writer renders events onto an underlying stream.
type Writer struct {
	w     io.Writer
	count int
}

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteEvent renders v and writes it. The rendered line is returned so callers
// can inspect exactly what went out.
func (w *Writer) WriteEvent(v any) (string, error) {
	line, err := Render(v)
	if err != nil {
		return "", err
	}
	if _, err := io.WriteString(w.w, line); err != nil {
		return "", fmt.Errorf("failed to write event %d: %w", w.count, err)
	}
	w.count++
	return line, nil
}

// Count reports how many events were written.
func (w *Writer) Count() int {
	return w.count
}
