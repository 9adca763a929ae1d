package sse

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/ssechunk/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// MaxLineSize bounds a single line of the stream. A done event carries the whole
// text, so this is well above the default bufio limit.
const MaxLineSize = 4 * 1024 * 1024

// Decoder reads events from an SSE stream the way the browser client does:
// it splits on newlines, keeps only lines starting with "data: ", trims the
// payload and skips empty ones.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Decoder{scanner: sc}
}

// Next returns the next event. It returns io.EOF once the stream is exhausted.
// Errors for which Recoverable is true leave the decoder usable.
func (d *Decoder) Next() (domain.Event, error) {
	for d.scanner.Scan() {
		d.line++
		line := d.scanner.Text()
		if !strings.HasPrefix(line, DataPrefix) {
			continue
		}
		payload := strings.TrimSpace(line[len(DataPrefix):])
		if payload == "" {
			continue
		}
		ev, err := Parse([]byte(payload))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", d.line, err)
		}
		return ev, nil
	}
	if err := d.scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stream: %w", err)
	}
	return nil, io.EOF
}

// Parse decodes a single JSON payload into its typed event using the "type" field.
func Parse(payload []byte) (domain.Event, error) {
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, &DecodeError{Payload: string(payload), Err: err}
	}

	kind, _ := raw["type"].(string)
	var (
		ev  domain.Event
		err error
	)
	switch domain.EventType(kind) {
	case domain.EventContent:
		ev, err = decodeAs[domain.ContentEvent](raw)
	case domain.EventDone:
		ev, err = decodeAs[domain.DoneEvent](raw)
	case domain.EventMeta:
		ev, err = decodeAs[domain.MetaEvent](raw)
	case domain.EventError:
		ev, err = decodeAs[domain.ErrorEvent](raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, kind)
	}
	if err != nil {
		return nil, &DecodeError{Payload: string(payload), Err: err}
	}
	return ev, nil
}

func decodeAs[T domain.Event](raw map[string]any) (domain.Event, error) {
	var ev T
	if err := mapstructure.Decode(raw, &ev); err != nil {
		return nil, err
	}
	return ev, nil
}
