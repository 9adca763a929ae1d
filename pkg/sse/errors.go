package sse

import (
	"errors"
	"fmt"
)

// ErrUnknownEventType is returned for payloads whose "type" is not a known event.
var ErrUnknownEventType = errors.New("unknown event type")

// DecodeError is returned when a data line carries a payload that cannot be
// decoded into an event. The stream itself stays readable.
type DecodeError struct {
	Payload string // Raw payload after the "data: " prefix
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode event %q: %v", e.Payload, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Recoverable reports whether err only affects a single event, meaning the
// caller may skip it and keep reading.
func Recoverable(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr) || errors.Is(err, ErrUnknownEventType)
}
