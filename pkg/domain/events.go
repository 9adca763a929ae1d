package domain

// EventType is the discriminator carried in the "type" field of every event.
type EventType string

const (
	EventMeta    EventType = "meta"
	EventContent EventType = "content"
	EventDone    EventType = "done"
	EventError   EventType = "error"
)

// Event is implemented by every event shape.
type Event interface {
	Kind() EventType
}

// ContentEvent carries one chunk of the streamed text.
type ContentEvent struct {
	Type EventType `json:"type" mapstructure:"type"`
	Text string    `json:"text" mapstructure:"text"`
}

// NewContentEvent wraps a chunk.
func NewContentEvent(text string) ContentEvent {
	return ContentEvent{Type: EventContent, Text: text}
}

func (ContentEvent) Kind() EventType { return EventContent }

// DoneEvent marks the end of a stream. FullText is the complete original text.
// The optional fields are what a real backend attaches after generation.
type DoneEvent struct {
	Type      EventType      `json:"type" mapstructure:"type"`
	FullText  string         `json:"full_text" mapstructure:"full_text"`
	Subject   string         `json:"subject,omitempty" mapstructure:"subject"`
	Usage     map[string]any `json:"usage,omitempty" mapstructure:"usage"`
	LatencyMS float64        `json:"latency_ms,omitempty" mapstructure:"latency_ms"`
}

// NewDoneEvent wraps the full text.
func NewDoneEvent(fullText string) DoneEvent {
	return DoneEvent{Type: EventDone, FullText: fullText}
}

func (DoneEvent) Kind() EventType { return EventDone }

// MetaEvent may open a stream.
type MetaEvent struct {
	Type    EventType `json:"type" mapstructure:"type"`
	Subject string    `json:"subject,omitempty" mapstructure:"subject"`
	Model   string    `json:"model,omitempty" mapstructure:"model"`
}

// NewMetaEvent builds a stream header.
func NewMetaEvent(subject, model string) MetaEvent {
	return MetaEvent{Type: EventMeta, Subject: subject, Model: model}
}

func (MetaEvent) Kind() EventType { return EventMeta }

// ErrorEvent reports a backend failure in-band.
type ErrorEvent struct {
	Type    EventType `json:"type" mapstructure:"type"`
	Message string    `json:"message" mapstructure:"message"`
}

// NewErrorEvent builds an in-band error.
func NewErrorEvent(message string) ErrorEvent {
	return ErrorEvent{Type: EventError, Message: message}
}

func (ErrorEvent) Kind() EventType { return EventError }
