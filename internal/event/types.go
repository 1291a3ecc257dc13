package event

import "encoding/binary"

type EventType uint8

const (
	// EventReading is published for every successful transaction. The
	// payload carries the raw device frame.
	EventReading EventType = iota

	// EventFault is published when a reading starts carrying chip fault
	// bits. The payload carries the raw device frame.
	EventFault

	// EventDisconnected is published when the transport stops responding.
	// The payload carries the transport error text.
	EventDisconnected

	// EventRecovered is published on the first clean reading after a fault
	// or a disconnect. The payload carries the raw device frame.
	EventRecovered
)

type Event struct {
	Type    EventType
	Payload [32]byte // fixed-size, avoids heap allocation
}

// NewEvent creates an event carrying up to 32 bytes of opaque payload.
// Longer payloads are silently truncated.
func NewEvent(t EventType, data []byte) Event {
	e := Event{Type: t}
	copy(e.Payload[:], data)
	return e
}

// NewFrameEvent creates an event whose payload is a raw device frame,
// stored big-endian in the first four payload bytes.
func NewFrameEvent(t EventType, raw uint32) Event {
	e := Event{Type: t}
	binary.BigEndian.PutUint32(e.Payload[:4], raw)
	return e
}

// NewTextEvent creates an event carrying a short text payload, truncated to
// the payload size.
func NewTextEvent(t EventType, text string) Event {
	return NewEvent(t, []byte(text))
}

// Frame recovers the raw device frame from a frame event's payload.
func (e Event) Frame() uint32 {
	return binary.BigEndian.Uint32(e.Payload[:4])
}

// Text recovers a text payload, stopping at the first zero byte.
func (e Event) Text() string {
	for i, b := range e.Payload {
		if b == 0 {
			return string(e.Payload[:i])
		}
	}
	return string(e.Payload[:])
}
