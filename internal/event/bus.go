package event

import (
	"errors"
	"sync"
)

// ErrBusFull is returned by Subscribe when all subscriber slots are taken.
var ErrBusFull = errors.New("event: bus full")

// subscriber pairs a destination channel with a bitmask of the event types
// it wants delivered.
type subscriber struct {
	mask uint32
	ch   chan Event
}

// EventBus is a small publish/subscribe dispatcher decoupling the sensor
// poll loop from its consumers. Services subscribe with a channel and the
// event types they care about; publishers broadcast without knowing who
// listens.
//
// The bus holds at most 8 subscribers and 32 distinct event types (the
// width of the subscription bitmask). It is safe for concurrent use:
// multiple goroutines may publish at once and subscriptions may be added
// while publishing is active.
type EventBus struct {
	mu   sync.RWMutex
	subs [8]subscriber
	n    int
}

// NewBus creates a ready-to-use [EventBus].
func NewBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers ch to receive events matching any of the given types.
// The caller owns the channel and is responsible for draining it. Returns
// [ErrBusFull] once the subscriber capacity is exhausted.
func (b *EventBus) Subscribe(ch chan Event, types ...EventType) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.n >= len(b.subs) {
		return ErrBusFull
	}

	var mask uint32
	for _, t := range types {
		mask |= 1 << t
	}

	b.subs[b.n] = subscriber{mask: mask, ch: ch}
	b.n++
	return nil
}

// Publish delivers e to every subscriber whose mask matches e.Type.
// Delivery is non-blocking: a full subscriber channel drops the event for
// that subscriber rather than stalling the publisher, so subscriber
// channels should be sized to absorb transient bursts.
func (b *EventBus) Publish(e Event) {
	b.mu.RLock()
	n := b.n
	b.mu.RUnlock()

	for i := 0; i < n; i++ {
		if b.subs[i].mask&(1<<e.Type) != 0 {
			select {
			case b.subs[i].ch <- e:
			default:
				// slow consumer, event dropped
			}
		}
	}
}
