package events

import (
	"sync"

	"github.com/rs/zerolog"
)

// DefaultBufferSize is the per-subscriber channel buffer
const DefaultBufferSize = 16

// Subscription receives events of the types it asked for, or every event when
// it asked for none.
type Subscription struct {
	C     <-chan Event
	ch    chan Event
	types map[EventType]bool
}

func (s *Subscription) wants(t EventType) bool {
	return len(s.types) == 0 || s.types[t]
}

// Bus fans events out to subscribers. Publishing never blocks: a subscriber
// whose buffer is full misses the event.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[*Subscription]struct{}
	bufferSize  int
	log         zerolog.Logger
}

// NewBus creates an event bus. bufferSize <= 0 uses DefaultBufferSize.
func NewBus(bufferSize int, log zerolog.Logger) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Bus{
		subscribers: make(map[*Subscription]struct{}),
		bufferSize:  bufferSize,
		log:         log.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe registers a subscriber for the given types
func (b *Bus) Subscribe(types ...EventType) *Subscription {
	ch := make(chan Event, b.bufferSize)
	sub := &Subscription{C: ch, ch: ch, types: make(map[EventType]bool, len(types))}
	for _, t := range types {
		sub.types[t] = true
	}

	b.mu.Lock()
	b.subscribers[sub] = struct{}{}
	total := len(b.subscribers)
	b.mu.Unlock()

	b.log.Debug().Int("total_subscribers", total).Msg("New subscriber added")
	return sub
}

// Unsubscribe removes a subscriber and closes its channel. Repeated calls are
// no-ops.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[sub]; !ok {
		return
	}
	delete(b.subscribers, sub)
	close(sub.ch)

	b.log.Debug().Int("total_subscribers", len(b.subscribers)).Msg("Subscriber removed")
}

// Publish delivers event to every interested subscriber and returns how many
// received it.
func (b *Bus) Publish(event Event) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for sub := range b.subscribers {
		if !sub.wants(event.Type) {
			continue
		}
		select {
		case sub.ch <- event:
			delivered++
		default:
			b.log.Warn().Str("event_type", string(event.Type)).Msg("Subscriber channel full, event dropped")
		}
	}
	return delivered
}

// SubscriberCount returns the number of live subscriptions
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
