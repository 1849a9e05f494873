// Package events is the upward notification surface of the pipelines: an
// in-process fan-out bus and a WebSocket hub streaming bus events to clients.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies an ingestion outcome.
type Kind string

const (
	// KindTranslated means text was recognised, translated and recorded.
	KindTranslated Kind = "translated"
	// KindNoTextFound means recognition produced no text.
	KindNoTextFound Kind = "no_text_found"
)

// Event is one ingestion outcome.
type Event struct {
	ID             uuid.UUID `json:"id"`
	Kind           Kind      `json:"kind"`
	Modality       string    `json:"modality"`
	SourceText     string    `json:"source_text,omitempty"`
	TranslatedText string    `json:"translated_text,omitempty"`
	At             time.Time `json:"at"`
}

// New returns an event with a fresh ID and the current UTC time.
func New(kind Kind, modality string) Event {
	return Event{ID: uuid.New(), Kind: kind, Modality: modality, At: time.Now().UTC()}
}

// DefaultBuffer is the per-subscriber queue length.
const DefaultBuffer = 64

// Bus fans events out to subscribers. Publish never blocks: a subscriber
// whose buffer is full misses the event.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a subscriber with the given buffer size (DefaultBuffer
// when <= 0). The returned function unsubscribes and closes the channel.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if c, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(c)
			}
		})
	}
}

// Publish delivers e to every subscriber with room in its buffer.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Close closes every subscriber channel. Later subscriptions get a closed channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *Bus) subscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
