package hovertest

import (
	"sync"

	"github.com/go-hover/hover/pkg/engine"
)

// RecordingSink is an engine.EventSink that remembers every event it
// receives. Safe for concurrent use.
type RecordingSink struct {
	mu     sync.Mutex
	events []engine.Event
	err    error
}

// NewRecordingSink returns an empty sink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

// Fail makes every subsequent Emit return err; events are still recorded.
// The engine treats delivery as fire-and-forget, so tests use this to
// prove a failing observer does not disturb the interaction.
func (s *RecordingSink) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *RecordingSink) Emit(ev engine.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

// Events returns a copy of everything recorded so far.
func (s *RecordingSink) Events() []engine.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]engine.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Kinds returns just the event kinds, in delivery order.
func (s *RecordingSink) Kinds() []engine.EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]engine.EventKind, len(s.events))
	for i, ev := range s.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// Count returns how many events of the given kind were recorded.
func (s *RecordingSink) Count(kind engine.EventKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ev := range s.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards everything recorded so far.
func (s *RecordingSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
