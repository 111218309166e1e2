package ledger

import (
	"iter"
	"sync"

	"github.com/eatclub/pantry-cli/internal/fault"
)

// MemoryStore is the in-memory Store. A single mutex makes the
// check-then-append in Append an indivisible critical section, so two
// concurrent optimistic writers can never both observe a stale version
// and both succeed.
type MemoryStore struct {
	mu     sync.Mutex
	events []Event
}

// NewMemoryStore returns an empty in-memory ledger.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append implements Store.
func (s *MemoryStore) Append(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := uint64(len(s.events))
	if event.ExpectedVersion != nil && *event.ExpectedVersion != current {
		return fault.Concurrency("version mismatch: expected %d, current %d", *event.ExpectedVersion, current)
	}
	s.events = append(s.events, event)
	return nil
}

// Stream implements Store. The iteration walks a copy taken under the
// lock, so in-flight appends are never partially observed.
func (s *MemoryStore) Stream() iter.Seq[Event] {
	snapshot := s.Snapshot()
	return func(yield func(Event) bool) {
		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}

// Snapshot implements Store.
func (s *MemoryStore) Snapshot() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Version implements Store.
func (s *MemoryStore) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint64(len(s.events))
}
