package hovertest

import (
	"sync"

	"github.com/go-hover/hover/pkg/config"
)

// MemoryStore is an in-memory config.Store.
type MemoryStore struct {
	mu    sync.Mutex
	snap  config.Snapshot
	found bool

	saveErr error

	Saves  int
	Clears int
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// FailSave makes every subsequent Save return err.
func (s *MemoryStore) FailSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

func (s *MemoryStore) Load() (config.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, s.found, nil
}

func (s *MemoryStore) Save(snap config.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.snap = snap
	s.found = true
	s.Saves++
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = config.Snapshot{}
	s.found = false
	s.Clears++
	return nil
}

// Persisted reports whether a snapshot is currently stored.
func (s *MemoryStore) Persisted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.found
}
