package snapshot

import (
	"sync"

	"SiliconMeter/internal/model"
)

// Store holds the last successfully fetched snapshot. Readers always see a
// complete snapshot: Replace swaps the value wholesale and a failed poll
// never touches it, so the view keeps rendering last-known-good data.
type Store struct {
	mu  sync.RWMutex
	cur *model.Snapshot
}

func NewStore() *Store { return &Store{} }

// Replace publishes a new snapshot. The caller must not mutate it afterwards.
func (s *Store) Replace(snap *model.Snapshot) {
	s.mu.Lock()
	s.cur = snap
	s.mu.Unlock()
}

// Current returns the published snapshot, or nil before the first
// successful poll.
func (s *Store) Current() *model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}
