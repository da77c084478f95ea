package store

import (
	"sync"
)

// Store holds the current EventState and applies transitions to it. There is
// a single logical writer, but derived views may read concurrently, so the
// state swap is guarded. Transitions never edit slices in place, which makes
// the returned snapshots safe to read without copying.
type Store struct {
	mu    sync.RWMutex
	state EventState
}

func New(initial EventState) *Store {
	return &Store{state: initial}
}

// State returns the most recently committed state.
func (s *Store) State() EventState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies the action through Transition and commits the result as
// the new current state, returning it.
func (s *Store) Dispatch(action Action) EventState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Transition(s.state, action)
	return s.state
}
