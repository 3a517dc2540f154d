package intake

import "sync"

// Sessions holds at most one pending state per operator id
type Sessions struct {
	mu      sync.Mutex
	pending map[int64]State
}

// NewSessions creates empty session table
func NewSessions() *Sessions {
	return &Sessions{pending: make(map[int64]State)}
}

// Get returns pending state of operator
func (s *Sessions) Get(operator int64) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.pending[operator]
	return st, ok
}

// Put replaces pending state of operator
func (s *Sessions) Put(operator int64, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[operator] = st
}

// Clear drops pending state of operator, reports whether one existed
func (s *Sessions) Clear(operator int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.pending[operator]
	delete(s.pending, operator)
	return ok
}
