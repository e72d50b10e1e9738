package state

import "sync"

// Store is the in-memory keyed store of per-chat state. Absence is not an
// error: the first reference to a chat id creates its zero-valued record.
// Nothing is ever evicted; state lives for the process lifetime.
type Store struct {
	mu     sync.Mutex
	groups map[string]*group
}

type group struct {
	mu    sync.Mutex
	state *GroupState
}

func NewStore() *Store {
	return &Store{groups: make(map[string]*group)}
}

func (s *Store) get(chatID string) *group {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[chatID]
	if !ok {
		g = &group{state: newGroupState()}
		s.groups[chatID] = g
	}
	return g
}

// GetOrCreate returns the state for a chat, creating it on first access.
// Callers on the interaction path should prefer MutateUnder; direct access
// is only safe when no other goroutine can touch the same chat.
func (s *Store) GetOrCreate(chatID string) *GroupState {
	return s.get(chatID).state
}

// MutateUnder runs fn while holding the chat's mutex. All handler access to
// group state goes through here, so two button presses in the same chat are
// serialized instead of racing on counters or the adventure scene index.
func (s *Store) MutateUnder(chatID string, fn func(g *GroupState)) {
	grp := s.get(chatID)
	grp.mu.Lock()
	defer grp.mu.Unlock()
	fn(grp.state)
}
