package githubauth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// stateTTL bounds how long an authorization round-trip to GitHub may take.
const stateTTL = 10 * time.Minute

type flowState struct {
	redirect  string
	createdAt time.Time
}

// StateStore holds anti-forgery states between the redirect to GitHub and
// the callback. This is the only server-side state in the login flow, and it
// is short-lived: a state is consumed on first use or expires after the TTL.
type StateStore struct {
	mu     sync.Mutex
	states map[string]flowState
	now    func() time.Time
}

func NewStateStore() *StateStore {
	return &StateStore{
		states: make(map[string]flowState),
		now:    time.Now,
	}
}

// Create mints a fresh state token remembering the post-login redirect
// target.
func (s *StateStore) Create(redirect string) string {
	state := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	s.states[state] = flowState{redirect: redirect, createdAt: s.now()}
	return state
}

// Consume validates the state and removes it. A state is single-use.
func (s *StateStore) Consume(state string) (redirect string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fs, exists := s.states[state]
	if !exists {
		return "", false
	}
	delete(s.states, state)
	if s.now().Sub(fs.createdAt) > stateTTL {
		return "", false
	}
	return fs.redirect, true
}

// prune drops expired states. Called under the lock.
func (s *StateStore) prune() {
	cutoff := s.now().Add(-stateTTL)
	for state, fs := range s.states {
		if fs.createdAt.Before(cutoff) {
			delete(s.states, state)
		}
	}
}
