package wizard

import "sync"

// Store keeps live sessions in memory, keyed by session id. The lock only
// guards the map; each session is driven by a single client at a time.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create makes a new session and registers it.
func (st *Store) Create() *Session {
	session := NewSession()

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[session.ID] = session

	return session
}

// Get returns the session with the given id, if it exists.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[id]
	return session, ok
}

// Delete removes a session. Called after submit; a submitted session
// cannot be replayed.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
