package orchestrator

import "sync"

// sessionLocks hands out one mutex per active session and frees it when
// the last holder releases. Entries are reference counted instead of
// cached, so a session's lock can never be dropped while a goroutine
// holds or waits on it, and idle sessions cost nothing.
type sessionLocks struct {
	mu      sync.Mutex
	entries map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{entries: make(map[string]*sessionLock)}
}

// acquire blocks until the session's lock is held and returns the
// release func. Every acquire must be paired with exactly one release.
func (s *sessionLocks) acquire(sessionID string) func() {
	s.mu.Lock()
	entry, ok := s.entries[sessionID]
	if !ok {
		entry = &sessionLock{}
		s.entries[sessionID] = entry
	}
	entry.refs++
	s.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		s.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(s.entries, sessionID)
		}
		s.mu.Unlock()
	}
}
