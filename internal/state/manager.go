package state

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Manager hands out sessions keyed by the session cookie. Sessions that
// go untouched for the TTL are evicted together with their state.
type Manager struct {
	mu       sync.Mutex
	sessions *gocache.Cache
	debounce time.Duration
}

func NewManager(sessionTTL, debounce time.Duration) *Manager {
	return &Manager{
		sessions: gocache.New(sessionTTL, time.Minute),
		debounce: debounce,
	}
}

// Get returns the session for id, creating it on first use. Concurrent
// first requests for an id resolve to the same session. Each call
// refreshes the TTL so active operators never lose their state.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.sessions.Get(id); ok {
		s := v.(*Session)
		m.sessions.Set(id, s, gocache.DefaultExpiration)
		return s
	}
	s := newSession(m.debounce)
	m.sessions.Set(id, s, gocache.DefaultExpiration)
	return s
}

// Len reports how many sessions are live.
func (m *Manager) Len() int {
	return m.sessions.ItemCount()
}
