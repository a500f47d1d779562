package builder

import (
	"errors"
	"sync"
	"time"

	"github.com/AnanduApillAi/kendo-forms/pkg/logger"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager tracks open builder sessions and evicts the ones left idle past
// their TTL.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewManager(ttl time.Duration) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	if ttl > 0 {
		go m.janitor()
	}
	return m
}

// Create opens a new empty session.
func (m *Manager) Create() *Session {
	s := NewSession()

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	logger.WithSession(s.ID).Debug("Builder session opened")
	return s
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete closes a session. Unknown ids are reported.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Count returns the number of open sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the janitor.
func (m *Manager) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Manager) janitor() {
	interval := m.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.evictIdle()
		}
	}
}

func (m *Manager) evictIdle() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		// Sessions with an outstanding generation request stay alive
		// until it settles.
		if s.Generating() {
			continue
		}
		if s.IdleSince().Before(cutoff) {
			delete(m.sessions, id)
			logger.WithSession(id).Debug("Builder session evicted")
		}
	}
}
