package session

import (
	"context"
	"sync"

	"github.com/astrabot/odin-insight/internal/apperrors"
	"github.com/astrabot/odin-insight/internal/odin"
	"github.com/astrabot/odin-insight/internal/price"
	"github.com/astrabot/odin-insight/internal/ws"
)

// ObserverFactory builds a price observer for a token's page. It is injected
// so tests can substitute a scripted observer and so the manager stays
// ignorant of how price changes are detected.
type ObserverFactory func(tokenID string) *price.Observer

// Manager owns the active viewing sessions, at most one per token. Starting a
// session for a token that already has one replaces it, which is the explicit
// reset boundary: the old session's cache is discarded wholesale.
type Manager struct {
	client          odin.Client
	hub             *ws.Hub
	observerFactory ObserverFactory

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session Manager. hub and observerFactory may be nil,
// in which case sessions run without broadcasts or price observation.
func NewManager(client odin.Client, hub *ws.Hub, observerFactory ObserverFactory) *Manager {
	return &Manager{
		client:          client,
		hub:             hub,
		observerFactory: observerFactory,
		sessions:        make(map[string]*Session),
	}
}

// Start creates a session for the token, replacing and discarding any
// existing one, and begins price observation. Observation is tied to the
// session's lifetime, not the caller's: it runs until the session is replaced,
// ended, or the manager shuts down.
func (m *Manager) Start(tokenID string) (*Session, error) {
	if tokenID == "" {
		return nil, apperrors.ErrEmptyTokenID
	}

	var observer *price.Observer
	if m.observerFactory != nil {
		observer = m.observerFactory(tokenID)
	}

	s := newSession(tokenID, m.client, observer, m.hub)

	m.mu.Lock()
	old := m.sessions[tokenID]
	m.sessions[tokenID] = s
	m.mu.Unlock()

	if old != nil {
		old.close()
	}

	if observer != nil {
		observer.Start(context.Background())
	}

	return s, nil
}

// Get returns the active session for the token.
func (m *Manager) Get(tokenID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[tokenID]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return s, nil
}

// End tears the token's session down and discards its cache.
func (m *Manager) End(tokenID string) error {
	m.mu.Lock()
	s, ok := m.sessions[tokenID]
	delete(m.sessions, tokenID)
	m.mu.Unlock()

	if !ok {
		return apperrors.ErrSessionNotFound
	}

	s.close()
	return nil
}

// Shutdown ends every active session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}
