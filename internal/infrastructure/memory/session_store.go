package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore sesiones en memoria del proceso; se pierden al reiniciar.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]session
	now      func() time.Time
}

type session struct {
	userID    string
	expiresAt time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]session), now: time.Now}
}

func (s *SessionStore) Save(_ context.Context, sessionID, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session{userID: userID, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *SessionStore) Exists(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return false, nil
	}
	if !s.now().Before(sess.expiresAt) {
		delete(s.sessions, sessionID)
		return false, nil
	}
	return true, nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
