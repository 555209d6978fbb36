package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

// SessionStorage provides in-memory storage for practice sessions.
// A learner has at most one session; storing a new one replaces the old.
type SessionStorage struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*entities.Session
	byLearner map[int64]uuid.UUID
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions:  make(map[uuid.UUID]*entities.Session),
		byLearner: make(map[int64]uuid.UUID),
	}
}

// Store saves a session.
func (s *SessionStorage) Store(session *entities.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byLearner[session.LearnerID]; ok {
		delete(s.sessions, prev)
	}
	s.sessions[session.ID] = session
	s.byLearner[session.LearnerID] = session.ID
}

// Get retrieves a session by ID.
func (s *SessionStorage) Get(id uuid.UUID) (*entities.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	return session, ok
}

// GetByLearner returns the learner's current session.
func (s *SessionStorage) GetByLearner(learnerID int64) (*entities.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byLearner[learnerID]
	if !ok {
		return nil, false
	}
	session, ok := s.sessions[id]
	return session, ok
}

// Delete removes a session.
func (s *SessionStorage) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteLocked(id)
}

// Prune drops sessions started before cutoff and returns how many were removed.
func (s *SessionStorage) Prune(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.StartedAt.Before(cutoff) {
			s.deleteLocked(id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStorage) deleteLocked(id uuid.UUID) {
	session, ok := s.sessions[id]
	if !ok {
		return
	}
	delete(s.sessions, id)
	if cur, ok := s.byLearner[session.LearnerID]; ok && cur == id {
		delete(s.byLearner, session.LearnerID)
	}
}
