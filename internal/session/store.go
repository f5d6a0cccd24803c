// Package session keeps the per-user quiz session state between turns.
package session

import (
	"context"
	"sync"

	"github.com/lshigami/lingoquiz/internal/domain"
)

// Store holds at most one active session per user.
type Store interface {
	Get(ctx context.Context, userID int64) (*domain.Session, bool, error)
	Put(ctx context.Context, userID int64, s *domain.Session) error
	// Delete reports whether a session was present. Only the caller that
	// removed it may treat the session as finished.
	Delete(ctx context.Context, userID int64) (bool, error)
}

// ReviewStore keeps the answers of each user's most recently finished attempt.
type ReviewStore interface {
	SaveReview(ctx context.Context, userID int64, r *domain.Review) error
	LastReview(ctx context.Context, userID int64) (*domain.Review, bool, error)
}

// MemoryStore is the single-instance backend. Values are copied on the way
// in and out, so callers never share mutable state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
	reviews  map[int64]*domain.Review
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]*domain.Session),
		reviews:  make(map[int64]*domain.Review),
	}
}

func (m *MemoryStore) Get(_ context.Context, userID int64) (*domain.Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	if !ok {
		return nil, false, nil
	}
	return s.Clone(), true, nil
}

func (m *MemoryStore) Put(_ context.Context, userID int64, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = s.Clone()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[userID]
	delete(m.sessions, userID)
	return ok, nil
}

// Len reports the number of resident sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *MemoryStore) SaveReview(_ context.Context, userID int64, r *domain.Review) error {
	cp := *r
	cp.Answers = append([]domain.AnswerRecord(nil), r.Answers...)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews[userID] = &cp
	return nil
}

func (m *MemoryStore) LastReview(_ context.Context, userID int64) (*domain.Review, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reviews[userID]
	if !ok {
		return nil, false, nil
	}
	cp := *r
	cp.Answers = append([]domain.AnswerRecord(nil), r.Answers...)
	return &cp, true, nil
}
