package memory

import (
	"context"
	"sync"

	"pos/internal/domain/checkout"
	"pos/internal/domain/repository"
)

// sessionRepository implements the repository.SessionRepository interface in memory.
type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[int]checkout.Session
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{
		sessions: make(map[int]checkout.Session),
	}
}

// Get returns the session of a table.
func (repo *sessionRepository) Get(_ context.Context, tableNumber int) (checkout.Session, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	session, ok := repo.sessions[tableNumber]
	if !ok {
		return checkout.Session{}, repository.ErrSessionNotFound
	}

	return session.Clone(), nil
}

// Save stores the session, replacing any previous one for the table.
func (repo *sessionRepository) Save(_ context.Context, session checkout.Session) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.sessions[session.TableNumber] = session.Clone()

	return nil
}

// Delete removes the session of a table.
func (repo *sessionRepository) Delete(_ context.Context, tableNumber int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.sessions, tableNumber)

	return nil
}

// List returns every stored session.
func (repo *sessionRepository) List(_ context.Context) ([]checkout.Session, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	sessions := make([]checkout.Session, 0, len(repo.sessions))
	for _, session := range repo.sessions {
		sessions = append(sessions, session.Clone())
	}

	return sessions, nil
}
