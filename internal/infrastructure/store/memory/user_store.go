// Package memory provides the default single-process store drivers.
// Each store keeps its critical sections to map bookkeeping only; all
// CPU-bound work (hashing, validation) happens in the services, outside
// any lock, so unrelated requests never serialize behind it.
package memory

import (
	"context"
	"sync"

	"github.com/minimart/storefront/internal/core/domain"
)

// UserStore is an in-memory UserRepository. A second index by email
// backs the uniqueness invariant.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]string // email -> user id
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (s *UserStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[user.Email]; taken {
		return nil, domain.ErrEmailTaken
	}

	stored := cloneUser(user)
	s.byID[stored.ID] = stored
	s.byEmail[stored.Email] = stored.ID
	return cloneUser(stored), nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(s.byID[id]), nil
}

func (s *UserStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (s *UserStore) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	if user.Email != current.Email {
		if ownerID, taken := s.byEmail[user.Email]; taken && ownerID != user.ID {
			return nil, domain.ErrEmailTaken
		}
		delete(s.byEmail, current.Email)
		s.byEmail[user.Email] = user.ID
	}

	stored := cloneUser(user)
	s.byID[stored.ID] = stored
	return cloneUser(stored), nil
}
