package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-web-scaffold/models"
)

// memoryUserStorage keeps users in process memory. The existence check and
// the append happen under one lock, so concurrent AddUser calls with the same
// name store exactly one user.
type memoryUserStorage struct {
	mu    sync.RWMutex
	users []models.User
	names map[string]struct{}
}

// NewMemoryUserStorage returns an empty in-memory [UserStorage].
func NewMemoryUserStorage() UserStorage {
	return &memoryUserStorage{
		users: make([]models.User, 0),
		names: make(map[string]struct{}),
	}
}

func (s *memoryUserStorage) AddUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.names[user.Name]; ok {
		return ErrUserAlreadyExists
	}

	s.names[user.Name] = struct{}{}
	s.users = append(s.users, user)

	return nil
}

func (s *memoryUserStorage) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)

	return users, nil
}
