package directory

import (
	"strings"
	"sync"
)

// Store holds the user directory in memory. Records are append-only and kept
// in insertion order; onboarding never edits an existing entry.
type Store struct {
	mu    sync.RWMutex
	users []User
	creds map[string]string // user id -> bcrypt password hash
}

func NewStore() *Store {
	return &Store{creds: map[string]string{}}
}

func (s *Store) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) ListByRole(role string) []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []User
	for _, user := range s.users {
		if user.Role == role {
			out = append(out, user)
		}
	}
	return out
}

func (s *Store) Get(id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *Store) GetByEmail(email string) (User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if strings.ToLower(user.Email) == normalized {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

// Append adds a freshly onboarded user. The caller validates the record; the
// store only guards the email uniqueness invariant.
func (s *Store) Append(user User, passwordHash string) error {
	if !ValidRole(user.Role) {
		return ErrInvalidRole
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return ErrDuplicateEmail
		}
	}
	s.users = append(s.users, user)
	if passwordHash != "" {
		s.creds[user.ID] = passwordHash
	}
	return nil
}

func (s *Store) PasswordHash(userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.creds[userID]
	return hash, ok
}
