package userstore

import (
	"errors"

	"github.com/knagata/partstrack/internal/entities"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Store is the user directory. The application holds its users in memory,
// seeded at startup; the interface keeps the auth gate independent of that
// choice.
type Store interface {
	Authenticate(username string, password string) (entities.User, error)
	Lookup(username string) (entities.User, bool)
}

type InMemory struct {
	users map[string]entities.User
}

func NewInMemory() *InMemory {
	return &InMemory{
		users: make(map[string]entities.User),
	}
}

// Add hashes the password and registers the user, replacing any previous
// entry with the same username.
func (s *InMemory) Add(username string, password string, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.users[username] = entities.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}

	return nil
}

func (s *InMemory) Authenticate(username string, password string) (entities.User, error) {
	user, ok := s.users[username]
	if !ok {
		return entities.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (s *InMemory) Lookup(username string) (entities.User, bool) {
	user, ok := s.users[username]
	return user, ok
}
