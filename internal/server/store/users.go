// Package store holds the demo backend's in-memory user directory. Calendar
// data is served by the generated repository; only identities live here.
package store

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var ErrNotFound = errors.New("not found")

type User struct {
	ID           int64
	Username     string
	Email        string
	Role         string
	CompanyID    int64
	PasswordHash []byte
}

// UserStore is a fixed seeded directory. The demo backend has no sign-up.
type UserStore struct {
	mu    sync.RWMutex
	users []User
}

type SeedUser struct {
	ID        int64
	Username  string
	Email     string
	Role      string
	CompanyID int64
	Password  string
}

// DefaultSeed matches the roster used by the generated calendar data.
func DefaultSeed() []SeedUser {
	return []SeedUser{
		{ID: 1, Username: "alice", Email: "alice@crewhive.local", Role: "MANAGER", CompanyID: 1, Password: "alice-pass"},
		{ID: 2, Username: "bob", Email: "bob@crewhive.local", Role: "EMPLOYEE", CompanyID: 1, Password: "bob-pass"},
		{ID: 3, Username: "carol", Email: "carol@crewhive.local", Role: "EMPLOYEE", CompanyID: 1, Password: "carol-pass"},
		{ID: 4, Username: "dave", Email: "dave@crewhive.local", Role: "EMPLOYEE", CompanyID: 1, Password: "dave-pass"},
	}
}

func NewUserStore(seed []SeedUser) (*UserStore, error) {
	s := &UserStore{}
	for _, u := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.users = append(s.users, User{
			ID: u.ID, Username: u.Username, Email: u.Email,
			Role: u.Role, CompanyID: u.CompanyID, PasswordHash: hash,
		})
	}
	return s, nil
}

// Authenticate looks a user up by email and checks the password.
func (s *UserStore) Authenticate(email, password string) (User, error) {
	u, err := s.FindByEmail(email)
	if err != nil {
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (s *UserStore) FindByEmail(email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (s *UserStore) FindByID(id int64) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}
