package stub

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/okian/proinvestix/internal/domain/model"
)

const minPasswordLength = 8

type account struct {
	user model.User
	hash []byte
}

// users is the in-memory account table.
type users struct {
	mu      sync.RWMutex
	byEmail map[string]*account
	byID    map[int]*account
	nextID  int
	cost    int
	now     func() time.Time
}

func newUsers(cost int, now func() time.Time) *users {
	return &users{
		byEmail: make(map[string]*account),
		byID:    make(map[int]*account),
		nextID:  1,
		cost:    cost,
		now:     now,
	}
}

func (s *users) add(req model.RegisterRequest, role model.Role) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	switch {
	case email == "":
		return model.User{}, fmt.Errorf("%w: email", ErrMissingField)
	case username == "":
		return model.User{}, fmt.Errorf("%w: username", ErrMissingField)
	case len(req.Password) < minPasswordLength:
		return model.User{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[email]; ok {
		return model.User{}, fmt.Errorf("User with email '%s' %w", email, ErrAlreadyExists)
	}
	for _, a := range s.byID {
		if strings.EqualFold(a.user.Username, username) {
			return model.User{}, fmt.Errorf("User with username '%s' %w", username, ErrAlreadyExists)
		}
	}
	a := &account{
		user: model.User{
			ID:        s.nextID,
			Username:  username,
			Email:     email,
			Role:      role,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			IsActive:  true,
			CreatedAt: s.now().UTC(),
		},
		hash: hash,
	}
	s.nextID++
	s.byEmail[email] = a
	s.byID[a.user.ID] = a
	return a.user, nil
}

func (s *users) authenticate(email, password string) (model.User, error) {
	s.mu.RLock()
	a, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	s.mu.RUnlock()
	if !ok || bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
		return model.User{}, ErrInvalidCredentials
	}
	if !a.user.IsActive {
		return model.User{}, ErrUserDisabled
	}

	s.mu.Lock()
	now := s.now().UTC()
	a.user.LastLogin = &now
	u := a.user
	s.mu.Unlock()
	return u, nil
}

func (s *users) get(id int) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[id]
	if !ok || !a.user.IsActive {
		return model.User{}, false
	}
	return a.user, true
}

func (s *users) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
