package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"credgate/authd/internal/model"
	"credgate/authd/internal/store"
)

type Store struct {
	mu sync.Mutex

	users  map[int64]model.User
	nextID int64
}

func NewStore() *Store {
	return &Store{
		users:  make(map[int64]model.User),
		nextID: 1,
	}
}

func (s *Store) CreateUser(_ context.Context, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(u.Username) == "" {
		return model.User{}, errWithCode("username_required")
	}

	// Exact match: usernames are case-sensitive.
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return model.User{}, store.ErrConflict
		}
	}

	now := time.Now().UTC()
	u.ID = s.nextID
	s.nextID++
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = u
	return u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type errWithCode string

func (e errWithCode) Error() string { return string(e) }
