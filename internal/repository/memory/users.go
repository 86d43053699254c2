package memory

import (
	"context"
	"sync"

	"adminapi/internal/model"
	"adminapi/internal/repository"
)

// UserStore holds the user directory in memory.
type UserStore struct {
	mu    sync.RWMutex
	users []model.User
}

var _ repository.UserRepository = (*UserStore)(nil)

func (s *UserStore) List(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *UserStore) Create(ctx context.Context, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = nextID(s.users, func(u model.User) int { return u.ID })
	s.users = append(s.users, u)
	return u, nil
}

func (s *UserStore) Update(ctx context.Context, id int, upd model.UserUpdate) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		u := &s.users[i]
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		if upd.Role != nil {
			u.Role = *upd.Role
		}
		if upd.Status != nil {
			u.Status = *upd.Status
		}
		if upd.Joined != nil {
			u.Joined = *upd.Joined
		}
		return *u, nil
	}
	return model.User{}, repository.ErrNotFound
}

func (s *UserStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
