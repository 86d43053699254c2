package memory

import (
	"context"
	"sync"

	"adminapi/internal/model"
	"adminapi/internal/repository"
)

// AccountStore holds the fixed credential table plus profile overrides saved
// through PUT /users/me. Overrides persist only while the process runs.
type AccountStore struct {
	mu       sync.RWMutex
	accounts []model.Account
	profiles map[int]model.ProfileUpdate
}

var _ repository.AccountRepository = (*AccountStore)(nil)

func (s *AccountStore) FindByEmail(ctx context.Context, email string) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return model.Account{}, repository.ErrNotFound
}

func (s *AccountStore) FindByID(ctx context.Context, id int) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Account{}, repository.ErrNotFound
}

func (s *AccountStore) Profile(ctx context.Context, id int) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profileLocked(id)
}

func (s *AccountStore) UpdateProfile(ctx context.Context, id int, upd model.ProfileUpdate) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.profileLocked(id); err != nil {
		return model.User{}, err
	}
	if s.profiles == nil {
		s.profiles = make(map[int]model.ProfileUpdate)
	}

	p := s.profiles[id]
	if upd.Name != nil {
		p.Name = upd.Name
	}
	if upd.Email != nil {
		p.Email = upd.Email
	}
	if upd.AvatarMode != nil {
		p.AvatarMode = upd.AvatarMode
		if *upd.AvatarMode == model.AvatarLetter {
			// reverting to a letter avatar discards the stored image
			p.AvatarBase64 = nil
		}
	}
	if upd.AvatarBase64 != nil {
		p.AvatarBase64 = upd.AvatarBase64
	}
	s.profiles[id] = p

	return s.profileLocked(id)
}

// profileLocked merges the base account with its overrides. Callers hold mu.
func (s *AccountStore) profileLocked(id int) (model.User, error) {
	for _, a := range s.accounts {
		if a.ID != id {
			continue
		}
		u := model.User{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
		if p, ok := s.profiles[id]; ok {
			if p.Name != nil {
				u.Name = *p.Name
			}
			if p.Email != nil {
				u.Email = *p.Email
			}
			if p.AvatarMode != nil {
				u.AvatarMode = *p.AvatarMode
			}
			if p.AvatarBase64 != nil {
				u.AvatarBase64 = *p.AvatarBase64
			}
		}
		return u, nil
	}
	return model.User{}, repository.ErrNotFound
}
