package service

import (
	"context"
	"errors"

	"adminapi/internal/model"
	"adminapi/internal/repository"
)

var ErrEmailRequired = errors.New("email is required")

// UserService defines the user directory use cases.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, id int, upd model.UserUpdate) (model.User, error)
	Delete(ctx context.Context, id int) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Create(ctx context.Context, u model.User) (model.User, error) {
	if u.Email == "" {
		return model.User{}, ErrEmailRequired
	}
	if u.Role == "" {
		u.Role = model.RoleViewer
	}
	if u.Status == "" {
		u.Status = model.StatusActive
	}
	return s.repo.Create(ctx, u)
}

func (s *userService) Update(ctx context.Context, id int, upd model.UserUpdate) (model.User, error) {
	u, err := s.repo.Update(ctx, id, upd)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

func (s *userService) Delete(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
