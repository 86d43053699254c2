package service

import (
	"context"
	"errors"

	"adminapi/internal/auth"
	"adminapi/internal/model"
	"adminapi/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("not found")
)

// LoginResult is the response body of a successful login.
type LoginResult struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        model.User `json:"user"`
}

// AuthService defines the login and self-profile use cases.
type AuthService interface {
	// Login checks the credentials against the fixed account table and
	// issues a bearer token on success.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Self returns the authenticated user's profile, overrides merged in.
	Self(ctx context.Context, userID int) (model.User, error)

	// UpdateSelf applies a partial profile update and returns the merged view.
	UpdateSelf(ctx context.Context, userID int, upd model.ProfileUpdate) (model.User, error)
}

type authService struct {
	accounts repository.AccountRepository
	tokens   *auth.Manager
}

// NewAuthService constructs an AuthService over the account table and token
// manager.
func NewAuthService(accounts repository.AccountRepository, tokens *auth.Manager) AuthService {
	return &authService{accounts: accounts, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	acc, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if acc.Password != password {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(acc.ID, acc.Email)
	if err != nil {
		return nil, err
	}

	user, err := s.accounts.Profile(ctx, acc.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: token, TokenType: "bearer", User: user}, nil
}

func (s *authService) Self(ctx context.Context, userID int) (model.User, error) {
	user, err := s.accounts.Profile(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, ErrNotFound
	}
	return user, err
}

func (s *authService) UpdateSelf(ctx context.Context, userID int, upd model.ProfileUpdate) (model.User, error) {
	user, err := s.accounts.UpdateProfile(ctx, userID, upd)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, ErrNotFound
	}
	return user, err
}
