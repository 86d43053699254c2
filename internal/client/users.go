package client

import (
	"context"
	"fmt"

	"adminapi/internal/model"
)

// Users is the data slice backing the user management table.
type Users struct {
	slice[model.User]
	api *API
}

// NewUsers returns an empty users slice bound to the API.
func NewUsers(api *API) *Users {
	u := &Users{api: api}
	u.id = func(usr model.User) int { return usr.ID }
	return u
}

// FetchAll loads the full user list and replaces the cache.
func (u *Users) FetchAll(ctx context.Context) error {
	return u.fetchAll(func() ([]model.User, error) {
		var out []model.User
		err := u.api.get(ctx, "/users/", &out)
		return out, err
	})
}

// Create submits a new user and appends the server-confirmed record. The
// optional password travels alongside the user fields and is never echoed
// back.
func (u *Users) Create(ctx context.Context, user model.User, password string) (model.User, error) {
	return u.create(func() (model.User, error) {
		payload := struct {
			model.User
			Password string `json:"password,omitempty"`
		}{User: user, Password: password}

		var out model.User
		err := u.api.post(ctx, "/users/", payload, &out)
		return out, err
	})
}

// Update merges the submitted fields into the user and replaces the cached
// record with the server's result.
func (u *Users) Update(ctx context.Context, id int, upd model.UserUpdate) (model.User, error) {
	return u.update(id, func() (model.User, error) {
		var out model.User
		err := u.api.put(ctx, fmt.Sprintf("/users/%d", id), upd, &out)
		return out, err
	})
}

// Delete removes the user on the server, then from the cache.
func (u *Users) Delete(ctx context.Context, id int) error {
	return u.remove(id, func() error {
		return u.api.delete(ctx, fmt.Sprintf("/users/%d", id))
	})
}

// Self fetches the authenticated user's own record.
func (u *Users) Self(ctx context.Context) (model.User, error) {
	var out model.User
	err := u.api.get(ctx, "/users/me", &out)
	return out, err
}

// UpdateSelf updates the authenticated user's profile fields.
func (u *Users) UpdateSelf(ctx context.Context, upd model.ProfileUpdate) (model.User, error) {
	var out model.User
	err := u.api.put(ctx, "/users/me", upd, &out)
	return out, err
}
