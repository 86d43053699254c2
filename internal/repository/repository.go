// Package repository defines data access for the dashboard collections.
// No business logic here — strictly storage operations. The authoritative
// implementation lives in repository/memory; every collection assigns integer
// ids itself (max existing + 1), callers never choose ids.
package repository

import (
	"context"
	"errors"

	"adminapi/internal/model"
)

// ErrNotFound is returned when an operation references an id absent from the
// collection.
var ErrNotFound = errors.New("not found")

// UserRepository is the user directory collection.
type UserRepository interface {
	// List returns all directory users.
	List(ctx context.Context) ([]model.User, error)

	// Create stores a new user, assigning the next id, and returns it.
	Create(ctx context.Context, u model.User) (model.User, error)

	// Update merges the non-nil fields of upd into the user with the given id.
	Update(ctx context.Context, id int, upd model.UserUpdate) (model.User, error)

	// Delete removes a user by id.
	Delete(ctx context.Context, id int) error
}

// AccountRepository is the fixed credential table plus the per-account
// profile overrides kept while the server runs.
type AccountRepository interface {
	// FindByEmail returns the login account for the given email.
	FindByEmail(ctx context.Context, email string) (model.Account, error)

	// FindByID returns the login account for the given user id.
	FindByID(ctx context.Context, id int) (model.Account, error)

	// Profile returns the account's public view merged with any saved
	// profile overrides. The password is never included.
	Profile(ctx context.Context, id int) (model.User, error)

	// UpdateProfile merges the non-nil fields of upd into the account's
	// profile overrides and returns the merged view.
	UpdateProfile(ctx context.Context, id int, upd model.ProfileUpdate) (model.User, error)
}

// FileRepository is the file manager collection.
type FileRepository interface {
	// List returns all files with the content payload stripped.
	List(ctx context.Context) ([]model.FileRecord, error)

	// Get returns a single file including its content payload.
	Get(ctx context.Context, id int) (model.FileRecord, error)

	// Create stores a new file (including content), assigning the next id.
	Create(ctx context.Context, f model.FileRecord) (model.FileRecord, error)

	// Update merges the non-nil metadata fields of upd into the file and
	// returns the updated record without its content payload.
	Update(ctx context.Context, id int, upd model.FileUpdate) (model.FileRecord, error)

	// Delete removes a file by id.
	Delete(ctx context.Context, id int) error
}

// PresetRepository is the preset map locations collection.
type PresetRepository interface {
	List(ctx context.Context) ([]model.PresetLocation, error)
	Create(ctx context.Context, p model.PresetLocation) (model.PresetLocation, error)
	Update(ctx context.Context, id int, upd model.PresetUpdate) (model.PresetLocation, error)
	Delete(ctx context.Context, id int) error
}

// ShapeRepository is the saved drawn-shapes collection.
type ShapeRepository interface {
	// List returns all saved shapes.
	List(ctx context.Context) ([]model.Shape, error)

	// Append assigns ids to each incoming shape and adds them to the
	// collection without removing prior entries. Saving drawings
	// accumulates; it never replaces.
	Append(ctx context.Context, shapes []model.Shape) ([]model.Shape, error)

	// Update replaces the geometry of the shape with the given id.
	Update(ctx context.Context, id int, geom model.ShapeGeometry) (model.Shape, error)

	// Delete removes a shape by id.
	Delete(ctx context.Context, id int) error
}
