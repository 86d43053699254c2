package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminapi/internal/model"
	"adminapi/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestUserStore_CreateAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	users, err := s.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 10)

	created, err := s.Users.Create(ctx, model.User{Name: "Kate Nguyen", Email: "user11@example.com", Role: model.RoleViewer})
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)

	// ids never regress, even after deleting the newest record
	require.NoError(t, s.Users.Delete(ctx, 11))
	again, err := s.Users.Create(ctx, model.User{Name: "Liam Ortiz", Email: "user12@example.com", Role: model.RoleViewer})
	require.NoError(t, err)
	assert.Greater(t, again.ID, 10)
}

func TestUserStore_UpdateMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	updated, err := s.Users.Update(ctx, 2, model.UserUpdate{Status: strPtr(model.StatusInactive)})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, "Bob Smith", updated.Name)
	assert.Equal(t, model.StatusInactive, updated.Status)
}

func TestUserStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Users.Update(ctx, 99, model.UserUpdate{Name: strPtr("x")})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = s.Users.Delete(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFileStore_ListStripsContent(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	files, err := s.Files.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 3)
	for _, f := range files {
		assert.Empty(t, f.ContentBase64, "list response must not carry content for %s", f.Name)
	}

	full, err := s.Files.Get(ctx, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, full.ContentBase64)
}

func TestFileStore_UpdateKeepsFixedFields(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	tags := []string{"docs"}
	updated, err := s.Files.Update(ctx, 1, model.FileUpdate{
		Description: strPtr("updated notes"),
		Tags:        &tags,
		Folder:      strPtr("archive"),
	})
	require.NoError(t, err)

	assert.Equal(t, "readme.txt", updated.Name)
	assert.Equal(t, "updated notes", updated.Description)
	assert.Equal(t, "archive", updated.Folder)
	assert.Empty(t, updated.ContentBase64)

	// content survives metadata updates
	full, err := s.Files.Get(ctx, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, full.ContentBase64)
}

func TestFileStore_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	err := s.Files.Delete(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	files, _ := s.Files.List(ctx)
	assert.Len(t, files, 3)
}

func TestShapeStore_AppendAccumulates(t *testing.T) {
	ctx := context.Background()
	s := New()

	first, err := s.Shapes.Append(ctx, []model.Shape{
		{Geometry: model.MarkerGeometry{Position: model.LatLng{Lat: 48.8, Lng: 2.3}}},
		{Geometry: model.CircleGeometry{Center: model.LatLng{Lat: 51.5, Lng: -0.1}, Radius: 500}},
	})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, first[0].ID)
	assert.Equal(t, 2, first[1].ID)

	second, err := s.Shapes.Append(ctx, []model.Shape{
		{Geometry: model.PolygonGeometry{Points: []model.LatLng{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}, {Lat: 0, Lng: 1}}}},
	})
	require.NoError(t, err)
	assert.Len(t, second, 3, "saving shapes accumulates, it does not replace")
	assert.Equal(t, 3, second[2].ID)

	all, err := s.Shapes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestShapeStore_UpdateReplacesGeometry(t *testing.T) {
	ctx := context.Background()
	s := New()

	saved, err := s.Shapes.Append(ctx, []model.Shape{
		{Geometry: model.MarkerGeometry{Position: model.LatLng{Lat: 1, Lng: 2}}},
	})
	require.NoError(t, err)

	updated, err := s.Shapes.Update(ctx, saved[0].ID, model.CircleGeometry{Center: model.LatLng{Lat: 1, Lng: 2}, Radius: 100})
	require.NoError(t, err)
	assert.Equal(t, model.ShapeCircle, updated.Geometry.Kind())
}

func TestAccountStore_ProfileOverrides(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	base, err := s.Accounts.Profile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Admin User", base.Name)

	merged, err := s.Accounts.UpdateProfile(ctx, 1, model.ProfileUpdate{
		Name:         strPtr("Renamed Admin"),
		AvatarMode:   strPtr(model.AvatarImage),
		AvatarBase64: strPtr("aGk="),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Admin", merged.Name)
	assert.Equal(t, model.AvatarImage, merged.AvatarMode)
	assert.Equal(t, "aGk=", merged.AvatarBase64)

	// reverting to a letter avatar clears the stored image
	reverted, err := s.Accounts.UpdateProfile(ctx, 1, model.ProfileUpdate{AvatarMode: strPtr(model.AvatarLetter)})
	require.NoError(t, err)
	assert.Equal(t, model.AvatarLetter, reverted.AvatarMode)
	assert.Empty(t, reverted.AvatarBase64)

	// the credential table itself is untouched
	acc, err := s.Accounts.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Admin User", acc.Name)
}

func TestPresetStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	presets, err := s.Presets.List(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 12)

	created, err := s.Presets.Create(ctx, model.PresetLocation{Name: "Louvre", Lat: 48.861, Lng: 2.336, Type: "landmark"})
	require.NoError(t, err)
	assert.Equal(t, 13, created.ID)

	updated, err := s.Presets.Update(ctx, created.ID, model.PresetUpdate{Description: strPtr("Paris, France")})
	require.NoError(t, err)
	assert.Equal(t, "Louvre", updated.Name)
	assert.Equal(t, "Paris, France", updated.Description)

	require.NoError(t, s.Presets.Delete(ctx, created.ID))
	assert.ErrorIs(t, s.Presets.Delete(ctx, created.ID), repository.ErrNotFound)
}
