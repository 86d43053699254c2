package client

import (
	"context"
	"fmt"

	"adminapi/internal/model"
)

// Files is the data slice backing the file manager. The list holds metadata
// only; fetching a single file fills in its content in place.
type Files struct {
	slice[model.FileRecord]
	api *API
}

// NewFiles returns an empty files slice bound to the API.
func NewFiles(api *API) *Files {
	f := &Files{api: api}
	f.id = func(rec model.FileRecord) int { return rec.ID }
	return f
}

// FetchAll loads the metadata list and replaces the cache. Content fields
// are empty until FetchOne is called for a record.
func (f *Files) FetchAll(ctx context.Context) error {
	return f.fetchAll(func() ([]model.FileRecord, error) {
		var out []model.FileRecord
		err := f.api.get(ctx, "/files/", &out)
		return out, err
	})
}

// FetchOne loads a single record including its content and refreshes the
// cached copy in place.
func (f *Files) FetchOne(ctx context.Context, id int) (model.FileRecord, error) {
	return f.fetchOne(id, func() (model.FileRecord, error) {
		var out model.FileRecord
		err := f.api.get(ctx, fmt.Sprintf("/files/%d", id), &out)
		return out, err
	})
}

// Upload submits a new file and appends the server-confirmed record.
func (f *Files) Upload(ctx context.Context, rec model.FileRecord) (model.FileRecord, error) {
	return f.create(func() (model.FileRecord, error) {
		var out model.FileRecord
		err := f.api.post(ctx, "/files/", rec, &out)
		return out, err
	})
}

// Update merges editable metadata into the record and replaces the cached
// copy with the server's result.
func (f *Files) Update(ctx context.Context, id int, upd model.FileUpdate) (model.FileRecord, error) {
	return f.update(id, func() (model.FileRecord, error) {
		var out model.FileRecord
		err := f.api.put(ctx, fmt.Sprintf("/files/%d", id), upd, &out)
		return out, err
	})
}

// Delete removes the file on the server, then from the cache.
func (f *Files) Delete(ctx context.Context, id int) error {
	return f.remove(id, func() error {
		return f.api.delete(ctx, fmt.Sprintf("/files/%d", id))
	})
}
