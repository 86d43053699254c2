package memory

import (
	"context"
	"sync"

	"adminapi/internal/model"
	"adminapi/internal/repository"
)

// FileStore holds the file manager collection in memory, content included.
// List responses strip the content payload; only Get returns it.
type FileStore struct {
	mu    sync.RWMutex
	files []model.FileRecord
}

var _ repository.FileRepository = (*FileStore)(nil)

func (s *FileStore) List(ctx context.Context) ([]model.FileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.FileRecord, 0, len(s.files))
	for _, f := range s.files {
		out = append(out, f.WithoutContent())
	}
	return out, nil
}

func (s *FileStore) Get(ctx context.Context, id int) (model.FileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.files {
		if f.ID == id {
			return f, nil
		}
	}
	return model.FileRecord{}, repository.ErrNotFound
}

func (s *FileStore) Create(ctx context.Context, f model.FileRecord) (model.FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = nextID(s.files, func(f model.FileRecord) int { return f.ID })
	s.files = append(s.files, f)
	return f, nil
}

func (s *FileStore) Update(ctx context.Context, id int, upd model.FileUpdate) (model.FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.files {
		if s.files[i].ID != id {
			continue
		}
		f := &s.files[i]
		if upd.Description != nil {
			f.Description = *upd.Description
		}
		if upd.Tags != nil {
			f.Tags = *upd.Tags
		}
		if upd.Project != nil {
			f.Project = *upd.Project
		}
		if upd.Folder != nil {
			f.Folder = *upd.Folder
		}
		return f.WithoutContent(), nil
	}
	return model.FileRecord{}, repository.ErrNotFound
}

func (s *FileStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.files {
		if s.files[i].ID == id {
			s.files = append(s.files[:i], s.files[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
