package memory

import (
	"context"
	"sync"

	"adminapi/internal/model"
	"adminapi/internal/repository"
)

// ShapeStore holds the saved drawn shapes in memory. The collection starts
// empty; saving drawings appends, it never replaces prior entries.
type ShapeStore struct {
	mu     sync.RWMutex
	shapes []model.Shape
}

var _ repository.ShapeRepository = (*ShapeStore)(nil)

func (s *ShapeStore) List(ctx context.Context) ([]model.Shape, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Shape, len(s.shapes))
	copy(out, s.shapes)
	return out, nil
}

func (s *ShapeStore) Append(ctx context.Context, shapes []model.Shape) ([]model.Shape, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sh := range shapes {
		sh.ID = nextID(s.shapes, func(sh model.Shape) int { return sh.ID })
		s.shapes = append(s.shapes, sh)
	}

	out := make([]model.Shape, len(s.shapes))
	copy(out, s.shapes)
	return out, nil
}

func (s *ShapeStore) Update(ctx context.Context, id int, geom model.ShapeGeometry) (model.Shape, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shapes {
		if s.shapes[i].ID == id {
			s.shapes[i].Geometry = geom
			return s.shapes[i], nil
		}
	}
	return model.Shape{}, repository.ErrNotFound
}

func (s *ShapeStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shapes {
		if s.shapes[i].ID == id {
			s.shapes = append(s.shapes[:i], s.shapes[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
