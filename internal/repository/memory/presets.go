package memory

import (
	"context"
	"sync"

	"adminapi/internal/model"
	"adminapi/internal/repository"
)

// PresetStore holds the preset map locations in memory.
type PresetStore struct {
	mu      sync.RWMutex
	presets []model.PresetLocation
}

var _ repository.PresetRepository = (*PresetStore)(nil)

func (s *PresetStore) List(ctx context.Context) ([]model.PresetLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.PresetLocation, len(s.presets))
	copy(out, s.presets)
	return out, nil
}

func (s *PresetStore) Create(ctx context.Context, p model.PresetLocation) (model.PresetLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = nextID(s.presets, func(p model.PresetLocation) int { return p.ID })
	s.presets = append(s.presets, p)
	return p, nil
}

func (s *PresetStore) Update(ctx context.Context, id int, upd model.PresetUpdate) (model.PresetLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.presets {
		if s.presets[i].ID != id {
			continue
		}
		p := &s.presets[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Lat != nil {
			p.Lat = *upd.Lat
		}
		if upd.Lng != nil {
			p.Lng = *upd.Lng
		}
		if upd.Type != nil {
			p.Type = *upd.Type
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.Project != nil {
			p.Project = *upd.Project
		}
		return *p, nil
	}
	return model.PresetLocation{}, repository.ErrNotFound
}

func (s *PresetStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.presets {
		if s.presets[i].ID == id {
			s.presets = append(s.presets[:i], s.presets[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
