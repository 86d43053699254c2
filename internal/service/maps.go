package service

import (
	"context"
	"errors"

	"adminapi/internal/model"
	"adminapi/internal/repository"
)

// MapService defines the map data use cases: static history markers and
// region polygons, plus CRUD for preset locations and saved drawn shapes.
type MapService interface {
	History(ctx context.Context) ([]model.HistoryMarker, error)
	Regions(ctx context.Context) (model.RegionCollection, error)

	ListPresets(ctx context.Context) ([]model.PresetLocation, error)
	CreatePreset(ctx context.Context, p model.PresetLocation) (model.PresetLocation, error)
	UpdatePreset(ctx context.Context, id int, upd model.PresetUpdate) (model.PresetLocation, error)
	DeletePreset(ctx context.Context, id int) error

	ListShapes(ctx context.Context) ([]model.Shape, error)
	// SaveShapes appends the drawn shapes to the saved collection and
	// returns the full collection afterwards.
	SaveShapes(ctx context.Context, shapes []model.Shape) ([]model.Shape, error)
	UpdateShape(ctx context.Context, id int, geom model.ShapeGeometry) (model.Shape, error)
	DeleteShape(ctx context.Context, id int) error
}

type mapService struct {
	presets repository.PresetRepository
	shapes  repository.ShapeRepository
	markers []model.HistoryMarker
	regions model.RegionCollection
}

// NewMapService constructs a MapService. The markers and regions are static
// datasets served as-is.
func NewMapService(presets repository.PresetRepository, shapes repository.ShapeRepository,
	markers []model.HistoryMarker, regions model.RegionCollection) MapService {
	return &mapService{presets: presets, shapes: shapes, markers: markers, regions: regions}
}

func (s *mapService) History(ctx context.Context) ([]model.HistoryMarker, error) {
	out := make([]model.HistoryMarker, len(s.markers))
	copy(out, s.markers)
	return out, nil
}

func (s *mapService) Regions(ctx context.Context) (model.RegionCollection, error) {
	return s.regions, nil
}

func (s *mapService) ListPresets(ctx context.Context) ([]model.PresetLocation, error) {
	return s.presets.List(ctx)
}

func (s *mapService) CreatePreset(ctx context.Context, p model.PresetLocation) (model.PresetLocation, error) {
	return s.presets.Create(ctx, p)
}

func (s *mapService) UpdatePreset(ctx context.Context, id int, upd model.PresetUpdate) (model.PresetLocation, error) {
	p, err := s.presets.Update(ctx, id, upd)
	if errors.Is(err, repository.ErrNotFound) {
		return model.PresetLocation{}, ErrNotFound
	}
	return p, err
}

func (s *mapService) DeletePreset(ctx context.Context, id int) error {
	err := s.presets.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *mapService) ListShapes(ctx context.Context) ([]model.Shape, error) {
	return s.shapes.List(ctx)
}

func (s *mapService) SaveShapes(ctx context.Context, shapes []model.Shape) ([]model.Shape, error) {
	return s.shapes.Append(ctx, shapes)
}

func (s *mapService) UpdateShape(ctx context.Context, id int, geom model.ShapeGeometry) (model.Shape, error) {
	sh, err := s.shapes.Update(ctx, id, geom)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Shape{}, ErrNotFound
	}
	return sh, err
}

func (s *mapService) DeleteShape(ctx context.Context, id int) error {
	err := s.shapes.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
