package client

import (
	"context"
	"fmt"
	"sync"

	"adminapi/internal/model"
)

// Markers is the read-only slice of historical map markers.
type Markers struct {
	slice[model.HistoryMarker]
	api *API
}

// NewMarkers returns an empty markers slice bound to the API.
func NewMarkers(api *API) *Markers {
	m := &Markers{api: api}
	m.id = func(mk model.HistoryMarker) int { return mk.ID }
	return m
}

// FetchAll loads the marker set. The server side is static, so a single
// fetch per session suffices.
func (m *Markers) FetchAll(ctx context.Context) error {
	return m.fetchAll(func() ([]model.HistoryMarker, error) {
		var out []model.HistoryMarker
		err := m.api.get(ctx, "/maps/history", &out)
		return out, err
	})
}

// Regions caches the world-region GeoJSON overlay. It is a single document
// rather than a collection, so it carries its own small state machine.
type Regions struct {
	api *API

	mu      sync.RWMutex
	value   model.RegionCollection
	loaded  bool
	loading bool
	lastErr string
}

// NewRegions returns an empty regions cache bound to the API.
func NewRegions(api *API) *Regions {
	return &Regions{api: api}
}

// Fetch loads the FeatureCollection. A failure leaves any previously loaded
// document in place.
func (r *Regions) Fetch(ctx context.Context) error {
	r.mu.Lock()
	r.loading = true
	r.lastErr = ""
	r.mu.Unlock()

	var out model.RegionCollection
	err := r.api.get(ctx, "/maps/geojson", &out)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if err != nil {
		r.lastErr = err.Error()
		return err
	}
	r.value = out
	r.loaded = true
	return nil
}

// Value returns the cached document and whether it has been loaded.
func (r *Regions) Value() (model.RegionCollection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value, r.loaded
}

// Loading reports whether a fetch is in flight.
func (r *Regions) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// Err returns the display message of the last failed fetch.
func (r *Regions) Err() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// Presets is the data slice of user-managed preset locations.
type Presets struct {
	slice[model.PresetLocation]
	api *API
}

// NewPresets returns an empty presets slice bound to the API.
func NewPresets(api *API) *Presets {
	p := &Presets{api: api}
	p.id = func(loc model.PresetLocation) int { return loc.ID }
	return p
}

// FetchAll loads all preset locations and replaces the cache.
func (p *Presets) FetchAll(ctx context.Context) error {
	return p.fetchAll(func() ([]model.PresetLocation, error) {
		var out []model.PresetLocation
		err := p.api.get(ctx, "/maps/custom", &out)
		return out, err
	})
}

// Create submits a new preset and appends the server-confirmed record.
func (p *Presets) Create(ctx context.Context, loc model.PresetLocation) (model.PresetLocation, error) {
	return p.create(func() (model.PresetLocation, error) {
		var out model.PresetLocation
		err := p.api.post(ctx, "/maps/custom", loc, &out)
		return out, err
	})
}

// Update merges the submitted fields into the preset and replaces the
// cached record.
func (p *Presets) Update(ctx context.Context, id int, upd model.PresetUpdate) (model.PresetLocation, error) {
	return p.update(id, func() (model.PresetLocation, error) {
		var out model.PresetLocation
		err := p.api.put(ctx, fmt.Sprintf("/maps/custom/%d", id), upd, &out)
		return out, err
	})
}

// Delete removes the preset on the server, then from the cache.
func (p *Presets) Delete(ctx context.Context, id int) error {
	return p.remove(id, func() error {
		return p.api.delete(ctx, fmt.Sprintf("/maps/custom/%d", id))
	})
}

// Shapes is the data slice of saved drawn shapes.
type Shapes struct {
	slice[model.Shape]
	api *API
}

// NewShapes returns an empty shapes slice bound to the API.
func NewShapes(api *API) *Shapes {
	s := &Shapes{api: api}
	s.id = func(sh model.Shape) int { return sh.ID }
	return s
}

// FetchAll loads all saved shapes and replaces the cache.
func (s *Shapes) FetchAll(ctx context.Context) error {
	return s.fetchAll(func() ([]model.Shape, error) {
		var out []model.Shape
		err := s.api.get(ctx, "/maps/shapes", &out)
		return out, err
	})
}

// SaveDrawn appends the drafts to the server-side collection. The server
// responds with the full accumulated collection, which replaces the cache
// wholesale.
func (s *Shapes) SaveDrawn(ctx context.Context, drafts []model.Shape) ([]model.Shape, error) {
	return s.replaceAll(func() ([]model.Shape, error) {
		var out []model.Shape
		err := s.api.post(ctx, "/maps/shapes", drafts, &out)
		return out, err
	})
}

// Update replaces the geometry of a saved shape and refreshes the cached
// record.
func (s *Shapes) Update(ctx context.Context, id int, geom model.ShapeGeometry) (model.Shape, error) {
	return s.update(id, func() (model.Shape, error) {
		var out model.Shape
		err := s.api.put(ctx, fmt.Sprintf("/maps/shapes/%d", id), model.Shape{ID: id, Geometry: geom}, &out)
		return out, err
	})
}

// Delete removes the shape on the server, then from the cache.
func (s *Shapes) Delete(ctx context.Context, id int) error {
	return s.remove(id, func() error {
		return s.api.delete(ctx, fmt.Sprintf("/maps/shapes/%d", id))
	})
}
