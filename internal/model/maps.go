package model

// HistoryMarker is a static financial-centre marker shown on the history map.
type HistoryMarker struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Value   float64 `json:"value"`
	Change  float64 `json:"change"`
	Project string  `json:"project,omitempty"`
}

// RegionCollection is a GeoJSON FeatureCollection of world-region polygons.
type RegionCollection struct {
	Type     string          `json:"type"`
	Features []RegionFeature `json:"features"`
}

// RegionFeature is a single GeoJSON Feature carrying region statistics.
type RegionFeature struct {
	Type       string           `json:"type"`
	Properties RegionProperties `json:"properties"`
	Geometry   RegionGeometry   `json:"geometry"`
}

// RegionProperties holds the descriptive metadata attached to a region.
type RegionProperties struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Population string `json:"population"`
	GDP        string `json:"gdp"`
	Growth     string `json:"growth"`
	Project    string `json:"project,omitempty"`
}

// RegionGeometry is a GeoJSON polygon geometry ([rings][points][lng,lat]).
type RegionGeometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// PresetLocation is a named point of interest managed through the presets CRUD.
type PresetLocation struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Project     string  `json:"project,omitempty"`
}

// PresetUpdate carries a partial update for a preset location.
// Nil fields are left untouched; the id is immutable.
type PresetUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Description *string  `json:"description,omitempty"`
	Project     *string  `json:"project,omitempty"`
}
