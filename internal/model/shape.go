package model

import (
	"encoding/json"
	"fmt"
)

// ShapeKind discriminates the geometry variants a drawn shape can carry.
type ShapeKind string

const (
	ShapeMarker    ShapeKind = "marker"
	ShapeCircle    ShapeKind = "circle"
	ShapeRectangle ShapeKind = "rectangle"
	ShapePolygon   ShapeKind = "polygon"
	ShapePolyline  ShapeKind = "polyline"
)

// LatLng is a single geographic coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is an axis-aligned bounding box given by its two corners.
type Bounds struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
}

// ShapeGeometry is the closed set of geometry variants. Each variant carries
// only the coordinate fields relevant to its kind; decoding is an exhaustive
// switch on the kind tag, not optional-field probing.
type ShapeGeometry interface {
	Kind() ShapeKind
}

// MarkerGeometry is a single dropped point.
type MarkerGeometry struct {
	Position LatLng
}

// CircleGeometry is a centre point with a radius in metres.
type CircleGeometry struct {
	Center LatLng
	Radius float64
}

// RectangleGeometry is a drawn bounding box.
type RectangleGeometry struct {
	Bounds Bounds
}

// PolygonGeometry is a closed ring of vertices.
type PolygonGeometry struct {
	Points []LatLng
}

// PolylineGeometry is an open sequence of vertices.
type PolylineGeometry struct {
	Points []LatLng
}

func (MarkerGeometry) Kind() ShapeKind    { return ShapeMarker }
func (CircleGeometry) Kind() ShapeKind    { return ShapeCircle }
func (RectangleGeometry) Kind() ShapeKind { return ShapeRectangle }
func (PolygonGeometry) Kind() ShapeKind   { return ShapePolygon }
func (PolylineGeometry) Kind() ShapeKind  { return ShapePolyline }

// Shape is a user-drawn map geometry. A Shape with ID zero is an ephemeral
// client-side draft; a persisted shape always carries a server-assigned id.
type Shape struct {
	ID       int
	Geometry ShapeGeometry
}

// shapeJSON is the flat wire form of a Shape. Geometry fields not belonging
// to the tagged kind stay absent.
type shapeJSON struct {
	ID     int       `json:"id,omitempty"`
	Type   ShapeKind `json:"type"`
	Lat    *float64  `json:"lat,omitempty"`
	Lng    *float64  `json:"lng,omitempty"`
	Radius *float64  `json:"radius,omitempty"`
	Bounds *Bounds   `json:"bounds,omitempty"`
	Points []LatLng  `json:"points,omitempty"`
}

// MarshalJSON encodes the shape in its flat wire form.
func (s Shape) MarshalJSON() ([]byte, error) {
	if s.Geometry == nil {
		return nil, fmt.Errorf("shape %d has no geometry", s.ID)
	}
	w := shapeJSON{ID: s.ID, Type: s.Geometry.Kind()}
	switch g := s.Geometry.(type) {
	case MarkerGeometry:
		w.Lat, w.Lng = &g.Position.Lat, &g.Position.Lng
	case CircleGeometry:
		w.Lat, w.Lng, w.Radius = &g.Center.Lat, &g.Center.Lng, &g.Radius
	case RectangleGeometry:
		b := g.Bounds
		w.Bounds = &b
	case PolygonGeometry:
		w.Points = g.Points
	case PolylineGeometry:
		w.Points = g.Points
	default:
		return nil, fmt.Errorf("unknown shape geometry %T", s.Geometry)
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the flat wire form back into the tagged variant.
// An unknown or missing type tag is a decode error.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var w shapeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	geom, err := w.geometry()
	if err != nil {
		return err
	}
	s.ID = w.ID
	s.Geometry = geom
	return nil
}

func (w shapeJSON) geometry() (ShapeGeometry, error) {
	switch w.Type {
	case ShapeMarker:
		if w.Lat == nil || w.Lng == nil {
			return nil, fmt.Errorf("marker shape requires lat and lng")
		}
		return MarkerGeometry{Position: LatLng{Lat: *w.Lat, Lng: *w.Lng}}, nil
	case ShapeCircle:
		if w.Lat == nil || w.Lng == nil || w.Radius == nil {
			return nil, fmt.Errorf("circle shape requires lat, lng and radius")
		}
		return CircleGeometry{Center: LatLng{Lat: *w.Lat, Lng: *w.Lng}, Radius: *w.Radius}, nil
	case ShapeRectangle:
		if w.Bounds == nil {
			return nil, fmt.Errorf("rectangle shape requires bounds")
		}
		return RectangleGeometry{Bounds: *w.Bounds}, nil
	case ShapePolygon:
		if len(w.Points) == 0 {
			return nil, fmt.Errorf("polygon shape requires points")
		}
		return PolygonGeometry{Points: w.Points}, nil
	case ShapePolyline:
		if len(w.Points) == 0 {
			return nil, fmt.Errorf("polyline shape requires points")
		}
		return PolylineGeometry{Points: w.Points}, nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", w.Type)
	}
}
