package utils

import (
	"fmt"
	"math"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// Geofence decides whether a coordinate is inside the service area
type Geofence interface {
	Contains(point GeoPoint) bool
}

// NewGeofence builds the geofence for the configured strategy.
// An empty polygon yields a geofence that accepts every point.
func NewGeofence(cfg models.GeofenceConfig) (Geofence, error) {
	if len(cfg.Polygon) == 0 {
		return unbounded{}, nil
	}
	if len(cfg.Polygon) < 3 {
		return nil, fmt.Errorf("service area needs at least 3 vertices, got %d", len(cfg.Polygon))
	}

	vertices := make([]GeoPoint, 0, len(cfg.Polygon))
	for _, v := range cfg.Polygon {
		if !ValidCoordinates(v.Latitude, v.Longitude) {
			return nil, fmt.Errorf("invalid service area vertex (%v, %v)", v.Latitude, v.Longitude)
		}
		vertices = append(vertices, PointOf(v))
	}

	switch cfg.Strategy {
	case "", models.GeofenceBoundingBox:
		return NewBoundingBox(vertices), nil
	case models.GeofencePolygon:
		return &Polygon{vertices: vertices}, nil
	default:
		return nil, fmt.Errorf("unknown geofence strategy %q", cfg.Strategy)
	}
}

type unbounded struct{}

func (unbounded) Contains(GeoPoint) bool { return true }

// BoundingBox accepts any point inside the min/max latitude and longitude of the polygon vertices.
// Points inside the box but outside a concave or rotated polygon are accepted.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// NewBoundingBox derives the axis-aligned box of a set of vertices
func NewBoundingBox(vertices []GeoPoint) *BoundingBox {
	box := &BoundingBox{
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
		MinLon: math.Inf(1), MaxLon: math.Inf(-1),
	}
	for _, v := range vertices {
		box.MinLat = math.Min(box.MinLat, v.Latitude)
		box.MaxLat = math.Max(box.MaxLat, v.Latitude)
		box.MinLon = math.Min(box.MinLon, v.Longitude)
		box.MaxLon = math.Max(box.MaxLon, v.Longitude)
	}
	return box
}

func (b *BoundingBox) Contains(p GeoPoint) bool {
	return p.Latitude >= b.MinLat && p.Latitude <= b.MaxLat &&
		p.Longitude >= b.MinLon && p.Longitude <= b.MaxLon
}

// Polygon is true point-in-polygon containment using ray casting on raw degrees
type Polygon struct {
	vertices []GeoPoint
}

func (pg *Polygon) Contains(p GeoPoint) bool {
	inside := false
	n := len(pg.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := pg.vertices[i], pg.vertices[j]
		if (vi.Latitude > p.Latitude) != (vj.Latitude > p.Latitude) {
			crossLon := (vj.Longitude-vi.Longitude)*(p.Latitude-vi.Latitude)/(vj.Latitude-vi.Latitude) + vi.Longitude
			if p.Longitude < crossLon {
				inside = !inside
			}
		}
	}
	return inside
}
