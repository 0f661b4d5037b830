package utils

import (
	"testing"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An L-shaped area: the north-east quadrant of its bounding box is outside the polygon.
var lShape = []models.Location{
	{Latitude: 51.0, Longitude: -1.0},
	{Latitude: 51.0, Longitude: 0.0},
	{Latitude: 51.5, Longitude: 0.0},
	{Latitude: 51.5, Longitude: -0.5},
	{Latitude: 52.0, Longitude: -0.5},
	{Latitude: 52.0, Longitude: -1.0},
}

func TestNewGeofence_BoundingBoxAcceptsConcaveGap(t *testing.T) {
	fence, err := NewGeofence(models.GeofenceConfig{Strategy: models.GeofenceBoundingBox, Polygon: lShape})
	require.NoError(t, err)

	assert.True(t, fence.Contains(GeoPoint{Latitude: 51.2, Longitude: -0.7}))
	assert.True(t, fence.Contains(GeoPoint{Latitude: 51.8, Longitude: -0.2}), "box includes the notch")
	assert.False(t, fence.Contains(GeoPoint{Latitude: 52.1, Longitude: -0.7}))
	assert.False(t, fence.Contains(GeoPoint{Latitude: 51.2, Longitude: 0.1}))
}

func TestNewGeofence_Polygon(t *testing.T) {
	fence, err := NewGeofence(models.GeofenceConfig{Strategy: models.GeofencePolygon, Polygon: lShape})
	require.NoError(t, err)

	assert.True(t, fence.Contains(GeoPoint{Latitude: 51.2, Longitude: -0.7}))
	assert.True(t, fence.Contains(GeoPoint{Latitude: 51.8, Longitude: -0.7}))
	assert.False(t, fence.Contains(GeoPoint{Latitude: 51.8, Longitude: -0.2}), "notch is outside")
	assert.False(t, fence.Contains(GeoPoint{Latitude: 52.1, Longitude: -0.7}))
}

func TestNewGeofence_Errors(t *testing.T) {
	_, err := NewGeofence(models.GeofenceConfig{Strategy: "circle", Polygon: lShape})
	assert.Error(t, err)

	_, err = NewGeofence(models.GeofenceConfig{Polygon: lShape[:2]})
	assert.Error(t, err)

	_, err = NewGeofence(models.GeofenceConfig{Polygon: []models.Location{{Latitude: 95}, {}, {Longitude: 1}}})
	assert.Error(t, err)
}

func TestNewGeofence_EmptyPolygonAcceptsAll(t *testing.T) {
	fence, err := NewGeofence(models.GeofenceConfig{})
	require.NoError(t, err)
	assert.True(t, fence.Contains(GeoPoint{Latitude: -45, Longitude: 170}))
}
