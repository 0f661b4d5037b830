package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// EarthRadiusKm is the mean Earth radius used by every distance computation
const EarthRadiusKm = 6371.0

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// PointOf converts a Location model to a GeoPoint
func PointOf(location models.Location) GeoPoint {
	return GeoPoint{Latitude: location.Latitude, Longitude: location.Longitude}
}

// ValidCoordinates reports whether lat is in [-90,90] and lon in [-180,180]
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Convert latitude and longitude from degrees to radians
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Encode converts a point to a geohash string
func Encode(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}

// CellCoverKm returns the smallest distance from a point in a geohash cell of the
// given precision to the edge of its 3x3 neighbourhood. Searches with a larger
// radius cannot be answered from the neighbourhood alone.
func CellCoverKm(precision uint, lat float64) float64 {
	box := geohash.BoundingBox(geohash.EncodeWithPrecision(lat, 0, precision))
	heightKm := (box.MaxLat - box.MinLat) * math.Pi / 180.0 * EarthRadiusKm
	widthKm := (box.MaxLng - box.MinLng) * math.Pi / 180.0 * EarthRadiusKm * math.Cos(lat*math.Pi/180.0)
	return math.Min(heightKm, widthKm)
}

// RoundTo rounds v to the given number of decimals
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
