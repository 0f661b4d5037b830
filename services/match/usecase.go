package match

import (
	"context"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dispatch/services/match MatchUC,PositionSource,ProfileSource,OpenRideSource

// MatchUC finds and ranks candidates around a point
type MatchUC interface {
	NearbyDrivers(ctx context.Context, q models.NearbyDriversQuery) ([]*models.NearbyDriver, error)
	NearbyRideRequests(ctx context.Context, origin models.Location, radiusKm float64, window time.Duration) ([]*models.NearbyRide, error)
	IsInServiceArea(lat, lon float64) bool
	EstimateETA(distanceKm, speedKmh float64) int
}

// PositionSource is the spatial prefilter over live driver positions
type PositionSource interface {
	FindDriversWithin(ctx context.Context, lat, lon, radiusKm float64) ([]*models.DriverPosition, error)
}

// ProfileSource returns driver profiles keyed by account id
type ProfileSource interface {
	Profiles(ctx context.Context, accountIDs []string) (map[string]*models.DriverProfile, error)
}

// OpenRideSource lists rides still searching for a driver
type OpenRideSource interface {
	ListOpenRides(ctx context.Context, createdAfter time.Time) ([]*models.Ride, error)
}
