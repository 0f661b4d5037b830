package tracking

import (
	"context"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/pkg/scheduler"
)

//go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks github.com/piresc/dispatch/services/tracking Jobs,RideSource,PositionSource,DriverSource,Publisher,Dashboards,FareQuoter,ETAEstimator

// Jobs is the keyed scheduler the tracker runs its periodic work on
type Jobs interface {
	Every(key string, interval time.Duration, fn scheduler.JobFunc) bool
	Cancel(key string) bool
	Running(key string) bool
}

// RideSource reads rides straight from storage
type RideSource interface {
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
}

// PositionSource returns a driver's last stored position
type PositionSource interface {
	GetDriverPosition(ctx context.Context, driverID string) (*models.DriverPosition, bool, error)
}

// DriverSource lists the drivers currently eligible for dispatch
type DriverSource interface {
	EligibleDrivers(ctx context.Context) ([]*models.DriverProfile, error)
}

// Publisher delivers tracking events to subscribed connections
type Publisher interface {
	Publish(ctx context.Context, key models.ChannelKey, event models.Event) int
	PublishToUser(ctx context.Context, userID string, event models.Event)
	PublishToRide(ctx context.Context, ride *models.Ride, event models.Event)
	HasMembers(key models.ChannelKey) bool
}

// Dashboards builds the periodic dashboard updates
type Dashboards interface {
	Refresh(ctx context.Context, sub models.DashboardSubscription) ([]models.DashboardUpdate, error)
}

// FareQuoter prices a trip
type FareQuoter interface {
	Fare(vt models.VehicleType, distanceKm, minutes float64) (float64, error)
}

// ETAEstimator converts a remaining distance and the driver's speed to whole minutes
type ETAEstimator interface {
	EstimateETA(distanceKm, speedKmh float64) int
}
