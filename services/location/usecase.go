package location

import (
	"context"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dispatch/services/location LocationUC,DriverResolver,ActiveRideFinder,RideNotifier

// LocationUC defines the location business logic
type LocationUC interface {
	UpdateDriverLocation(ctx context.Context, ref models.DriverRef, update models.PositionUpdate) (*models.DriverPosition, error)
	GetDriverPosition(ctx context.Context, driverID string) (*models.DriverPosition, bool, error)
	RecentlyUpdatedSince(ctx context.Context, driverID string, maxAge time.Duration) (bool, error)
}

// DriverResolver maps a driver reference of either kind to the account id
type DriverResolver interface {
	ResolveAccountID(ctx context.Context, ref models.DriverRef) (string, error)
}

// ActiveRideFinder returns the ongoing ride of a driver, nil when there is none
type ActiveRideFinder interface {
	ActiveRideForDriver(ctx context.Context, driverID string) (*models.Ride, error)
}

// RideNotifier pushes an event to everyone following a ride
type RideNotifier interface {
	PublishToRide(ctx context.Context, ride *models.Ride, event models.Event)
}
