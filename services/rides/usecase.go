package rides

import (
	"context"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/pkg/scheduler"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dispatch/services/rides RideUC

// RideUC defines the ride lifecycle business logic
type RideUC interface {
	EstimateFare(ctx context.Context, req models.FareEstimateRequest) ([]*models.FareEstimate, error)
	CreateRide(ctx context.Context, riderID string, req models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error)
	GetActiveRideForUser(ctx context.Context, userID string) (*models.Ride, error)
	Transition(ctx context.Context, rideID string, target models.RideStatus, actor models.Actor) (*models.Ride, error)
	Accept(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error)
	Arrive(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error)
	Start(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error)
	Complete(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error)
	Cancel(ctx context.Context, rideID string, actor models.Actor, reason string) (*models.Ride, error)
	Retry(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error)
	ApplyDocumentAction(ctx context.Context, req models.DocumentTransitionRequest) (*models.Document, error)
}

//go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks github.com/piresc/dispatch/services/rides RideNotifier,RideTracker,DriverFinder,DriverProfiles,Timers

// RideNotifier delivers lifecycle events to connected clients
type RideNotifier interface {
	// PublishToRide reaches every ride channel of the ride plus the rider and driver personal channels
	PublishToRide(ctx context.Context, ride *models.Ride, event models.Event)
	PublishToUser(ctx context.Context, userID string, event models.Event)
	PublishToTopic(ctx context.Context, topic, userID string, event models.Event)
}

// RideTracker receives the start and stop signals for periodic ride refreshes
type RideTracker interface {
	Track(ride *models.Ride)
	Untrack(rideID string)
}

// DriverFinder ranks dispatch candidates
type DriverFinder interface {
	NearbyDrivers(ctx context.Context, q models.NearbyDriversQuery) ([]*models.NearbyDriver, error)
	IsInServiceArea(lat, lon float64) bool
}

// DriverProfiles reads the eligibility flags of drivers by account id
type DriverProfiles interface {
	Profiles(ctx context.Context, accountIDs []string) (map[string]*models.DriverProfile, error)
}

// Timers schedules the one-shot offer and scheduled-ride jobs
type Timers interface {
	After(key string, delay time.Duration, fn scheduler.JobFunc) bool
	Cancel(key string) bool
}
