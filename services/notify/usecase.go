package notify

import (
	"context"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// Sink is one outbound connection. Send must not block.
type Sink interface {
	ConnectionID() string
	Send(data []byte) bool
}

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dispatch/services/notify NotifyUC,DashboardUC

// NotifyUC fans server events out to subscribed connections
type NotifyUC interface {
	Attach(sink Sink)
	Detach(connID string) []models.ChannelKey
	Subscribe(connID string, key models.ChannelKey) bool
	Unsubscribe(connID string, key models.ChannelKey) bool
	HasMembers(key models.ChannelKey) bool
	Publish(ctx context.Context, key models.ChannelKey, event models.Event) int
	PublishToUser(ctx context.Context, userID string, event models.Event)
	PublishToDriver(ctx context.Context, ref models.DriverRef, event models.Event) error
	PublishToRide(ctx context.Context, ride *models.Ride, event models.Event)
	PublishToTopic(ctx context.Context, topic, userID string, event models.Event)
}

// DashboardUC builds dashboard payloads for a subscription
type DashboardUC interface {
	InitialSnapshot(ctx context.Context, sub models.DashboardSubscription) (models.DashboardUpdate, error)
	Refresh(ctx context.Context, sub models.DashboardSubscription) ([]models.DashboardUpdate, error)
	RecordEarnings(snapshot models.EarningsSnapshot)
}

//go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks github.com/piresc/dispatch/services/notify DriverResolver,RideReader,Proximity,PositionReader,LocationUpdater,Streams

// DriverResolver maps a driver reference to its account id
type DriverResolver interface {
	ResolveAccountID(ctx context.Context, ref models.DriverRef) (string, error)
}

// RideReader exposes the ride lookups the notifier needs
type RideReader interface {
	GetRide(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error)
	GetActiveRideForUser(ctx context.Context, userID string) (*models.Ride, error)
}

// Proximity runs the dashboard searches
type Proximity interface {
	NearbyDrivers(ctx context.Context, q models.NearbyDriversQuery) ([]*models.NearbyDriver, error)
	NearbyRideRequests(ctx context.Context, origin models.Location, radiusKm float64, window time.Duration) ([]*models.NearbyRide, error)
}

// PositionReader returns a driver's last stored position
type PositionReader interface {
	GetDriverPosition(ctx context.Context, driverID string) (*models.DriverPosition, bool, error)
}

// LocationUpdater accepts driver positions sent over the socket
type LocationUpdater interface {
	UpdateDriverLocation(ctx context.Context, ref models.DriverRef, update models.PositionUpdate) (*models.DriverPosition, error)
}

// Streams starts and stops the periodic per-subscriber jobs
type Streams interface {
	StartRideStream(rideID, userID string) bool
	StopRideStream(rideID, userID string)
	StartDashboard(sub models.DashboardSubscription) bool
	StopDashboard(userID, role string)
}
