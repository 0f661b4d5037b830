package rides

import (
	"context"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/dispatch/services/rides RideRepo

// RideRepo defines the ride persistence operations
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	// GetRide fails with apperrors.ErrNotFound for unknown ids
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	// UpdateStatus stores ride only while the stored status still equals from.
	// It fails with apperrors.ErrConflict when another writer got there first.
	UpdateStatus(ctx context.Context, ride *models.Ride, from models.RideStatus) error
	// ActiveRideForDriver and ActiveRideForRider return nil when the user has no ongoing ride
	ActiveRideForDriver(ctx context.Context, driverID string) (*models.Ride, error)
	ActiveRideForRider(ctx context.Context, riderID string) (*models.Ride, error)
	ListOpenRides(ctx context.Context, createdAfter time.Time) ([]*models.Ride, error)
	ListByStatus(ctx context.Context, statuses []models.RideStatus) ([]*models.Ride, error)
}
