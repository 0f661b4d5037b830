package location

import (
	"context"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/dispatch/services/location LocationRepo

// LocationRepo stores the last known position of every driver
type LocationRepo interface {
	// UpsertDriverPosition replaces the stored position of pos.DriverID and returns what was stored
	UpsertDriverPosition(ctx context.Context, pos *models.DriverPosition) (*models.DriverPosition, error)
	// GetDriverPosition returns found=false when the driver has no live position
	GetDriverPosition(ctx context.Context, driverID string) (*models.DriverPosition, bool, error)
	// ForEachDriverPosition calls fn for every live position until fn returns false
	ForEachDriverPosition(ctx context.Context, fn func(*models.DriverPosition) bool) error
	// FindDriversWithin is a coarse prefilter. It may return positions slightly outside the radius.
	FindDriversWithin(ctx context.Context, lat, lon, radiusKm float64) ([]*models.DriverPosition, error)
	// AcquireUpdateSlot reports whether accountID may write a position at the given instant
	AcquireUpdateSlot(ctx context.Context, accountID string, at time.Time, window time.Duration) (bool, error)
}
