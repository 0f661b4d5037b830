package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	nrpkg "github.com/piresc/dispatch/internal/pkg/newrelic"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/location"
)

// DefaultUpdateInterval is the minimum spacing between accepted writes of one account
const DefaultUpdateInterval = time.Second

// maxClockSkew is how far ahead of server time a device timestamp may be
const maxClockSkew = 5 * time.Second

// geohashPrecision of the geohash attached to published updates (about 150 m)
const geohashPrecision = 7

// LocationUC implements location.LocationUC
type LocationUC struct {
	repo     location.LocationRepo
	gw       location.LocationGW
	drivers  location.DriverResolver
	rides    location.ActiveRideFinder
	notifier location.RideNotifier
	interval time.Duration
	now      models.Clock
}

// NewLocationUC creates a new location use case. gw may be nil when NATS is not configured.
func NewLocationUC(
	repo location.LocationRepo,
	gw location.LocationGW,
	drivers location.DriverResolver,
	rides location.ActiveRideFinder,
	notifier location.RideNotifier,
	interval time.Duration,
	now models.Clock,
) *LocationUC {
	if interval <= 0 {
		interval = DefaultUpdateInterval
	}
	if now == nil {
		now = models.Now
	}
	return &LocationUC{
		repo:     repo,
		gw:       gw,
		drivers:  drivers,
		rides:    rides,
		notifier: notifier,
		interval: interval,
		now:      now,
	}
}

// UpdateDriverLocation validates and stores a position report, then fans it out to the
// driver's active ride and to NATS. A rejected report leaves the stored position untouched.
func (uc *LocationUC) UpdateDriverLocation(ctx context.Context, ref models.DriverRef, update models.PositionUpdate) (*models.DriverPosition, error) {
	if err := validatePositionUpdate(update); err != nil {
		return nil, err
	}

	driverID, err := uc.drivers.ResolveAccountID(ctx, ref)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if update.CapturedAt != nil && update.CapturedAt.After(now.Add(maxClockSkew)) {
		return nil, apperrors.Validation("capturedAt %s is ahead of server time", update.CapturedAt.UTC().Format(time.RFC3339))
	}
	ok, err := uc.repo.AcquireUpdateSlot(ctx, driverID, now, uc.interval)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("driver %s: %w", driverID, apperrors.ErrRateLimited)
	}

	pos := &models.DriverPosition{
		DriverID:   driverID,
		Latitude:   *update.Latitude,
		Longitude:  *update.Longitude,
		CapturedAt: now,
	}
	if update.Heading != nil {
		pos.Heading = *update.Heading
	}
	if update.Speed != nil {
		pos.Speed = *update.Speed
	}
	if update.CapturedAt != nil && !update.CapturedAt.IsZero() {
		pos.CapturedAt = update.CapturedAt.UTC()
	}

	stored, err := nrpkg.WithSegmentAndReturn(ctx, "location.upsert", func() (*models.DriverPosition, error) {
		return uc.repo.UpsertDriverPosition(ctx, pos)
	})
	if err != nil {
		return nil, err
	}

	rideID := uc.notifyActiveRide(ctx, stored)
	uc.publish(ctx, stored, rideID)

	return stored, nil
}

// GetDriverPosition returns the last known position of an account
func (uc *LocationUC) GetDriverPosition(ctx context.Context, driverID string) (*models.DriverPosition, bool, error) {
	return uc.repo.GetDriverPosition(ctx, driverID)
}

// RecentlyUpdatedSince reports whether the driver has a position younger than maxAge
func (uc *LocationUC) RecentlyUpdatedSince(ctx context.Context, driverID string, maxAge time.Duration) (bool, error) {
	pos, found, err := uc.repo.GetDriverPosition(ctx, driverID)
	if err != nil || !found {
		return false, err
	}
	return pos.FreshAt(uc.now(), maxAge), nil
}

// notifyActiveRide pushes the new position to the ride the driver is serving and returns its id
func (uc *LocationUC) notifyActiveRide(ctx context.Context, pos *models.DriverPosition) string {
	if uc.rides == nil || uc.notifier == nil {
		return ""
	}

	ride, err := uc.rides.ActiveRideForDriver(ctx, pos.DriverID)
	if err != nil {
		logger.Warn("Failed to look up active ride for location update",
			logger.String("driver_id", pos.DriverID),
			logger.Err(err))
		return ""
	}
	if ride == nil {
		return ""
	}

	uc.notifier.PublishToRide(ctx, ride, models.DriverLocationUpdate{
		RideID:    ride.ID,
		DriverID:  pos.DriverID,
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Heading:   pos.Heading,
		Speed:     pos.Speed,
		Timestamp: pos.CapturedAt,
	})
	return ride.ID
}

func (uc *LocationUC) publish(ctx context.Context, pos *models.DriverPosition, rideID string) {
	if uc.gw == nil {
		return
	}

	msg := &models.LocationUpdateMessage{
		DriverID:   pos.DriverID,
		RideID:     rideID,
		Latitude:   pos.Latitude,
		Longitude:  pos.Longitude,
		Heading:    pos.Heading,
		Speed:      pos.Speed,
		Geohash:    utils.Encode(utils.GeoPoint{Latitude: pos.Latitude, Longitude: pos.Longitude}, geohashPrecision),
		CapturedAt: pos.CapturedAt,
	}
	if err := uc.gw.PublishLocationUpdate(ctx, msg); err != nil {
		logger.Warn("Failed to publish location update",
			logger.String("driver_id", pos.DriverID),
			logger.Err(err))
	}
}

func validatePositionUpdate(u models.PositionUpdate) error {
	if u.Latitude == nil || u.Longitude == nil {
		return apperrors.Validation("lat and lon are required")
	}
	if !utils.ValidCoordinates(*u.Latitude, *u.Longitude) {
		return apperrors.Validation("coordinates (%v, %v) out of range", *u.Latitude, *u.Longitude)
	}
	if u.Heading != nil && (math.IsNaN(*u.Heading) || *u.Heading < 0 || *u.Heading > 360) {
		return apperrors.Validation("heading %v must be within [0, 360]", *u.Heading)
	}
	if u.Speed != nil && (math.IsNaN(*u.Speed) || *u.Speed < 0) {
		return apperrors.Validation("speed %v must not be negative", *u.Speed)
	}
	return nil
}
