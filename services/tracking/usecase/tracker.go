package usecase

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/pkg/scheduler"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/tracking"
)

// SweepKey is the job key of the location staleness sweep
const SweepKey = "sweep:staleness"

// RideJobKey is the job key of the active-ride refresh
func RideJobKey(rideID string) string { return "ride:" + rideID }

// Tracker refreshes the progress of live rides and reminds drivers about stale locations
type Tracker struct {
	cfg       models.DispatchConfig
	jobs      tracking.Jobs
	rides     tracking.RideSource
	positions tracking.PositionSource
	drivers   tracking.DriverSource
	publisher tracking.Publisher
	fares     tracking.FareQuoter
	eta       tracking.ETAEstimator
	now       models.Clock

	mu   sync.Mutex
	last map[string]models.RideProgress
}

// NewTracker creates a tracker
func NewTracker(
	cfg models.DispatchConfig,
	jobs tracking.Jobs,
	rides tracking.RideSource,
	positions tracking.PositionSource,
	drivers tracking.DriverSource,
	publisher tracking.Publisher,
	fares tracking.FareQuoter,
	eta tracking.ETAEstimator,
	now models.Clock,
) *Tracker {
	if now == nil {
		now = models.Now
	}
	return &Tracker{
		cfg:       cfg,
		jobs:      jobs,
		rides:     rides,
		positions: positions,
		drivers:   drivers,
		publisher: publisher,
		fares:     fares,
		eta:       eta,
		now:       now,
		last:      make(map[string]models.RideProgress),
	}
}

// Track starts the progress refresh of a ride. Tracking an already tracked ride restarts it.
func (t *Tracker) Track(ride *models.Ride) {
	rideID := ride.ID
	t.jobs.Every(RideJobKey(rideID), t.cfg.ActiveRideInterval, func(ctx context.Context) error {
		return t.refreshRide(ctx, rideID)
	})
}

// Untrack stops the progress refresh of a ride
func (t *Tracker) Untrack(rideID string) {
	t.jobs.Cancel(RideJobKey(rideID))
	t.forget(rideID)
}

func (t *Tracker) forget(rideID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.last, rideID)
}

func (t *Tracker) refreshRide(ctx context.Context, rideID string) error {
	ride, err := t.rides.GetRide(ctx, rideID)
	if errors.Is(err, apperrors.ErrNotFound) {
		t.forget(rideID)
		return scheduler.ErrStop
	}
	if err != nil {
		return err
	}
	if !ride.Status.Tracked() {
		t.forget(rideID)
		return scheduler.ErrStop
	}

	progress, ok, err := t.Progress(ctx, ride)
	if err != nil || !ok {
		return err
	}
	if !t.changed(progress) {
		return nil
	}
	t.publisher.PublishToRide(ctx, ride, progress)
	return nil
}

// changed records progress and reports whether it differs from what was last published
func (t *Tracker) changed(p models.RideProgress) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev, ok := t.last[p.RideID]
	t.last[p.RideID] = p
	return !ok || !sameProgress(prev, p)
}

func sameProgress(a, b models.RideProgress) bool {
	return a.Status == b.Status &&
		a.Target == b.Target &&
		a.DistanceKm == b.DistanceKm &&
		a.EtaMinutes == b.EtaMinutes &&
		equalPtr(a.RunningFare, b.RunningFare)
}

func equalPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Progress computes distance and ETA from the driver to the pickup, or to the dropoff once
// the trip started, plus the running fare of a trip in progress. ok is false while the
// driver has no stored position.
func (t *Tracker) Progress(ctx context.Context, ride *models.Ride) (models.RideProgress, bool, error) {
	if ride.DriverID == "" {
		return models.RideProgress{}, false, nil
	}
	pos, found, err := t.positions.GetDriverPosition(ctx, ride.DriverID)
	if err != nil || !found {
		return models.RideProgress{}, false, err
	}

	now := t.now()
	target, targetName := ride.Pickup, models.ProgressTargetPickup
	if ride.Status == models.RideStatusInProgress {
		target, targetName = ride.Dropoff, models.ProgressTargetDropoff
	}
	remaining := utils.CalculateDistance(utils.GeoPoint{Latitude: pos.Latitude, Longitude: pos.Longitude}, utils.PointOf(target))

	progress := models.RideProgress{
		RideID:     ride.ID,
		Status:     ride.Status,
		Target:     targetName,
		DistanceKm: utils.RoundTo(remaining, 3),
		EtaMinutes: t.eta.EstimateETA(remaining, pos.Speed),
		Timestamp:  now,
	}

	if ride.Status == models.RideStatusInProgress && ride.StartedAt != nil {
		elapsed := math.Max(0, now.Sub(*ride.StartedAt).Minutes())
		covered := math.Max(0, ride.DistanceKm-remaining)
		fare, err := t.fares.Fare(ride.VehicleType, covered, elapsed)
		if err != nil {
			return models.RideProgress{}, false, err
		}
		minutes := utils.RoundTo(elapsed, 1)
		progress.RunningFare = &fare
		progress.ElapsedMinutes = &minutes
	}
	return progress, true, nil
}

// StartSweep schedules the location staleness sweep
func (t *Tracker) StartSweep() bool {
	return t.jobs.Every(SweepKey, t.cfg.StalenessInterval, t.Sweep)
}

// Sweep reminds every eligible driver whose position is missing or old
func (t *Tracker) Sweep(ctx context.Context) error {
	drivers, err := t.drivers.EligibleDrivers(ctx)
	if err != nil {
		return err
	}

	now := t.now()
	reminded := 0
	for _, d := range drivers {
		pos, found, err := t.positions.GetDriverPosition(ctx, d.AccountID)
		if err != nil {
			logger.Warn("Failed to read driver position during sweep",
				logger.String("driver_id", d.AccountID),
				logger.Err(err))
			continue
		}
		reminder, ok := t.reminderFor(pos, found, now)
		if !ok {
			continue
		}
		t.publisher.PublishToUser(ctx, d.AccountID, reminder)
		reminded++
	}

	logger.Debug("Location staleness sweep finished",
		logger.Int("drivers", len(drivers)),
		logger.Int("reminded", reminded))
	return nil
}
