package usecase

import (
	"context"
	"sync"

	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	nrpkg "github.com/piresc/dispatch/internal/pkg/newrelic"
	"github.com/piresc/dispatch/services/notify"
)

// DashboardUC implements notify.DashboardUC
type DashboardUC struct {
	cfg       models.DispatchConfig
	rides     notify.RideReader
	proximity notify.Proximity
	positions notify.PositionReader
	now       models.Clock

	mu       sync.RWMutex
	earnings map[string]models.EarningsSnapshot
}

// NewDashboardUC creates a dashboard snapshot builder
func NewDashboardUC(
	cfg models.DispatchConfig,
	rides notify.RideReader,
	proximity notify.Proximity,
	positions notify.PositionReader,
	now models.Clock,
) *DashboardUC {
	if now == nil {
		now = models.Now
	}
	return &DashboardUC{
		cfg:       cfg,
		rides:     rides,
		proximity: proximity,
		positions: positions,
		now:       now,
		earnings:  make(map[string]models.EarningsSnapshot),
	}
}

// RecordEarnings caches the latest earnings pushed for a driver
func (uc *DashboardUC) RecordEarnings(snapshot models.EarningsSnapshot) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if prev, ok := uc.earnings[snapshot.UserID]; ok && snapshot.UpdatedAt.Before(prev.UpdatedAt) {
		return
	}
	uc.earnings[snapshot.UserID] = snapshot
}

func (uc *DashboardUC) cachedEarnings(userID string) *models.EarningsSnapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	snapshot, ok := uc.earnings[userID]
	if !ok {
		return nil
	}
	return &snapshot
}

// InitialSnapshot assembles everything a freshly opened dashboard shows. Failed searches
// leave their section empty; only a failed ride lookup fails the snapshot.
func (uc *DashboardUC) InitialSnapshot(ctx context.Context, sub models.DashboardSubscription) (models.DashboardUpdate, error) {
	snapshot, err := nrpkg.WithSegmentAndReturn(ctx, "dashboard.initial_snapshot", func() (models.InitialSnapshot, error) {
		ride, err := uc.rides.GetActiveRideForUser(ctx, sub.UserID)
		if err != nil {
			return models.InitialSnapshot{}, err
		}

		snap := models.InitialSnapshot{Role: sub.Role, Ride: ride}
		if origin := uc.origin(ctx, sub); origin != nil {
			switch sub.Role {
			case models.RoleRider:
				snap.NearbyDrivers = uc.nearbyDrivers(ctx, *origin)
			case models.RoleDriver:
				snap.NearbyRides = uc.nearbyRides(ctx, *origin)
			}
		}
		if sub.Role == models.RoleDriver {
			snap.Earnings = uc.cachedEarnings(sub.UserID)
		}
		return snap, nil
	})
	if err != nil {
		return models.DashboardUpdate{}, err
	}
	return models.DashboardUpdate{Payload: snapshot, Timestamp: uc.now()}, nil
}

// Refresh returns the periodic updates of a dashboard: ride status, the role's proximity list
// and, for drivers, cached earnings
func (uc *DashboardUC) Refresh(ctx context.Context, sub models.DashboardSubscription) ([]models.DashboardUpdate, error) {
	ride, err := uc.rides.GetActiveRideForUser(ctx, sub.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	updates := []models.DashboardUpdate{{Payload: models.RideStatusSnapshot{Ride: ride}, Timestamp: now}}
	if origin := uc.origin(ctx, sub); origin != nil {
		switch sub.Role {
		case models.RoleRider:
			updates = append(updates, models.DashboardUpdate{
				Payload:   models.NearbyDriversSnapshot{Origin: *origin, RadiusKm: uc.cfg.SearchRadiusKm, Drivers: uc.nearbyDrivers(ctx, *origin)},
				Timestamp: now,
			})
		case models.RoleDriver:
			updates = append(updates, models.DashboardUpdate{
				Payload:   models.NearbyRidesSnapshot{Origin: *origin, RadiusKm: uc.cfg.SearchRadiusKm, Rides: uc.nearbyRides(ctx, *origin)},
				Timestamp: now,
			})
		}
	}
	if sub.Role == models.RoleDriver {
		if earnings := uc.cachedEarnings(sub.UserID); earnings != nil {
			updates = append(updates, models.DashboardUpdate{Payload: *earnings, Timestamp: now})
		}
	}
	return updates, nil
}

// origin is where proximity searches are centred: the subscription's point,
// else a driver's last position
func (uc *DashboardUC) origin(ctx context.Context, sub models.DashboardSubscription) *models.Location {
	if sub.Origin != nil {
		return sub.Origin
	}
	if sub.Role != models.RoleDriver || uc.positions == nil {
		return nil
	}

	pos, found, err := uc.positions.GetDriverPosition(ctx, sub.UserID)
	if err != nil {
		logger.Warn("Failed to read driver position for dashboard",
			logger.String("driver_id", sub.UserID),
			logger.Err(err))
		return nil
	}
	if !found {
		return nil
	}
	return &models.Location{Latitude: pos.Latitude, Longitude: pos.Longitude}
}

func (uc *DashboardUC) nearbyDrivers(ctx context.Context, origin models.Location) []*models.NearbyDriver {
	drivers, err := uc.proximity.NearbyDrivers(ctx, models.NearbyDriversQuery{Origin: origin})
	if err != nil {
		logger.Warn("Dashboard driver search failed", logger.Err(err))
		return []*models.NearbyDriver{}
	}
	return drivers
}

func (uc *DashboardUC) nearbyRides(ctx context.Context, origin models.Location) []*models.NearbyRide {
	rides, err := uc.proximity.NearbyRideRequests(ctx, origin, 0, 0)
	if err != nil {
		logger.Warn("Dashboard ride search failed", logger.Err(err))
		return []*models.NearbyRide{}
	}
	return rides
}
