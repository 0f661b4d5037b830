package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/models"
	nrpkg "github.com/piresc/dispatch/internal/pkg/newrelic"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/match"
)

// MatchUC implements match.MatchUC
type MatchUC struct {
	cfg       models.DispatchConfig
	geofence  utils.Geofence
	positions match.PositionSource
	profiles  match.ProfileSource
	rides     match.OpenRideSource
	now       models.Clock
}

// NewMatchUC creates a new match use case. It fails when the service area is malformed.
func NewMatchUC(
	cfg models.DispatchConfig,
	positions match.PositionSource,
	profiles match.ProfileSource,
	rides match.OpenRideSource,
	now models.Clock,
) (*MatchUC, error) {
	geofence, err := utils.NewGeofence(cfg.Geofence)
	if err != nil {
		return nil, fmt.Errorf("failed to build service area: %w", err)
	}
	if now == nil {
		now = models.Now
	}
	return &MatchUC{
		cfg:       cfg,
		geofence:  geofence,
		positions: positions,
		profiles:  profiles,
		rides:     rides,
		now:       now,
	}, nil
}

// IsInServiceArea reports whether a coordinate is inside the configured service area
func (uc *MatchUC) IsInServiceArea(lat, lon float64) bool {
	return utils.ValidCoordinates(lat, lon) && uc.geofence.Contains(utils.GeoPoint{Latitude: lat, Longitude: lon})
}

// EstimateETA converts a straight-line distance to whole minutes. The candidate's own speed
// is used when it is moving, otherwise the configured average city speed.
func (uc *MatchUC) EstimateETA(distanceKm, speedKmh float64) int {
	if speedKmh <= 0 || math.IsNaN(speedKmh) {
		speedKmh = uc.cfg.AverageSpeedKmh
	}
	if speedKmh <= 0 || distanceKm <= 0 {
		return 0
	}
	return int(math.Round(distanceKm / speedKmh * 60))
}

type rankedDriver struct {
	pos      *models.DriverPosition
	distance float64
}

// NearbyDrivers returns fresh, eligible drivers inside the radius and the service area,
// closest first with ties going to the most recent fix, capped at MaxCandidates
func (uc *MatchUC) NearbyDrivers(ctx context.Context, q models.NearbyDriversQuery) ([]*models.NearbyDriver, error) {
	radius, err := uc.searchRadius(q.Origin, q.RadiusKm)
	if err != nil {
		return nil, err
	}

	positions, err := nrpkg.WithSegmentAndReturn(ctx, "match.find_drivers_within", func() ([]*models.DriverPosition, error) {
		return uc.positions.FindDriversWithin(ctx, q.Origin.Latitude, q.Origin.Longitude, radius)
	})
	if err != nil {
		return nil, err
	}

	now := uc.now()
	origin := utils.PointOf(q.Origin)
	candidates := make([]rankedDriver, 0, len(positions))
	ids := make([]string, 0, len(positions))
	for _, pos := range positions {
		if pos.DriverID == q.ExcludeDriverID || !pos.FreshAt(now, uc.cfg.DriverFreshness) {
			continue
		}
		if !uc.IsInServiceArea(pos.Latitude, pos.Longitude) {
			continue
		}
		d := utils.CalculateDistance(origin, utils.GeoPoint{Latitude: pos.Latitude, Longitude: pos.Longitude})
		if d > radius {
			continue
		}
		candidates = append(candidates, rankedDriver{pos: pos, distance: d})
		ids = append(ids, pos.DriverID)
	}
	if len(candidates) == 0 {
		return []*models.NearbyDriver{}, nil
	}

	profiles, err := uc.profiles.Profiles(ctx, ids)
	if err != nil {
		return nil, err
	}

	eligible := q.Eligible
	if eligible == nil {
		eligible = (*models.DriverProfile).Eligible
	}
	kept := candidates[:0]
	for _, c := range candidates {
		p, ok := profiles[c.pos.DriverID]
		if !ok || !eligible(p) {
			continue
		}
		if q.VehicleType != "" && p.VehicleType != q.VehicleType {
			continue
		}
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].distance != kept[j].distance {
			return kept[i].distance < kept[j].distance
		}
		return kept[i].pos.CapturedAt.After(kept[j].pos.CapturedAt)
	})
	if limit := uc.cfg.MaxCandidates; limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}

	out := make([]*models.NearbyDriver, 0, len(kept))
	for _, c := range kept {
		out = append(out, &models.NearbyDriver{
			DriverID:    c.pos.DriverID,
			Latitude:    c.pos.Latitude,
			Longitude:   c.pos.Longitude,
			Heading:     c.pos.Heading,
			Speed:       c.pos.Speed,
			DistanceKm:  utils.RoundTo(c.distance, 3),
			EtaMinutes:  uc.EstimateETA(c.distance, c.pos.Speed),
			VehicleType: profiles[c.pos.DriverID].VehicleType,
			CapturedAt:  c.pos.CapturedAt,
		})
	}
	return out, nil
}

type rankedRide struct {
	ride     *models.Ride
	distance float64
}

// NearbyRideRequests returns searching rides created within window whose pickup lies inside
// the radius, ranked like NearbyDrivers with ties going to the newest request
func (uc *MatchUC) NearbyRideRequests(ctx context.Context, origin models.Location, radiusKm float64, window time.Duration) ([]*models.NearbyRide, error) {
	radius, err := uc.searchRadius(origin, radiusKm)
	if err != nil {
		return nil, err
	}
	if window <= 0 {
		window = uc.cfg.RideRequestFreshness
	}

	now := uc.now()
	rides, err := uc.rides.ListOpenRides(ctx, now.Add(-window))
	if err != nil {
		return nil, err
	}

	from := utils.PointOf(origin)
	ranked := make([]rankedRide, 0, len(rides))
	for _, r := range rides {
		if r.Status != models.RideStatusSearching || now.Sub(r.CreatedAt) >= window {
			continue
		}
		d := utils.CalculateDistance(from, utils.PointOf(r.Pickup))
		if d > radius {
			continue
		}
		ranked = append(ranked, rankedRide{ride: r, distance: d})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].ride.CreatedAt.After(ranked[j].ride.CreatedAt)
	})
	if limit := uc.cfg.MaxCandidates; limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]*models.NearbyRide, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, &models.NearbyRide{
			RideID:        r.ride.ID,
			RiderID:       r.ride.RiderID,
			Pickup:        r.ride.Pickup,
			Dropoff:       r.ride.Dropoff,
			VehicleType:   r.ride.VehicleType,
			DistanceKm:    utils.RoundTo(r.distance, 3),
			EstimatedFare: r.ride.EstimatedFare,
			CreatedAt:     r.ride.CreatedAt,
		})
	}
	return out, nil
}

func (uc *MatchUC) searchRadius(origin models.Location, radiusKm float64) (float64, error) {
	if !utils.ValidCoordinates(origin.Latitude, origin.Longitude) {
		return 0, apperrors.Validation("origin (%v, %v) out of range", origin.Latitude, origin.Longitude)
	}
	if radiusKm < 0 || math.IsNaN(radiusKm) {
		return 0, apperrors.Validation("radius %v must not be negative", radiusKm)
	}
	if radiusKm == 0 {
		radiusKm = uc.cfg.SearchRadiusKm
	}
	return radiusKm, nil
}
