package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	nrpkg "github.com/piresc/dispatch/internal/pkg/newrelic"
	"github.com/piresc/dispatch/internal/pkg/scheduler"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/rides"
)

// maxCancelReason caps the stored cancel reason, counted in characters
const maxCancelReason = 500

// OfferKey and ScheduleKey name the one-shot timers owned by a ride
func OfferKey(rideID string) string    { return "offer:" + rideID }
func ScheduleKey(rideID string) string { return "schedule:" + rideID }

// RideUC implements rides.RideUC
type RideUC struct {
	cfg      models.DispatchConfig
	repo     rides.RideRepo
	gw       rides.RideGW
	finder   rides.DriverFinder
	profiles rides.DriverProfiles
	notifier rides.RideNotifier
	tracker  rides.RideTracker
	timers   rides.Timers
	fares    *FareCalculator
	now      models.Clock
}

// NewRideUC creates a new ride use case. gw may be nil when NATS is not configured.
func NewRideUC(
	cfg models.DispatchConfig,
	repo rides.RideRepo,
	gw rides.RideGW,
	finder rides.DriverFinder,
	profiles rides.DriverProfiles,
	notifier rides.RideNotifier,
	tracker rides.RideTracker,
	timers rides.Timers,
	now models.Clock,
) *RideUC {
	if now == nil {
		now = models.Now
	}
	return &RideUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		finder:   finder,
		profiles: profiles,
		notifier: notifier,
		tracker:  tracker,
		timers:   timers,
		fares:    NewFareCalculator(cfg.Fares, cfg.TaxRate),
		now:      now,
	}
}

// Fares exposes the calculator used for estimates and final fares
func (uc *RideUC) Fares() *FareCalculator {
	return uc.fares
}

func (uc *RideUC) tripMinutes(distanceKm float64) float64 {
	if uc.cfg.AverageSpeedKmh <= 0 {
		return 0
	}
	return distanceKm / uc.cfg.AverageSpeedKmh * 60
}

func validateTrip(pickup, dropoff models.Location) error {
	if !utils.ValidCoordinates(pickup.Latitude, pickup.Longitude) {
		return apperrors.Validation("pickup (%v, %v) out of range", pickup.Latitude, pickup.Longitude)
	}
	if !utils.ValidCoordinates(dropoff.Latitude, dropoff.Longitude) {
		return apperrors.Validation("dropoff (%v, %v) out of range", dropoff.Latitude, dropoff.Longitude)
	}
	return nil
}

// EstimateFare quotes the trip for the requested class, or for every class when none is given
func (uc *RideUC) EstimateFare(ctx context.Context, req models.FareEstimateRequest) ([]*models.FareEstimate, error) {
	if err := validateTrip(req.Pickup, req.Dropoff); err != nil {
		return nil, err
	}

	classes := models.VehicleTypes
	if req.VehicleType != "" {
		if !req.VehicleType.Valid() {
			return nil, apperrors.Validation("unknown vehicle type %q", req.VehicleType)
		}
		classes = []models.VehicleType{req.VehicleType}
	}

	distance := utils.CalculateDistance(utils.PointOf(req.Pickup), utils.PointOf(req.Dropoff))
	minutes := uc.tripMinutes(distance)
	estimates := make([]*models.FareEstimate, 0, len(classes))
	for _, vt := range classes {
		fare, err := uc.fares.Fare(vt, distance, minutes)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, &models.FareEstimate{
			VehicleType:     vt,
			DistanceKm:      utils.RoundTo(distance, 3),
			DurationMinutes: utils.RoundTo(minutes, 1),
			Fare:            fare,
		})
	}
	return estimates, nil
}

// CreateRide stores a new ride for riderID and dispatches it, or parks it until its scheduled time
func (uc *RideUC) CreateRide(ctx context.Context, riderID string, req models.CreateRideRequest) (*models.Ride, error) {
	if riderID == "" {
		return nil, apperrors.Validation("rider id is required")
	}
	if err := validateTrip(req.Pickup, req.Dropoff); err != nil {
		return nil, err
	}
	if req.VehicleType == "" {
		req.VehicleType = models.VehicleEconomy
	}
	if !req.VehicleType.Valid() {
		return nil, apperrors.Validation("unknown vehicle type %q", req.VehicleType)
	}
	if !uc.finder.IsInServiceArea(req.Pickup.Latitude, req.Pickup.Longitude) {
		return nil, apperrors.Validation("pickup is outside the service area")
	}

	active, err := uc.repo.ActiveRideForRider(ctx, riderID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("rider %s already has ride %s: %w", riderID, active.ID, apperrors.ErrConflict)
	}

	distance := utils.CalculateDistance(utils.PointOf(req.Pickup), utils.PointOf(req.Dropoff))
	fare, err := uc.fares.Fare(req.VehicleType, distance, uc.tripMinutes(distance))
	if err != nil {
		return nil, err
	}

	now := uc.now()
	ride := &models.Ride{
		ID:            uuid.NewString(),
		RiderID:       riderID,
		Pickup:        req.Pickup,
		Dropoff:       req.Dropoff,
		VehicleType:   req.VehicleType,
		Status:        models.RideStatusSearching,
		DistanceKm:    utils.RoundTo(distance, 3),
		EstimatedFare: fare,
		ScheduledAt:   req.ScheduledAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err = nrpkg.WithSegment(ctx, "rides.create", func() error {
		return uc.repo.CreateRide(ctx, ride)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Ride created",
		logger.String("ride_id", ride.ID),
		logger.String("rider_id", riderID),
		logger.String("vehicle_type", string(ride.VehicleType)),
		logger.Float64("distance_km", ride.DistanceKm))

	if req.ScheduledAt != nil && req.ScheduledAt.After(now) {
		scheduled, err := uc.transition(ctx, ride.ID, models.RideStatusScheduled, models.SystemActor, nil)
		if err != nil {
			return nil, err
		}
		uc.timers.After(ScheduleKey(ride.ID), req.ScheduledAt.Sub(now), uc.releaseScheduled(ride.ID))
		return scheduled, nil
	}

	dispatched, err := uc.dispatch(ctx, ride)
	if err != nil {
		logger.Warn("Dispatch failed, returning stored ride",
			logger.String("ride_id", ride.ID),
			logger.Err(err))
		return uc.repo.GetRide(ctx, ride.ID)
	}
	return dispatched, nil
}

// GetRide returns a ride visible to actor: its parties, the system, and drivers browsing open requests
func (uc *RideUC) GetRide(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	switch {
	case actor.Role == models.RoleSystem, ride.HasParty(actor.UserID):
		return ride, nil
	case actor.Role == models.RoleDriver && ride.Status == models.RideStatusSearching:
		return ride, nil
	}
	return nil, fmt.Errorf("user %s may not view ride %s: %w", actor.UserID, rideID, apperrors.ErrForbidden)
}

// GetActiveRideForUser returns the ongoing ride of a driver or the open ride of a rider, nil when none
func (uc *RideUC) GetActiveRideForUser(ctx context.Context, userID string) (*models.Ride, error) {
	ride, err := uc.repo.ActiveRideForDriver(ctx, userID)
	if err != nil || ride != nil {
		return ride, err
	}
	return uc.repo.ActiveRideForRider(ctx, userID)
}

// Transition moves a ride to target on behalf of actor
func (uc *RideUC) Transition(ctx context.Context, rideID string, target models.RideStatus, actor models.Actor) (*models.Ride, error) {
	return uc.transition(ctx, rideID, target, actor, nil)
}

// Accept confirms the offer. A driver may also claim a ride that is still searching.
func (uc *RideUC) Accept(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status == models.RideStatusSearching && actor.Role == models.RoleDriver {
		if err := uc.claim(ctx, ride, actor.UserID); err != nil {
			return nil, err
		}
	}
	return uc.transition(ctx, rideID, models.RideStatusAccepted, actor, nil)
}

// claim assigns a searching ride to a driver who passes the same checks as a dispatch candidate
func (uc *RideUC) claim(ctx context.Context, ride *models.Ride, driverID string) error {
	profiles, err := uc.profiles.Profiles(ctx, []string{driverID})
	if err != nil {
		return err
	}
	profile, ok := profiles[driverID]
	if !ok || !profile.Eligible() {
		return fmt.Errorf("driver %s is not eligible for dispatch: %w", driverID, apperrors.ErrForbidden)
	}
	if ride.VehicleType != "" && profile.VehicleType != ride.VehicleType {
		return fmt.Errorf("driver %s drives %s, ride %s needs %s: %w",
			driverID, profile.VehicleType, ride.ID, ride.VehicleType, apperrors.ErrForbidden)
	}

	busy, err := uc.repo.ActiveRideForDriver(ctx, driverID)
	if err != nil {
		return err
	}
	if busy != nil {
		return fmt.Errorf("driver %s is already on ride %s: %w", driverID, busy.ID, apperrors.ErrConflict)
	}
	_, err = uc.transition(ctx, ride.ID, models.RideStatusAssigned, models.SystemActor, func(r *models.Ride) {
		r.DriverID = driverID
	})
	return err
}

// Arrive records that the driver reached the pickup
func (uc *RideUC) Arrive(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error) {
	return uc.transition(ctx, rideID, models.RideStatusArrived, actor, nil)
}

// Start begins the trip
func (uc *RideUC) Start(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error) {
	return uc.transition(ctx, rideID, models.RideStatusInProgress, actor, nil)
}

// Complete ends the trip and freezes the final fare
func (uc *RideUC) Complete(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error) {
	return uc.transition(ctx, rideID, models.RideStatusCompleted, actor, nil)
}

// Cancel aborts the ride with an optional reason
func (uc *RideUC) Cancel(ctx context.Context, rideID string, actor models.Actor, reason string) (*models.Ride, error) {
	reason = strings.TrimSpace(reason)
	if runes := []rune(reason); len(runes) > maxCancelReason {
		reason = string(runes[:maxCancelReason])
	}
	return uc.transition(ctx, rideID, models.RideStatusCancelled, actor, func(r *models.Ride) {
		r.CancelReason = reason
	})
}

// Retry puts a ride that found no drivers back into dispatch
func (uc *RideUC) Retry(ctx context.Context, rideID string, actor models.Actor) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusNoDrivers && !ride.Status.Terminal() {
		return nil, fmt.Errorf("ride %s is %s: %w", rideID, ride.Status, apperrors.ErrInvalidTransition)
	}

	searching, err := uc.transition(ctx, rideID, models.RideStatusSearching, actor, nil)
	if err != nil {
		return nil, err
	}
	return uc.dispatch(ctx, searching)
}

// transition validates and applies one edge. mutate adjusts the copy before it is stored.
func (uc *RideUC) transition(ctx context.Context, rideID string, target models.RideStatus, actor models.Actor, mutate func(*models.Ride)) (*models.Ride, error) {
	if !target.Valid() {
		return nil, apperrors.Validation("unknown ride status %q", target)
	}

	current, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() {
		return nil, fmt.Errorf("ride %s is %s: %w", rideID, current.Status, apperrors.ErrAlreadyTerminal)
	}
	if !current.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("ride %s cannot move from %s to %s: %w", rideID, current.Status, target, apperrors.ErrInvalidTransition)
	}
	if err := authorize(current, target, actor); err != nil {
		return nil, err
	}

	now := uc.now()
	next := current.Clone()
	next.Status = target
	next.UpdatedAt = now
	if err := uc.stamp(next, now); err != nil {
		return nil, err
	}
	if mutate != nil {
		mutate(next)
	}

	err = nrpkg.WithSegment(ctx, "rides.update_status", func() error {
		return uc.repo.UpdateStatus(ctx, next, current.Status)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Ride status changed",
		logger.String("ride_id", rideID),
		logger.String("from", string(current.Status)),
		logger.String("to", string(target)),
		logger.String("actor_role", actor.Role))

	uc.afterTransition(ctx, current, next)
	return next, nil
}

// authorize checks which party may take an edge. The system may take any edge.
func authorize(ride *models.Ride, target models.RideStatus, actor models.Actor) error {
	if actor.Role == models.RoleSystem {
		return nil
	}

	allowed := false
	switch target {
	case models.RideStatusAccepted, models.RideStatusArrived, models.RideStatusInProgress, models.RideStatusCompleted:
		allowed = actor.Role == models.RoleDriver && ride.DriverID != "" && ride.DriverID == actor.UserID
	case models.RideStatusCancelled:
		allowed = ride.HasParty(actor.UserID)
	case models.RideStatusSearching:
		allowed = ride.RiderID == actor.UserID
	}
	if !allowed {
		return fmt.Errorf("%s %s may not move ride %s to %s: %w", actor.Role, actor.UserID, ride.ID, target, apperrors.ErrForbidden)
	}
	return nil
}

// stamp records the lifecycle timestamp of the new status
func (uc *RideUC) stamp(ride *models.Ride, now time.Time) error {
	at := now
	switch ride.Status {
	case models.RideStatusAssigned:
		ride.MatchedAt = &at
	case models.RideStatusAccepted:
		ride.AcceptedAt = &at
	case models.RideStatusArrived:
		ride.ArrivedAt = &at
	case models.RideStatusInProgress:
		ride.StartedAt = &at
	case models.RideStatusCompleted:
		ride.CompletedAt = &at
		minutes := 0.0
		if ride.StartedAt != nil {
			minutes = now.Sub(*ride.StartedAt).Minutes()
		}
		fare, err := uc.fares.Fare(ride.VehicleType, ride.DistanceKm, minutes)
		if err != nil {
			return err
		}
		ride.FinalFare = &fare
	case models.RideStatusCancelled:
		ride.CancelledAt = &at
	case models.RideStatusNoDrivers, models.RideStatusSearching, models.RideStatusScheduled:
		ride.DriverID = ""
		ride.MatchedAt = nil
	}
	return nil
}

func (uc *RideUC) afterTransition(ctx context.Context, prev, ride *models.Ride) {
	if prev.Status == models.RideStatusAssigned {
		uc.cancelTimer(ctx, OfferKey(ride.ID))
	}
	if prev.Status == models.RideStatusScheduled {
		uc.cancelTimer(ctx, ScheduleKey(ride.ID))
	}

	now := uc.now()
	event := models.NewRideStatusChange(ride, prev.Status, now)
	uc.notifier.PublishToRide(ctx, ride, event)
	if prev.DriverID != "" && prev.DriverID != ride.DriverID {
		uc.notifier.PublishToUser(ctx, prev.DriverID, event)
	}

	if ride.Status.Tracked() {
		uc.tracker.Track(ride)
	} else {
		uc.tracker.Untrack(ride.ID)
	}

	if uc.gw != nil {
		msg := &models.RideStatusMessage{
			RideID:     ride.ID,
			RiderID:    ride.RiderID,
			DriverID:   ride.DriverID,
			From:       prev.Status,
			Status:     ride.Status,
			FinalFare:  ride.FinalFare,
			DistanceKm: ride.DistanceKm,
			ChangedAt:  now,
		}
		if err := uc.gw.PublishRideStatusChanged(ctx, msg); err != nil {
			logger.Warn("Failed to publish ride status",
				logger.String("ride_id", ride.ID),
				logger.Err(err))
		}
	}

	if ride.Status.Terminal() {
		history := models.RideHistoryUpdate{Ride: ride, Timestamp: now}
		uc.notifier.PublishToTopic(ctx, models.TopicRideHistory, ride.RiderID, history)
		if ride.DriverID != "" {
			uc.notifier.PublishToTopic(ctx, models.TopicRideHistory, ride.DriverID, history)
		}
	}
}

// cancelTimer stops the timer under key unless it is the job running this call,
// which ends on its own and must keep its context for the rest of the run
func (uc *RideUC) cancelTimer(ctx context.Context, key string) {
	if scheduler.JobKey(ctx) == key {
		return
	}
	uc.timers.Cancel(key)
}

// dispatch offers a searching ride to the closest free candidate, or parks it at no_drivers
func (uc *RideUC) dispatch(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	candidates, err := nrpkg.WithSegmentAndReturn(ctx, "rides.find_candidates", func() ([]*models.NearbyDriver, error) {
		return uc.finder.NearbyDrivers(ctx, models.NearbyDriversQuery{
			Origin:          ride.Pickup,
			VehicleType:     ride.VehicleType,
			ExcludeDriverID: ride.RiderID,
		})
	})
	if err != nil {
		logger.Warn("Candidate search failed",
			logger.String("ride_id", ride.ID),
			logger.Err(err))
		candidates = nil
	}

	for _, candidate := range candidates {
		busy, err := uc.repo.ActiveRideForDriver(ctx, candidate.DriverID)
		if err != nil {
			logger.Warn("Skipping candidate with unknown ride state",
				logger.String("driver_id", candidate.DriverID),
				logger.Err(err))
			continue
		}
		if busy != nil {
			continue
		}
		return uc.offer(ctx, ride.ID, candidate)
	}

	logger.Info("No drivers available", logger.String("ride_id", ride.ID))
	return uc.transition(ctx, ride.ID, models.RideStatusNoDrivers, models.SystemActor, nil)
}

func (uc *RideUC) offer(ctx context.Context, rideID string, candidate *models.NearbyDriver) (*models.Ride, error) {
	assigned, err := uc.transition(ctx, rideID, models.RideStatusAssigned, models.SystemActor, func(r *models.Ride) {
		r.DriverID = candidate.DriverID
	})
	if err != nil {
		return nil, err
	}

	timeout := uc.cfg.OfferTimeout
	uc.timers.After(OfferKey(rideID), timeout, uc.expireOffer(rideID, candidate.DriverID))
	uc.notifier.PublishToUser(ctx, candidate.DriverID, models.RideRequest{
		RideID:          assigned.ID,
		Pickup:          assigned.Pickup,
		Dropoff:         assigned.Dropoff,
		DistanceKm:      assigned.DistanceKm,
		EstimatedFare:   assigned.EstimatedFare,
		VehicleType:     assigned.VehicleType,
		ExpiresAt:       assigned.UpdatedAt.Add(timeout),
		TimeLeftSeconds: int(timeout / time.Second),
	})

	logger.Info("Ride offered",
		logger.String("ride_id", rideID),
		logger.String("driver_id", candidate.DriverID),
		logger.Float64("distance_km", candidate.DistanceKm))
	return assigned, nil
}

// expireOffer releases a ride whose offered driver did not accept in time
func (uc *RideUC) expireOffer(rideID, driverID string) scheduler.JobFunc {
	return func(ctx context.Context) error {
		ride, err := uc.repo.GetRide(ctx, rideID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil
			}
			return err
		}
		if ride.Status != models.RideStatusAssigned || ride.DriverID != driverID {
			return nil
		}

		logger.Info("Ride offer expired",
			logger.String("ride_id", rideID),
			logger.String("driver_id", driverID))
		_, err = uc.transition(ctx, rideID, models.RideStatusNoDrivers, models.SystemActor, nil)
		return ignoreLostRace(err)
	}
}

// releaseScheduled moves a scheduled ride into dispatch once its time has come
func (uc *RideUC) releaseScheduled(rideID string) scheduler.JobFunc {
	return func(ctx context.Context) error {
		searching, err := uc.transition(ctx, rideID, models.RideStatusSearching, models.SystemActor, nil)
		if err != nil {
			return ignoreLostRace(err)
		}
		_, err = uc.dispatch(ctx, searching)
		return ignoreLostRace(err)
	}
}

// ignoreLostRace treats a ride that moved on without us as done
func ignoreLostRace(err error) error {
	switch {
	case err == nil,
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrAlreadyTerminal),
		errors.Is(err, apperrors.ErrNotFound):
		return nil
	}
	return err
}

// Resume re-arms the timers and tracking of rides that were in flight when the process stopped
func (uc *RideUC) Resume(ctx context.Context) error {
	inflight, err := uc.repo.ListByStatus(ctx, []models.RideStatus{
		models.RideStatusSearching, models.RideStatusAssigned, models.RideStatusAccepted,
		models.RideStatusInProgress, models.RideStatusScheduled,
	})
	if err != nil {
		return fmt.Errorf("failed to list in-flight rides: %w", err)
	}

	now := uc.now()
	for _, ride := range inflight {
		switch ride.Status {
		case models.RideStatusSearching:
			if _, err := uc.dispatch(ctx, ride); ignoreLostRace(err) != nil {
				logger.Warn("Failed to redispatch ride", logger.String("ride_id", ride.ID), logger.Err(err))
			}
		case models.RideStatusAssigned:
			uc.tracker.Track(ride)
			remaining := uc.cfg.OfferTimeout
			if ride.MatchedAt != nil {
				remaining = ride.MatchedAt.Add(uc.cfg.OfferTimeout).Sub(now)
			}
			if remaining < 0 {
				remaining = 0
			}
			uc.timers.After(OfferKey(ride.ID), remaining, uc.expireOffer(ride.ID, ride.DriverID))
		case models.RideStatusScheduled:
			delay := time.Duration(0)
			if ride.ScheduledAt != nil && ride.ScheduledAt.After(now) {
				delay = ride.ScheduledAt.Sub(now)
			}
			uc.timers.After(ScheduleKey(ride.ID), delay, uc.releaseScheduled(ride.ID))
		default:
			uc.tracker.Track(ride)
		}
	}

	logger.Info("Resumed in-flight rides", logger.Int("count", len(inflight)))
	return nil
}
