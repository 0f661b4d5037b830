package usecase

import (
	"context"
	"errors"

	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/pkg/scheduler"
	"github.com/piresc/dispatch/services/tracking"
)

// RideStreamKey is the job key of one subscriber's ride status stream
func RideStreamKey(rideID, userID string) string { return "ride:" + rideID + ":" + userID }

// DashboardKey is the job key of a dashboard tick
func DashboardKey(userID, role string) string { return "dashboard:" + userID + ":" + role }

// Streams runs the jobs that exist only while a connection listens: per-subscriber
// ride status streams and dashboard ticks. Each job ends itself once its channel is empty.
type Streams struct {
	cfg        models.DispatchConfig
	jobs       tracking.Jobs
	rides      tracking.RideSource
	publisher  tracking.Publisher
	dashboards tracking.Dashboards
	now        models.Clock
}

// NewStreams creates the subscriber stream runner
func NewStreams(
	cfg models.DispatchConfig,
	jobs tracking.Jobs,
	rides tracking.RideSource,
	publisher tracking.Publisher,
	dashboards tracking.Dashboards,
	now models.Clock,
) *Streams {
	if now == nil {
		now = models.Now
	}
	return &Streams{
		cfg:        cfg,
		jobs:       jobs,
		rides:      rides,
		publisher:  publisher,
		dashboards: dashboards,
		now:        now,
	}
}

// StartRideStream pushes the ride's status to one subscriber until the ride ends
// or the subscriber leaves
func (s *Streams) StartRideStream(rideID, userID string) bool {
	key := models.RideChannel(rideID, userID)
	return s.jobs.Every(RideStreamKey(rideID, userID), s.cfg.RideStreamInterval, func(ctx context.Context) error {
		if !s.publisher.HasMembers(key) {
			return scheduler.ErrStop
		}
		ride, err := s.rides.GetRide(ctx, rideID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return scheduler.ErrStop
		}
		if err != nil {
			return err
		}

		s.publisher.Publish(ctx, key, models.NewRideStatusChange(ride, ride.Status, s.now()))
		if ride.Status.Terminal() {
			return scheduler.ErrStop
		}
		return nil
	})
}

// StopRideStream stops one subscriber's ride status stream
func (s *Streams) StopRideStream(rideID, userID string) {
	s.jobs.Cancel(RideStreamKey(rideID, userID))
}

// StartDashboard refreshes a dashboard channel until nobody listens to it
func (s *Streams) StartDashboard(sub models.DashboardSubscription) bool {
	key := models.DashboardChannel(sub.UserID, sub.Role)
	return s.jobs.Every(DashboardKey(sub.UserID, sub.Role), s.cfg.DashboardInterval, func(ctx context.Context) error {
		if !s.publisher.HasMembers(key) {
			return scheduler.ErrStop
		}
		updates, err := s.dashboards.Refresh(ctx, sub)
		if err != nil {
			return err
		}
		for _, update := range updates {
			s.publisher.Publish(ctx, key, update)
		}
		return nil
	})
}

// StopDashboard stops a dashboard tick
func (s *Streams) StopDashboard(userID, role string) {
	s.jobs.Cancel(DashboardKey(userID, role))
}
