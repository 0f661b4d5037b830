package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/config"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/pkg/scheduler"
	"github.com/piresc/dispatch/services/tracking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type streamMocks struct {
	jobs       *mocks.MockJobs
	rides      *mocks.MockRideSource
	publisher  *mocks.MockPublisher
	dashboards *mocks.MockDashboards
}

func newTestStreams(t *testing.T) (*Streams, streamMocks) {
	ctrl := gomock.NewController(t)
	m := streamMocks{
		jobs:       mocks.NewMockJobs(ctrl),
		rides:      mocks.NewMockRideSource(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		dashboards: mocks.NewMockDashboards(ctrl),
	}
	s := NewStreams(config.DefaultDispatchConfig(), m.jobs, m.rides, m.publisher, m.dashboards, func() time.Time { return fixedNow })
	return s, m
}

func TestRideStream(t *testing.T) {
	s, m := newTestStreams(t)
	key := models.RideChannel("ride-1", "rider-1")
	job := captureEvery(m.jobs, "ride:ride-1:rider-1", 10*time.Second)
	require.True(t, s.StartRideStream("ride-1", "rider-1"))

	ride := acceptedRide()
	gomock.InOrder(
		m.publisher.EXPECT().HasMembers(key).Return(true),
		m.rides.EXPECT().GetRide(gomock.Any(), "ride-1").Return(ride, nil),
		m.publisher.EXPECT().Publish(gomock.Any(), key, models.NewRideStatusChange(ride, ride.Status, fixedNow)).Return(1),
	)
	require.NoError(t, (*job)(context.Background()))

	done := acceptedRide()
	done.Status = models.RideStatusCompleted
	m.publisher.EXPECT().HasMembers(key).Return(true)
	m.rides.EXPECT().GetRide(gomock.Any(), "ride-1").Return(done, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), key, gomock.Any()).Return(1)
	assert.ErrorIs(t, (*job)(context.Background()), scheduler.ErrStop)

	m.publisher.EXPECT().HasMembers(key).Return(false)
	assert.ErrorIs(t, (*job)(context.Background()), scheduler.ErrStop)

	m.jobs.EXPECT().Cancel("ride:ride-1:rider-1").Return(true)
	s.StopRideStream("ride-1", "rider-1")
}

func TestRideStream_RideGone(t *testing.T) {
	s, m := newTestStreams(t)
	key := models.RideChannel("ride-1", "rider-1")
	job := captureEvery(m.jobs, "ride:ride-1:rider-1", 10*time.Second)
	s.StartRideStream("ride-1", "rider-1")

	m.publisher.EXPECT().HasMembers(key).Return(true).Times(2)
	m.rides.EXPECT().GetRide(gomock.Any(), "ride-1").Return(nil, errors.New("db down"))
	assert.EqualError(t, (*job)(context.Background()), "db down")

	m.rides.EXPECT().GetRide(gomock.Any(), "ride-1").Return(nil, apperrors.NotFound("ride", "ride-1"))
	assert.ErrorIs(t, (*job)(context.Background()), scheduler.ErrStop)
}

func TestDashboardTick(t *testing.T) {
	s, m := newTestStreams(t)
	sub := models.DashboardSubscription{UserID: "driver-1", Role: models.RoleDriver}
	key := models.DashboardChannel("driver-1", models.RoleDriver)
	job := captureEvery(m.jobs, "dashboard:driver-1:driver", 30*time.Second)
	require.True(t, s.StartDashboard(sub))

	updates := []models.DashboardUpdate{
		{Payload: models.RideStatusSnapshot{}, Timestamp: fixedNow},
		{Payload: models.EarningsSnapshot{UserID: "driver-1"}, Timestamp: fixedNow},
	}
	m.publisher.EXPECT().HasMembers(key).Return(true)
	m.dashboards.EXPECT().Refresh(gomock.Any(), sub).Return(updates, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), key, gomock.Any()).Return(1).Times(2)
	require.NoError(t, (*job)(context.Background()))

	m.publisher.EXPECT().HasMembers(key).Return(true)
	m.dashboards.EXPECT().Refresh(gomock.Any(), sub).Return(nil, errors.New("db down"))
	assert.Error(t, (*job)(context.Background()))

	m.publisher.EXPECT().HasMembers(key).Return(false)
	assert.ErrorIs(t, (*job)(context.Background()), scheduler.ErrStop)

	m.jobs.EXPECT().Cancel("dashboard:driver-1:driver").Return(true)
	s.StopDashboard("driver-1", models.RoleDriver)
}
