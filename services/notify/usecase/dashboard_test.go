package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/dispatch/internal/pkg/config"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/notify/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dashNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type dashMocks struct {
	rides     *mocks.MockRideReader
	proximity *mocks.MockProximity
	positions *mocks.MockPositionReader
}

func newTestDashboard(t *testing.T) (*DashboardUC, dashMocks) {
	ctrl := gomock.NewController(t)
	m := dashMocks{
		rides:     mocks.NewMockRideReader(ctrl),
		proximity: mocks.NewMockProximity(ctrl),
		positions: mocks.NewMockPositionReader(ctrl),
	}
	uc := NewDashboardUC(config.DefaultDispatchConfig(), m.rides, m.proximity, m.positions, func() time.Time { return dashNow })
	return uc, m
}

func TestInitialSnapshot_Rider(t *testing.T) {
	uc, m := newTestDashboard(t)
	origin := models.Location{Latitude: 51.2362, Longitude: -0.5704}
	ride := &models.Ride{ID: "ride-1", Status: models.RideStatusSearching}

	m.rides.EXPECT().GetActiveRideForUser(gomock.Any(), "rider-1").Return(ride, nil)
	m.proximity.EXPECT().NearbyDrivers(gomock.Any(), models.NearbyDriversQuery{Origin: origin}).
		Return([]*models.NearbyDriver{{DriverID: "driver-1", DistanceKm: 1.641, EtaMinutes: 3}}, nil)

	update, err := uc.InitialSnapshot(context.Background(), models.DashboardSubscription{
		UserID: "rider-1", Role: models.RoleRider, Origin: &origin,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DashboardInitialSnapshot, update.UpdateType())
	assert.Equal(t, dashNow, update.Timestamp)

	snap, ok := update.Payload.(models.InitialSnapshot)
	require.True(t, ok)
	assert.Equal(t, ride, snap.Ride)
	require.Len(t, snap.NearbyDrivers, 1)
	assert.Nil(t, snap.NearbyRides)
	assert.Nil(t, snap.Earnings)
}

func TestInitialSnapshot_DriverUsesLastPosition(t *testing.T) {
	uc, m := newTestDashboard(t)
	uc.RecordEarnings(models.EarningsSnapshot{UserID: "driver-1", Today: 42.5, UpdatedAt: dashNow})

	m.rides.EXPECT().GetActiveRideForUser(gomock.Any(), "driver-1").Return(nil, nil)
	m.positions.EXPECT().GetDriverPosition(gomock.Any(), "driver-1").
		Return(&models.DriverPosition{DriverID: "driver-1", Latitude: 51.24, Longitude: -0.57}, true, nil)
	m.proximity.EXPECT().NearbyRideRequests(gomock.Any(), models.Location{Latitude: 51.24, Longitude: -0.57}, 0.0, time.Duration(0)).
		Return(nil, errors.New("db down"))

	update, err := uc.InitialSnapshot(context.Background(), models.DashboardSubscription{UserID: "driver-1", Role: models.RoleDriver})
	require.NoError(t, err)

	snap := update.Payload.(models.InitialSnapshot)
	assert.Nil(t, snap.Ride)
	assert.Empty(t, snap.NearbyRides, "a failed search leaves the section empty")
	require.NotNil(t, snap.Earnings)
	assert.Equal(t, 42.5, snap.Earnings.Today)
}

func TestInitialSnapshot_NoOriginSkipsSearch(t *testing.T) {
	uc, m := newTestDashboard(t)

	m.rides.EXPECT().GetActiveRideForUser(gomock.Any(), "driver-1").Return(nil, nil)
	m.positions.EXPECT().GetDriverPosition(gomock.Any(), "driver-1").Return(nil, false, nil)

	update, err := uc.InitialSnapshot(context.Background(), models.DashboardSubscription{UserID: "driver-1", Role: models.RoleDriver})
	require.NoError(t, err)
	assert.Nil(t, update.Payload.(models.InitialSnapshot).NearbyRides)
}

func TestInitialSnapshot_RideLookupFails(t *testing.T) {
	uc, m := newTestDashboard(t)
	m.rides.EXPECT().GetActiveRideForUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := uc.InitialSnapshot(context.Background(), models.DashboardSubscription{UserID: "rider-1", Role: models.RoleRider})
	assert.Error(t, err)
}

func TestRefresh(t *testing.T) {
	uc, m := newTestDashboard(t)
	origin := models.Location{Latitude: 51.24, Longitude: -0.57}
	uc.RecordEarnings(models.EarningsSnapshot{UserID: "driver-1", Week: 310, UpdatedAt: dashNow})

	m.rides.EXPECT().GetActiveRideForUser(gomock.Any(), "driver-1").Return(nil, nil)
	m.proximity.EXPECT().NearbyRideRequests(gomock.Any(), origin, 0.0, time.Duration(0)).
		Return([]*models.NearbyRide{{RideID: "ride-9"}}, nil)

	updates, err := uc.Refresh(context.Background(), models.DashboardSubscription{UserID: "driver-1", Role: models.RoleDriver, Origin: &origin})
	require.NoError(t, err)

	types := make([]models.DashboardUpdateType, 0, len(updates))
	for _, u := range updates {
		types = append(types, u.UpdateType())
	}
	assert.Equal(t, []models.DashboardUpdateType{
		models.DashboardRideStatus, models.DashboardNearbyRides, models.DashboardEarnings,
	}, types)
	assert.Equal(t, 10.0, updates[1].Payload.(models.NearbyRidesSnapshot).RadiusKm)
}

func TestRecordEarnings_IgnoresOlderSnapshots(t *testing.T) {
	uc, _ := newTestDashboard(t)

	uc.RecordEarnings(models.EarningsSnapshot{UserID: "driver-1", Today: 20, UpdatedAt: dashNow})
	uc.RecordEarnings(models.EarningsSnapshot{UserID: "driver-1", Today: 10, UpdatedAt: dashNow.Add(-time.Minute)})

	assert.Equal(t, 20.0, uc.cachedEarnings("driver-1").Today)
	assert.Nil(t, uc.cachedEarnings("driver-2"))
}
