package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/match/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGetContext(target, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextUserRole, role)
	return c, rec
}

func TestMatchHandler_NearbyDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockUC)

	mockUC.EXPECT().NearbyDrivers(gomock.Any(), models.NearbyDriversQuery{
		Origin:      models.Location{Latitude: 51.2438, Longitude: -0.5906},
		RadiusKm:    10,
		VehicleType: models.VehicleComfort,
	}).Return([]*models.NearbyDriver{{DriverID: "driver-1", DistanceKm: 1.641, EtaMinutes: 3}}, nil)

	c, rec := newGetContext("/api/v1/drivers/nearby?lat=51.2438&lon=-0.5906&radius=10&vehicleType=comfort", "rider-1", models.RoleRider)
	require.NoError(t, handler.NearbyDrivers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []models.NearbyDriver `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, 3, body.Data[0].EtaMinutes)
}

func TestMatchHandler_NearbyDriversExcludesCallingDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockUC)

	mockUC.EXPECT().NearbyDrivers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.NearbyDriversQuery) ([]*models.NearbyDriver, error) {
			assert.Equal(t, "driver-7", q.ExcludeDriverID)
			assert.Zero(t, q.RadiusKm)
			return []*models.NearbyDriver{}, nil
		})

	c, rec := newGetContext("/api/v1/drivers/nearby?lat=51.2&lon=-0.5", "driver-7", models.RoleDriver)
	require.NoError(t, handler.NearbyDrivers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMatchHandler_BadQueries(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"missing lon", "/api/v1/drivers/nearby?lat=51.2"},
		{"bad lat", "/api/v1/drivers/nearby?lat=north&lon=0"},
		{"bad radius", "/api/v1/drivers/nearby?lat=1&lon=0&radius=far"},
		{"bad vehicle type", "/api/v1/drivers/nearby?lat=1&lon=0&vehicleType=bike"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			handler := NewMatchHandler(mocks.NewMockMatchUC(ctrl))

			c, rec := newGetContext(tt.target, "rider-1", models.RoleRider)
			require.NoError(t, handler.NearbyDrivers(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestMatchHandler_NearbyDriversValidationFromUseCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockUC)

	mockUC.EXPECT().NearbyDrivers(gomock.Any(), gomock.Any()).Return(nil, apperrors.Validation("origin out of range"))

	c, rec := newGetContext("/api/v1/drivers/nearby?lat=95&lon=0", "rider-1", models.RoleRider)
	require.NoError(t, handler.NearbyDrivers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchHandler_NearbyRideRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMatchUC(ctrl)
	handler := NewMatchHandler(mockUC)

	origin := models.Location{Latitude: 51.2362, Longitude: -0.5704}
	mockUC.EXPECT().NearbyRideRequests(gomock.Any(), origin, 5.0, 90*time.Second).
		Return([]*models.NearbyRide{{RideID: "ride-1"}}, nil)

	c, rec := newGetContext("/api/v1/rides/requests/nearby?lat=51.2362&lon=-0.5704&radius=5&window=90s", "driver-1", models.RoleDriver)
	require.NoError(t, handler.NearbyRideRequests(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newGetContext("/api/v1/rides/requests/nearby?lat=51.2362&lon=-0.5704&window=soon", "driver-1", models.RoleDriver)
	require.NoError(t, handler.NearbyRideRequests(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchHandler_RideRequestsRequireDriverRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewMatchHandler(mocks.NewMockMatchUC(ctrl))

	e := echo.New()
	g := e.Group("/api/v1", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextUserRole, models.RoleRider)
			return next(c)
		}
	})
	handler.RegisterRoutes(g)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rides/requests/nearby?lat=1&lon=1", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
