package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/location/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(body string, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/drivers/location", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextUserRole, models.RoleDriver)
	}
	return c, rec
}

func TestLocationHandler_UpdateLocation(t *testing.T) {
	captured := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		userID         string
		mockSetup      func(*mocks.MockLocationUC)
		expectedStatus int
	}{
		{
			name:   "Success",
			body:   `{"lat":51.2362,"lon":-0.5704,"heading":45}`,
			userID: "driver-1",
			mockSetup: func(uc *mocks.MockLocationUC) {
				uc.EXPECT().
					UpdateDriverLocation(gomock.Any(), models.AccountRef("driver-1"), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ models.DriverRef, u models.PositionUpdate) (*models.DriverPosition, error) {
						require.NotNil(t, u.Heading)
						assert.Equal(t, 45.0, *u.Heading)
						assert.Nil(t, u.Speed)
						return &models.DriverPosition{DriverID: "driver-1", Latitude: *u.Latitude, Longitude: *u.Longitude, CapturedAt: captured}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unauthenticated",
			body:           `{"lat":51.2362,"lon":-0.5704}`,
			mockSetup:      func(*mocks.MockLocationUC) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid request body",
			body:           "invalid json",
			userID:         "driver-1",
			mockSetup:      func(*mocks.MockLocationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Validation error",
			body:   `{"lat":91,"lon":0}`,
			userID: "driver-1",
			mockSetup: func(uc *mocks.MockLocationUC) {
				uc.EXPECT().UpdateDriverLocation(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, apperrors.Validation("coordinates out of range"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Too frequent",
			body:   `{"lat":51.2362,"lon":-0.5704}`,
			userID: "driver-1",
			mockSetup: func(uc *mocks.MockLocationUC) {
				uc.EXPECT().UpdateDriverLocation(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("driver driver-1: %w", apperrors.ErrRateLimited))
			},
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			name:   "Store failure",
			body:   `{"lat":51.2362,"lon":-0.5704}`,
			userID: "driver-1",
			mockSetup: func(uc *mocks.MockLocationUC) {
				uc.EXPECT().UpdateDriverLocation(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockLocationUC(ctrl)
			tt.mockSetup(mockUC)

			handler := NewLocationHandler(mockUC)
			c, rec := newContext(tt.body, tt.userID)

			require.NoError(t, handler.UpdateLocation(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "redis down")
			}
		})
	}
}

func TestLocationHandler_RegisterRoutesRequiresDriverRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewLocationHandler(mocks.NewMockLocationUC(ctrl))

	e := echo.New()
	g := e.Group("/api/v1", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextUserID, "rider-1")
			c.Set(middleware.ContextUserRole, models.RoleRider)
			return next(c)
		}
	})
	handler.RegisterRoutes(g)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/drivers/location", bytes.NewBufferString(`{"lat":1,"lon":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}
