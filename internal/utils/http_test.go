package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext()

	err := SuccessResponse(c, http.StatusCreated, "Resource created", map[string]string{"id": "123"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Resource created", response.Message)
	assert.Equal(t, map[string]interface{}{"id": "123"}, response.Data)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c echo.Context) error
		wantStatus int
		wantError  string
	}{
		{
			name:       "Bad request",
			call:       func(c echo.Context) error { return BadRequestResponse(c, "invalid request body") },
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
		{
			name:       "Unauthorized default message",
			call:       func(c echo.Context) error { return UnauthorizedResponse(c, "") },
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name: "Rate limited service error",
			call: func(c echo.Context) error {
				return AppErrorResponse(c, fmt.Errorf("driver d1: %w", apperrors.ErrRateLimited))
			},
			wantStatus: http.StatusTooManyRequests,
			wantError:  "driver d1: updates too frequent",
		},
		{
			name:       "Internal error hides detail",
			call:       func(c echo.Context) error { return AppErrorResponse(c, errors.New("pq: connection refused")) },
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.wantError, response.Error)
			assert.Equal(t, tt.wantStatus, response.Code)
		})
	}
}
