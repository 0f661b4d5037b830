package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/dispatch/internal/pkg/jwt"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var testJWT = models.JWTConfig{Secret: "middleware-secret", Expiration: 5}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddleware(t *testing.T) {
	token, _, err := jwtpkg.GenerateToken("rider-7", models.RoleRider, testJWT)
	require.NoError(t, err)

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, Actor(c))
	}, JWTAuthMiddleware(testJWT))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := serve(e, req)
			assert.Equal(t, tt.status, rec.Code)

			if tt.status == http.StatusOK {
				var actor models.Actor
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actor))
				assert.Equal(t, models.Actor{UserID: "rider-7", Role: models.RoleRider}, actor)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	e.GET("/drivers-only", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextUserRole, c.Request().Header.Get("X-Role"))
			return next(c)
		}
	}, RequireRole(models.RoleDriver))

	req := httptest.NewRequest(http.MethodGet, "/drivers-only", nil)
	req.Header.Set("X-Role", models.RoleRider)
	assert.Equal(t, http.StatusForbidden, serve(e, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/drivers-only", nil)
	req.Header.Set("X-Role", models.RoleDriver)
	assert.Equal(t, http.StatusNoContent, serve(e, req).Code)
}

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		sent     string
		status   int
	}{
		{name: "missing key", expected: "k", sent: "", status: http.StatusUnauthorized},
		{name: "wrong key", expected: "k", sent: "x", status: http.StatusUnauthorized},
		{name: "disabled when unset", expected: "", sent: "x", status: http.StatusUnauthorized},
		{name: "valid key", expected: "k", sent: "k", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.POST("/internal/x", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, ValidateAPIKey(tt.expected))

			req := httptest.NewRequest(http.MethodPost, "/internal/x", nil)
			if tt.sent != "" {
				req.Header.Set(APIKeyHeader, tt.sent)
			}
			assert.Equal(t, tt.status, serve(e, req).Code)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "fixed")
	rec = serve(e, req)
	assert.Equal(t, "fixed", rec.Header().Get(echo.HeaderXRequestID))
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	var logBuffer bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&logBuffer),
		zapcore.DebugLevel,
	)
	zl := &logger.ZapLogger{Logger: zap.New(core)}

	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.Use(PanicRecoveryWithZapMiddleware(zl))
	e.GET("/boom", func(c echo.Context) error {
		panic("ride table on fire")
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "request_id")
	assert.Contains(t, logBuffer.String(), "ride table on fire")
	assert.Contains(t, logBuffer.String(), "stack_trace")
}

func TestPanicRecoveryWithZapMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryWithZapMiddleware(nil) })
}

func TestUserRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := echo.New()
	e.POST("/rides", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextUserID, "rider-1")
			return next(c)
		}
	}, UserRateLimiter(2, time.Minute, client))

	for i := 0; i < 2; i++ {
		rec := serve(e, httptest.NewRequest(http.MethodPost, "/rides", nil))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/rides", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	mr.FastForward(time.Minute)
	rec = serve(e, httptest.NewRequest(http.MethodPost, "/rides", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUserRateLimiter_RedisDownFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	e := echo.New()
	e.POST("/rides", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, UserRateLimiter(1, time.Minute, client))

	assert.Equal(t, http.StatusCreated, serve(e, httptest.NewRequest(http.MethodPost, "/rides", nil)).Code)
}
