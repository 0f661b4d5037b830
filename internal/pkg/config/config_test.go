package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := loadConfigFromEnv()

	assert.Equal(t, "dispatch", cfg.App.Name)
	assert.Equal(t, models.StorageExternal, cfg.Storage.Backend)
	assert.Equal(t, 10.0, cfg.Dispatch.SearchRadiusKm)
	assert.Equal(t, 20, cfg.Dispatch.MaxCandidates)
	assert.Equal(t, 5*time.Minute, cfg.Dispatch.DriverFreshness)
	assert.Equal(t, 2*time.Minute, cfg.Dispatch.RideRequestFreshness)
	assert.Equal(t, 30*time.Second, cfg.Dispatch.OfferTimeout)
	assert.Equal(t, models.GeofenceBoundingBox, cfg.Dispatch.Geofence.Strategy)
	assert.Len(t, cfg.Dispatch.Geofence.Polygon, 5)
	assert.Len(t, cfg.Dispatch.Fares, len(models.VehicleTypes))
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_STORAGE", models.StorageMemory)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DISPATCH_SEARCH_RADIUS_KM", "3.5")
	t.Setenv("DISPATCH_OFFER_TIMEOUT", "45s")
	t.Setenv("DISPATCH_MAX_CANDIDATES", "not-a-number")
	t.Setenv("DISPATCH_GEOFENCE_STRATEGY", models.GeofencePolygon)

	cfg := loadConfigFromEnv()

	assert.Equal(t, models.StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3.5, cfg.Dispatch.SearchRadiusKm)
	assert.Equal(t, 45*time.Second, cfg.Dispatch.OfferTimeout)
	assert.Equal(t, 20, cfg.Dispatch.MaxCandidates)
	assert.Equal(t, models.GeofencePolygon, cfg.Dispatch.Geofence.Strategy)
}

func TestGetEnvAsDuration_Invalid(t *testing.T) {
	t.Setenv("SOME_DURATION", "soon")
	assert.Equal(t, time.Minute, GetEnvAsDuration("SOME_DURATION", time.Minute))
}

const tuningYAML = `
search_radius_km: 7
tax_rate: 0
fares:
  economy:
    base_fare: 3
    per_km: 1
    per_minute: 0.5
    multiplier: 1
    minimum_fare: 4
geofence:
  strategy: polygon
  polygon:
    - {lat: 51.0, lon: -1.0}
    - {lat: 51.0, lon: 0.0}
    - {lat: 52.0, lon: 0.0}
drivers:
  - profile_id: p-1
    account_id: a-1
    online: true
    approved: true
    active: true
    vehicle_type: comfort
`

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tuningYAML), 0o600))

	d := DefaultDispatchConfig()
	require.NoError(t, LoadTuning(path, &d))

	assert.Equal(t, 7.0, d.SearchRadiusKm)
	assert.Equal(t, 0.0, d.TaxRate)
	assert.Equal(t, 20, d.MaxCandidates)
	assert.Equal(t, models.FareRate{BaseFare: 3, PerKm: 1, PerMinute: 0.5, Multiplier: 1, MinimumFare: 4}, d.Fares[models.VehicleEconomy])
	assert.Equal(t, DefaultFares()[models.VehicleComfort], d.Fares[models.VehicleComfort])
	assert.Equal(t, models.GeofencePolygon, d.Geofence.Strategy)
	require.Len(t, d.Geofence.Polygon, 3)
	assert.Equal(t, models.Location{Latitude: 52, Longitude: 0}, d.Geofence.Polygon[2])
	require.Len(t, d.Drivers, 1)
	assert.Equal(t, "a-1", d.Drivers[0].AccountID)
	assert.True(t, d.Drivers[0].Eligible())
	assert.Equal(t, models.VehicleComfort, d.Drivers[0].VehicleType)
}

func TestLoadTuning_UnknownVehicleType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fares:\n  hovercraft:\n    base_fare: 1\n"), 0o600))

	d := DefaultDispatchConfig()
	assert.Error(t, LoadTuning(path, &d))
}

func TestLoadTuning_MissingFile(t *testing.T) {
	d := DefaultDispatchConfig()
	assert.Error(t, LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"), &d))
}
