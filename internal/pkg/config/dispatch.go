package config

import (
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// DefaultServiceArea is a pentagon around central Guildford
var DefaultServiceArea = []models.Location{
	{Latitude: 51.2710, Longitude: -0.6150},
	{Latitude: 51.2750, Longitude: -0.5350},
	{Latitude: 51.2300, Longitude: -0.5100},
	{Latitude: 51.1950, Longitude: -0.5650},
	{Latitude: 51.2200, Longitude: -0.6300},
}

// DefaultFares returns the fare table for every vehicle class
func DefaultFares() map[models.VehicleType]models.FareRate {
	rate := func(multiplier, minimum float64) models.FareRate {
		return models.FareRate{BaseFare: 2.50, PerKm: 1.25, PerMinute: 0.20, Multiplier: multiplier, MinimumFare: minimum}
	}
	return map[models.VehicleType]models.FareRate{
		models.VehicleEconomy: rate(1.0, 5),
		models.VehicleComfort: rate(1.3, 7),
		models.VehiclePremium: rate(1.8, 10),
		models.VehicleXL:      rate(1.5, 8),
	}
}

// DefaultDispatchConfig returns the dispatch knobs used when nothing overrides them
func DefaultDispatchConfig() models.DispatchConfig {
	return models.DispatchConfig{
		SearchRadiusKm:       10,
		MaxCandidates:        20,
		DriverFreshness:      5 * time.Minute,
		RideRequestFreshness: 2 * time.Minute,
		AverageSpeedKmh:      30,
		OfferTimeout:         30 * time.Second,
		UpdateInterval:       time.Second,
		PositionRetention:    24 * time.Hour,
		RideCreateLimit:      5,
		RideCreateWindow:     time.Minute,

		ActiveRideInterval: 10 * time.Second,
		RideStreamInterval: 10 * time.Second,
		StalenessInterval:  time.Minute,
		DashboardInterval:  30 * time.Second,
		AgingAfter:         2 * time.Minute,
		StaleAfter:         5 * time.Minute,
		MaxJobFailures:     5,

		TaxRate:  0.2,
		Currency: "GBP",
		Fares:    DefaultFares(),
		Geofence: models.GeofenceConfig{
			Strategy: models.GeofenceBoundingBox,
			Polygon:  append([]models.Location(nil), DefaultServiceArea...),
		},
	}
}
