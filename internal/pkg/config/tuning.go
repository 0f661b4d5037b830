package config

import (
	"fmt"
	"strings"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/spf13/viper"
)

type tuningPoint struct {
	Lat float64 `mapstructure:"lat"`
	Lon float64 `mapstructure:"lon"`
}

type tuningFile struct {
	SearchRadiusKm  float64                    `mapstructure:"search_radius_km"`
	MaxCandidates   int                        `mapstructure:"max_candidates"`
	AverageSpeedKmh float64                    `mapstructure:"average_speed_kmh"`
	TaxRate         *float64                   `mapstructure:"tax_rate"`
	Currency        string                     `mapstructure:"currency"`
	Fares           map[string]models.FareRate `mapstructure:"fares"`
	Geofence        struct {
		Strategy string        `mapstructure:"strategy"`
		Polygon  []tuningPoint `mapstructure:"polygon"`
	} `mapstructure:"geofence"`
	Drivers []models.DriverProfile `mapstructure:"drivers"`
}

// LoadTuning reads a YAML, JSON or TOML tuning file and overlays the values it sets onto dst
func LoadTuning(path string, dst *models.DispatchConfig) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("DISPATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}

	var tf tuningFile
	if err := v.Unmarshal(&tf); err != nil {
		return fmt.Errorf("failed to decode tuning file %s: %w", path, err)
	}

	if tf.SearchRadiusKm > 0 {
		dst.SearchRadiusKm = tf.SearchRadiusKm
	}
	if tf.MaxCandidates > 0 {
		dst.MaxCandidates = tf.MaxCandidates
	}
	if tf.AverageSpeedKmh > 0 {
		dst.AverageSpeedKmh = tf.AverageSpeedKmh
	}
	if tf.TaxRate != nil {
		dst.TaxRate = *tf.TaxRate
	}
	if tf.Currency != "" {
		dst.Currency = tf.Currency
	}

	for name, rate := range tf.Fares {
		vt := models.VehicleType(strings.ToLower(name))
		if !vt.Valid() {
			return fmt.Errorf("tuning file %s: unknown vehicle type %q", path, name)
		}
		if dst.Fares == nil {
			dst.Fares = map[models.VehicleType]models.FareRate{}
		}
		dst.Fares[vt] = rate
	}

	if tf.Geofence.Strategy != "" {
		dst.Geofence.Strategy = tf.Geofence.Strategy
	}
	if len(tf.Geofence.Polygon) > 0 {
		polygon := make([]models.Location, 0, len(tf.Geofence.Polygon))
		for _, p := range tf.Geofence.Polygon {
			polygon = append(polygon, models.Location{Latitude: p.Lat, Longitude: p.Lon})
		}
		dst.Geofence.Polygon = polygon
	}

	if len(tf.Drivers) > 0 {
		dst.Drivers = tf.Drivers
	}
	return nil
}
