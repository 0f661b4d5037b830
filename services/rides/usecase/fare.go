package usecase

import (
	"math"

	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
)

// FareCalculator prices rides from the configured per-class rate table
type FareCalculator struct {
	rates   map[models.VehicleType]models.FareRate
	taxRate float64
}

// NewFareCalculator creates a calculator for rates with taxRate applied on top
func NewFareCalculator(rates map[models.VehicleType]models.FareRate, taxRate float64) *FareCalculator {
	return &FareCalculator{rates: rates, taxRate: taxRate}
}

// Fare returns (base + perMinute*minutes + perKm*km) * multiplier * (1+tax),
// floored at the class minimum and rounded to cents
func (f *FareCalculator) Fare(vt models.VehicleType, distanceKm, minutes float64) (float64, error) {
	rate, ok := f.rates[vt]
	if !ok {
		return 0, apperrors.Validation("no fare configured for vehicle type %q", vt)
	}
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		distanceKm = 0
	}
	if minutes < 0 || math.IsNaN(minutes) {
		minutes = 0
	}

	multiplier := rate.Multiplier
	if multiplier <= 0 {
		multiplier = 1
	}
	fare := (rate.BaseFare + rate.PerMinute*minutes + rate.PerKm*distanceKm) * multiplier * (1 + f.taxRate)
	if fare < rate.MinimumFare {
		fare = rate.MinimumFare
	}
	return utils.RoundTo(fare, 2), nil
}
