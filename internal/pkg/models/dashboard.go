package models

import (
	"encoding/json"
	"time"

	"github.com/piresc/dispatch/internal/pkg/constants"
)

// DashboardUpdateType is the wire tag of a dashboard payload
type DashboardUpdateType string

const (
	DashboardInitialSnapshot DashboardUpdateType = "initial_snapshot"
	DashboardRideStatus      DashboardUpdateType = "ride_status"
	DashboardNearbyDrivers   DashboardUpdateType = "nearby_drivers"
	DashboardNearbyRides     DashboardUpdateType = "nearby_rides"
	DashboardEarnings        DashboardUpdateType = "earnings"
)

// DashboardPayload is implemented only by the payload types in this file
type DashboardPayload interface {
	dashboardPayload()
}

// RideStatusSnapshot is the user's current ride, nil when there is none
type RideStatusSnapshot struct {
	Ride *Ride `json:"ride"`
}

// NearbyDriversSnapshot lists candidates around a rider
type NearbyDriversSnapshot struct {
	Origin   Location        `json:"origin"`
	RadiusKm float64         `json:"radiusKm"`
	Drivers  []*NearbyDriver `json:"drivers"`
}

// NearbyRidesSnapshot lists open ride requests around a driver
type NearbyRidesSnapshot struct {
	Origin   Location      `json:"origin"`
	RadiusKm float64       `json:"radiusKm"`
	Rides    []*NearbyRide `json:"rides"`
}

// EarningsSnapshot is the latest earnings summary pushed by the payments collaborator
type EarningsSnapshot struct {
	UserID         string    `json:"userId"`
	Today          float64   `json:"today"`
	Week           float64   `json:"week"`
	Currency       string    `json:"currency"`
	CompletedRides int       `json:"completedRides"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// InitialSnapshot is pushed once when a dashboard subscription starts
type InitialSnapshot struct {
	Role          string            `json:"role"`
	Ride          *Ride             `json:"ride"`
	NearbyDrivers []*NearbyDriver   `json:"nearbyDrivers,omitempty"`
	NearbyRides   []*NearbyRide     `json:"nearbyRides,omitempty"`
	Earnings      *EarningsSnapshot `json:"earnings,omitempty"`
}

func (RideStatusSnapshot) dashboardPayload()    {}
func (NearbyDriversSnapshot) dashboardPayload() {}
func (NearbyRidesSnapshot) dashboardPayload()   {}
func (EarningsSnapshot) dashboardPayload()      {}
func (InitialSnapshot) dashboardPayload()       {}

// DashboardUpdateTypeOf returns the wire tag of a payload
func DashboardUpdateTypeOf(p DashboardPayload) DashboardUpdateType {
	switch p.(type) {
	case InitialSnapshot, *InitialSnapshot:
		return DashboardInitialSnapshot
	case RideStatusSnapshot, *RideStatusSnapshot:
		return DashboardRideStatus
	case NearbyDriversSnapshot, *NearbyDriversSnapshot:
		return DashboardNearbyDrivers
	case NearbyRidesSnapshot, *NearbyRidesSnapshot:
		return DashboardNearbyRides
	case EarningsSnapshot, *EarningsSnapshot:
		return DashboardEarnings
	default:
		panic("models: unknown dashboard payload")
	}
}

// DashboardUpdate wraps one dashboard payload
type DashboardUpdate struct {
	Payload   DashboardPayload
	Timestamp time.Time
}

func (DashboardUpdate) EventName() string { return constants.EventDashboardUpdate }

// UpdateType returns the wire tag of the wrapped payload
func (d DashboardUpdate) UpdateType() DashboardUpdateType {
	return DashboardUpdateTypeOf(d.Payload)
}

// MarshalJSON renders {updateType, data, timestamp}
func (d DashboardUpdate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		UpdateType DashboardUpdateType `json:"updateType"`
		Data       DashboardPayload    `json:"data"`
		Timestamp  time.Time           `json:"timestamp"`
	}{
		UpdateType: d.UpdateType(),
		Data:       d.Payload,
		Timestamp:  d.Timestamp,
	})
}
