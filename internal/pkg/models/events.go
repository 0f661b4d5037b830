package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/dispatch/internal/pkg/constants"
)

// Event is a server originated message with a stable payload shape
type Event interface {
	EventName() string
}

// EncodeEvent renders an event into the websocket wire envelope
func EncodeEvent(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", e.EventName(), err)
	}
	return json.Marshal(WSMessage{Event: e.EventName(), Data: data})
}

// RideRequest offers a ride to a driver
type RideRequest struct {
	RideID          string      `json:"rideId"`
	Pickup          Location    `json:"pickup"`
	Dropoff         Location    `json:"dropoff"`
	DistanceKm      float64     `json:"distanceKm"`
	EstimatedFare   float64     `json:"estimatedFare"`
	VehicleType     VehicleType `json:"vehicleType"`
	ExpiresAt       time.Time   `json:"expiresAt"`
	TimeLeftSeconds int         `json:"timeLeftSeconds"`
}

func (RideRequest) EventName() string { return constants.EventRideRequest }

// DriverLocationUpdate is pushed to ride participants on every accepted position write
type DriverLocationUpdate struct {
	RideID    string    `json:"rideId,omitempty"`
	DriverID  string    `json:"driverId"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lon"`
	Heading   float64   `json:"heading"`
	Speed     float64   `json:"speed"`
	Timestamp time.Time `json:"timestamp"`
}

func (DriverLocationUpdate) EventName() string { return constants.EventDriverLocationUpdate }

// RideStatusChange carries the full ride next to its new status
type RideStatusChange struct {
	*Ride
	RideID    string     `json:"rideId"`
	Status    RideStatus `json:"status"`
	Previous  RideStatus `json:"previousStatus,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

func (RideStatusChange) EventName() string { return constants.EventRideStatusChange }

// NewRideStatusChange builds the status event for a ride
func NewRideStatusChange(ride *Ride, previous RideStatus, at time.Time) RideStatusChange {
	return RideStatusChange{Ride: ride, RideID: ride.ID, Status: ride.Status, Previous: previous, Timestamp: at}
}

// RideProgress is the periodic distance, ETA and running fare of an active ride
type RideProgress struct {
	RideID         string     `json:"rideId"`
	Status         RideStatus `json:"status"`
	Target         string     `json:"target"`
	DistanceKm     float64    `json:"distanceKm"`
	EtaMinutes     int        `json:"etaMinutes"`
	RunningFare    *float64   `json:"runningFare,omitempty"`
	ElapsedMinutes *float64   `json:"elapsedMinutes,omitempty"`
	Timestamp      time.Time  `json:"timestamp"`
}

func (RideProgress) EventName() string { return constants.EventRideProgress }

// Progress targets
const (
	ProgressTargetPickup  = "pickup"
	ProgressTargetDropoff = "dropoff"
)

// WalletUpdate relays a wallet balance change from the payments collaborator
type WalletUpdate struct {
	UserID    string          `json:"userId"`
	Wallet    json.RawMessage `json:"wallet"`
	Timestamp time.Time       `json:"timestamp"`
}

func (WalletUpdate) EventName() string { return constants.EventWalletUpdate }

// LocationReminder types, from least to most severe
const (
	ReminderAging      = "aging"
	ReminderStale      = "stale"
	ReminderNoLocation = "no_location"
)

// LocationReminder nudges an online driver whose position is missing or old
type LocationReminder struct {
	Type           string     `json:"type"`
	Message        string     `json:"message"`
	RequiresAction bool       `json:"requiresAction"`
	LastUpdate     *time.Time `json:"lastUpdate,omitempty"`
}

func (LocationReminder) EventName() string { return constants.EventLocationReminder }

// RideHistoryUpdate is sent to ride_history subscribers when a ride ends
type RideHistoryUpdate struct {
	Ride      *Ride     `json:"ride"`
	Timestamp time.Time `json:"timestamp"`
}

func (RideHistoryUpdate) EventName() string { return constants.EventRideHistoryUpdate }

// Pong answers a client ping
type Pong struct {
	Timestamp time.Time `json:"timestamp"`
}

func (Pong) EventName() string { return constants.EventPong }

// ErrorEvent reports a rejected client message
type ErrorEvent struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (ErrorEvent) EventName() string { return constants.EventError }
