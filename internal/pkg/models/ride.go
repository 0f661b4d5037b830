package models

import "time"

// RideStatus is the lifecycle state of a ride
type RideStatus string

const (
	RideStatusSearching  RideStatus = "searching"
	RideStatusAssigned   RideStatus = "assigned"
	RideStatusAccepted   RideStatus = "accepted"
	RideStatusArrived    RideStatus = "arrived"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
	RideStatusNoDrivers  RideStatus = "no_drivers"
	RideStatusScheduled  RideStatus = "scheduled"
)

// rideTransitions is the complete set of allowed edges. Anything not listed is rejected.
var rideTransitions = map[RideStatus][]RideStatus{
	RideStatusSearching:  {RideStatusAssigned, RideStatusNoDrivers, RideStatusScheduled, RideStatusCancelled},
	RideStatusAssigned:   {RideStatusAccepted, RideStatusNoDrivers, RideStatusScheduled, RideStatusCancelled},
	RideStatusAccepted:   {RideStatusArrived, RideStatusInProgress, RideStatusCancelled},
	RideStatusArrived:    {RideStatusInProgress, RideStatusCancelled},
	RideStatusInProgress: {RideStatusCompleted},
	RideStatusNoDrivers:  {RideStatusSearching, RideStatusCancelled},
	RideStatusScheduled:  {RideStatusSearching, RideStatusCancelled},
}

// Valid reports whether the status is a known ride status
func (s RideStatus) Valid() bool {
	switch s {
	case RideStatusSearching, RideStatusAssigned, RideStatusAccepted, RideStatusArrived,
		RideStatusInProgress, RideStatusCompleted, RideStatusCancelled, RideStatusNoDrivers,
		RideStatusScheduled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is possible
func (s RideStatus) Terminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// Tracked reports whether rides in this status get periodic progress refreshes
func (s RideStatus) Tracked() bool {
	return s == RideStatusAssigned || s == RideStatusAccepted || s == RideStatusInProgress
}

// Ongoing reports whether a driver is bound to the ride
func (s RideStatus) Ongoing() bool {
	return s == RideStatusAssigned || s == RideStatusAccepted || s == RideStatusArrived || s == RideStatusInProgress
}

// CanTransitionTo reports whether next is reachable from s in one step
func (s RideStatus) CanTransitionTo(next RideStatus) bool {
	for _, allowed := range rideTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OngoingRideStatuses lists the statuses in which a driver is bound to a ride
var OngoingRideStatuses = []RideStatus{RideStatusAssigned, RideStatusAccepted, RideStatusArrived, RideStatusInProgress}

// VehicleType is the vehicle class requested for a ride
type VehicleType string

const (
	VehicleEconomy VehicleType = "economy"
	VehicleComfort VehicleType = "comfort"
	VehiclePremium VehicleType = "premium"
	VehicleXL      VehicleType = "xl"
)

// VehicleTypes lists every supported vehicle class
var VehicleTypes = []VehicleType{VehicleEconomy, VehicleComfort, VehiclePremium, VehicleXL}

// Valid reports whether the vehicle class is supported
func (v VehicleType) Valid() bool {
	switch v {
	case VehicleEconomy, VehicleComfort, VehiclePremium, VehicleXL:
		return true
	}
	return false
}

// Ride is a single trip request and its lifecycle timestamps
type Ride struct {
	ID            string      `json:"id"`
	RiderID       string      `json:"riderId"`
	DriverID      string      `json:"driverId,omitempty"`
	Pickup        Location    `json:"pickup"`
	Dropoff       Location    `json:"dropoff"`
	VehicleType   VehicleType `json:"vehicleType"`
	Status        RideStatus  `json:"status"`
	DistanceKm    float64     `json:"distanceKm"`
	EstimatedFare float64     `json:"estimatedFare"`
	FinalFare     *float64    `json:"finalFare,omitempty"`
	CancelReason  string      `json:"cancelReason,omitempty"`
	ScheduledAt   *time.Time  `json:"scheduledAt,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	MatchedAt     *time.Time  `json:"matchedAt,omitempty"`
	AcceptedAt    *time.Time  `json:"acceptedAt,omitempty"`
	ArrivedAt     *time.Time  `json:"arrivedAt,omitempty"`
	StartedAt     *time.Time  `json:"startedAt,omitempty"`
	CompletedAt   *time.Time  `json:"completedAt,omitempty"`
	CancelledAt   *time.Time  `json:"cancelledAt,omitempty"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// Clone returns a copy that can be mutated without affecting r
func (r *Ride) Clone() *Ride {
	c := *r
	return &c
}

// HasParty reports whether userID is the rider or the assigned driver
func (r *Ride) HasParty(userID string) bool {
	return userID != "" && (r.RiderID == userID || r.DriverID == userID)
}

// Actor identifies who requests a ride transition
type Actor struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// SystemActor is used for transitions driven by the dispatcher and timers
var SystemActor = Actor{Role: RoleSystem}

const (
	RoleRider  = "rider"
	RoleDriver = "driver"
	RoleSystem = "system"
)

// FareRate is the pricing table for one vehicle class
type FareRate struct {
	BaseFare    float64 `json:"baseFare" mapstructure:"base_fare"`
	PerKm       float64 `json:"perKm" mapstructure:"per_km"`
	PerMinute   float64 `json:"perMinute" mapstructure:"per_minute"`
	Multiplier  float64 `json:"multiplier" mapstructure:"multiplier"`
	MinimumFare float64 `json:"minimumFare" mapstructure:"minimum_fare"`
}

// FareEstimateRequest asks for a price between two points
type FareEstimateRequest struct {
	Pickup      Location    `json:"pickup"`
	Dropoff     Location    `json:"dropoff"`
	VehicleType VehicleType `json:"vehicleType,omitempty"`
}

// FareEstimate is the quoted price for one vehicle class
type FareEstimate struct {
	VehicleType     VehicleType `json:"vehicleType"`
	DistanceKm      float64     `json:"distanceKm"`
	DurationMinutes float64     `json:"durationMinutes"`
	Fare            float64     `json:"fare"`
}

// CreateRideRequest is submitted by a rider who confirmed an estimate
type CreateRideRequest struct {
	Pickup      Location    `json:"pickup"`
	Dropoff     Location    `json:"dropoff"`
	VehicleType VehicleType `json:"vehicleType"`
	ScheduledAt *time.Time  `json:"scheduledAt,omitempty"`
}

// RideStatusMessage is published on NATS after every accepted transition
type RideStatusMessage struct {
	RideID     string     `json:"ride_id"`
	RiderID    string     `json:"rider_id"`
	DriverID   string     `json:"driver_id,omitempty"`
	From       RideStatus `json:"from"`
	Status     RideStatus `json:"status"`
	FinalFare  *float64   `json:"final_fare,omitempty"`
	DistanceKm float64    `json:"distance_km"`
	ChangedAt  time.Time  `json:"changed_at"`
}
