package models

import "time"

// DriverProfile holds the externally owned flags that decide matching eligibility
type DriverProfile struct {
	ProfileID   string      `json:"profileId" db:"profile_id" mapstructure:"profile_id"`
	AccountID   string      `json:"accountId" db:"account_id" mapstructure:"account_id"`
	Online      bool        `json:"online" db:"online" mapstructure:"online"`
	Approved    bool        `json:"approved" db:"approved" mapstructure:"approved"`
	Active      bool        `json:"active" db:"active" mapstructure:"active"`
	VehicleType VehicleType `json:"vehicleType" db:"vehicle_type" mapstructure:"vehicle_type"`
}

// Eligible reports whether the driver may appear in match results
func (p *DriverProfile) Eligible() bool {
	return p.Online && p.Approved && p.Active
}

// DriverRefKind tells which identifier space a DriverRef uses
type DriverRefKind string

const (
	DriverRefAccount DriverRefKind = "account"
	DriverRefProfile DriverRefKind = "profile"
)

// DriverRef is a driver identifier tagged with its kind
type DriverRef struct {
	Kind DriverRefKind `json:"kind"`
	ID   string        `json:"id"`
}

// AccountRef is shorthand for a reference by account id
func AccountRef(id string) DriverRef {
	return DriverRef{Kind: DriverRefAccount, ID: id}
}

// ProfileRef is shorthand for a reference by driver profile id
func ProfileRef(id string) DriverRef {
	return DriverRef{Kind: DriverRefProfile, ID: id}
}

// NearbyDriver is a ranked match candidate
type NearbyDriver struct {
	DriverID    string      `json:"driverId"`
	Latitude    float64     `json:"lat"`
	Longitude   float64     `json:"lon"`
	Heading     float64     `json:"heading"`
	Speed       float64     `json:"speed"`
	DistanceKm  float64     `json:"distanceKm"`
	EtaMinutes  int         `json:"etaMinutes"`
	VehicleType VehicleType `json:"vehicleType,omitempty"`
	CapturedAt  time.Time   `json:"capturedAt"`
}

// NearbyRide is a ranked open ride request
type NearbyRide struct {
	RideID        string      `json:"rideId"`
	RiderID       string      `json:"riderId"`
	Pickup        Location    `json:"pickup"`
	Dropoff       Location    `json:"dropoff"`
	VehicleType   VehicleType `json:"vehicleType"`
	DistanceKm    float64     `json:"distanceKm"`
	EstimatedFare float64     `json:"estimatedFare"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// NearbyDriversQuery selects match candidates around an origin
type NearbyDriversQuery struct {
	Origin          Location
	RadiusKm        float64
	ExcludeDriverID string
	// VehicleType keeps only drivers of one class when set
	VehicleType VehicleType
	// Eligible overrides DriverProfile.Eligible when set
	Eligible func(*DriverProfile) bool
}
