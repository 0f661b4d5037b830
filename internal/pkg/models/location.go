package models

import "time"

// Location is a coordinate with an optional human readable address
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Address   string  `json:"address,omitempty"`
}

// DriverPosition is the last known position of one driver.
// DriverID is always the driver's account identifier.
type DriverPosition struct {
	DriverID   string    `json:"driverId"`
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lon"`
	Heading    float64   `json:"heading"`
	Speed      float64   `json:"speed"` // km/h
	CapturedAt time.Time `json:"capturedAt"`
}

// Age returns how old the observation is at the given instant
func (p *DriverPosition) Age(now time.Time) time.Duration {
	return now.Sub(p.CapturedAt)
}

// FreshAt reports whether the position is strictly younger than maxAge
func (p *DriverPosition) FreshAt(now time.Time, maxAge time.Duration) bool {
	return p.Age(now) < maxAge
}

// PositionUpdate is a position report submitted by a driver client.
// Optional fields are pointers so that absent values take their defaults.
type PositionUpdate struct {
	Latitude   *float64   `json:"lat"`
	Longitude  *float64   `json:"lon"`
	Heading    *float64   `json:"heading,omitempty"`
	Speed      *float64   `json:"speed,omitempty"`
	CapturedAt *time.Time `json:"capturedAt,omitempty"`
}

// LocationUpdateMessage is published on NATS after every accepted position write
type LocationUpdateMessage struct {
	DriverID   string    `json:"driver_id"`
	RideID     string    `json:"ride_id,omitempty"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Heading    float64   `json:"heading"`
	Speed      float64   `json:"speed"`
	Geohash    string    `json:"geohash"`
	CapturedAt time.Time `json:"captured_at"`
}
