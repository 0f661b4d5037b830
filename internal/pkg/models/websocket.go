package models

import "encoding/json"

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// SubscribeDashboardRequest is sent by a client opening its dashboard
type SubscribeDashboardRequest struct {
	Role      string   `json:"role"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lon,omitempty"`
}

// RideSubscriptionRequest names the ride a client wants status updates for
type RideSubscriptionRequest struct {
	RideID string `json:"rideId"`
}

// DashboardSubscription is what the tracker needs to serve a dashboard channel
type DashboardSubscription struct {
	ConnectionID string
	UserID       string
	Role         string
	Origin       *Location
}
