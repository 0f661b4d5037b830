package models

import (
	"encoding/json"
	"time"
)

// WalletUpdatedMessage is consumed from the payments collaborator
type WalletUpdatedMessage struct {
	UserID    string          `json:"user_id"`
	Wallet    json.RawMessage `json:"wallet"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// EarningsUpdatedMessage is consumed from the payments collaborator
type EarningsUpdatedMessage struct {
	DriverID       string    `json:"driver_id"`
	Today          float64   `json:"today"`
	Week           float64   `json:"week"`
	Currency       string    `json:"currency"`
	CompletedRides int       `json:"completed_rides"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Snapshot converts the message into the dashboard payload
func (m EarningsUpdatedMessage) Snapshot() EarningsSnapshot {
	return EarningsSnapshot{
		UserID:         m.DriverID,
		Today:          m.Today,
		Week:           m.Week,
		Currency:       m.Currency,
		CompletedRides: m.CompletedRides,
		UpdatedAt:      m.UpdatedAt,
	}
}
