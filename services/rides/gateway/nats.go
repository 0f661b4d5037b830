package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/rides"
)

type rideGW struct {
	nc *nats.Conn
}

// NewRideGW creates a new ride gateway
func NewRideGW(nc *nats.Conn) rides.RideGW {
	return &rideGW{
		nc: nc,
	}
}

// PublishRideStatusChanged announces an accepted transition for billing and reporting
func (g *rideGW) PublishRideStatusChanged(ctx context.Context, msg *models.RideStatusMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal ride status: %w", err)
	}

	if err := g.nc.Publish(constants.SubjectRideStatusChanged, data); err != nil {
		return fmt.Errorf("failed to publish ride status: %w", err)
	}
	return nil
}
