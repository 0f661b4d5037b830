package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/location"
)

type locationGW struct {
	nc *nats.Conn
}

// NewLocationGW creates a new location gateway
func NewLocationGW(nc *nats.Conn) location.LocationGW {
	return &locationGW{
		nc: nc,
	}
}

// PublishLocationUpdate publishes an accepted driver position to NATS
func (g *locationGW) PublishLocationUpdate(ctx context.Context, msg *models.LocationUpdateMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal location update: %w", err)
	}

	if err := g.nc.Publish(constants.SubjectLocationUpdate, data); err != nil {
		return fmt.Errorf("failed to publish location update: %w", err)
	}
	return nil
}
