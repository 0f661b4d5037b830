package rides

import (
	"context"

	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/dispatch/services/rides RideGW

// RideGW publishes ride lifecycle events to other services
type RideGW interface {
	PublishRideStatusChanged(ctx context.Context, msg *models.RideStatusMessage) error
}
