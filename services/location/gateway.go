package location

import (
	"context"

	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/dispatch/services/location LocationGW

// LocationGW mirrors accepted position writes to other services
type LocationGW interface {
	PublishLocationUpdate(ctx context.Context, msg *models.LocationUpdateMessage) error
}
