package drivers

import (
	"context"

	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/dispatch/services/drivers DriverRepo

// DriverRepo reads the externally owned driver profiles
type DriverRepo interface {
	GetByAccountID(ctx context.Context, accountID string) (*models.DriverProfile, error)
	GetByProfileID(ctx context.Context, profileID string) (*models.DriverProfile, error)
	ListByAccountIDs(ctx context.Context, accountIDs []string) ([]*models.DriverProfile, error)
	ListEligible(ctx context.Context) ([]*models.DriverProfile, error)
}
