package drivers

import (
	"context"

	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dispatch/services/drivers DriverUC

// DriverUC answers identity and eligibility questions about drivers
type DriverUC interface {
	// ResolveAccountID maps an account or profile reference to the account id.
	// It fails with apperrors.ErrUnknownDriver when no profile matches.
	ResolveAccountID(ctx context.Context, ref models.DriverRef) (string, error)
	Profiles(ctx context.Context, accountIDs []string) (map[string]*models.DriverProfile, error)
	EligibleDrivers(ctx context.Context) ([]*models.DriverProfile, error)
}
