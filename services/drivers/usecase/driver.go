package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/drivers"
)

// DriverUC implements drivers.DriverUC
type DriverUC struct {
	repo drivers.DriverRepo
}

// NewDriverUC creates a new driver use case
func NewDriverUC(repo drivers.DriverRepo) *DriverUC {
	return &DriverUC{repo: repo}
}

// ResolveAccountID maps a tagged driver reference to the account id channels are keyed by.
// An account reference must name an existing driver account; a profile reference is
// translated through the directory. There is no fallback between the two kinds.
func (uc *DriverUC) ResolveAccountID(ctx context.Context, ref models.DriverRef) (string, error) {
	if ref.ID == "" {
		return "", apperrors.Validation("driver id is required")
	}

	var (
		profile *models.DriverProfile
		err     error
	)
	switch ref.Kind {
	case models.DriverRefAccount:
		profile, err = uc.repo.GetByAccountID(ctx, ref.ID)
	case models.DriverRefProfile:
		profile, err = uc.repo.GetByProfileID(ctx, ref.ID)
	default:
		return "", apperrors.Validation("unknown driver reference kind %q", ref.Kind)
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("%s %s: %w", ref.Kind, ref.ID, apperrors.ErrUnknownDriver)
	}
	if err != nil {
		return "", err
	}
	return profile.AccountID, nil
}

// Profiles returns the known profiles of the given accounts keyed by account id
func (uc *DriverUC) Profiles(ctx context.Context, accountIDs []string) (map[string]*models.DriverProfile, error) {
	list, err := uc.repo.ListByAccountIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*models.DriverProfile, len(list))
	for _, p := range list {
		out[p.AccountID] = p
	}
	return out, nil
}

// EligibleDrivers lists drivers that are online, approved and active
func (uc *DriverUC) EligibleDrivers(ctx context.Context) ([]*models.DriverProfile, error) {
	return uc.repo.ListEligible(ctx)
}
