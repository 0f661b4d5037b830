package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/models"
)

const profileColumns = `profile_id, account_id, online, approved, active, vehicle_type`

// DriverRepo reads driver profiles from PostgreSQL
type DriverRepo struct {
	db *sqlx.DB
}

// NewDriverRepository creates a driver profile repository on db
func NewDriverRepository(db *sqlx.DB) *DriverRepo {
	return &DriverRepo{db: db}
}

// GetByAccountID returns the profile owned by an account
func (r *DriverRepo) GetByAccountID(ctx context.Context, accountID string) (*models.DriverProfile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM driver_profiles WHERE account_id = $1`, accountID)
}

// GetByProfileID returns the profile with the given profile id
func (r *DriverRepo) GetByProfileID(ctx context.Context, profileID string) (*models.DriverProfile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM driver_profiles WHERE profile_id = $1`, profileID)
}

// ListByAccountIDs returns the profiles of the given accounts. Unknown accounts are skipped.
func (r *DriverRepo) ListByAccountIDs(ctx context.Context, accountIDs []string) ([]*models.DriverProfile, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}

	var profiles []*models.DriverProfile
	err := r.db.SelectContext(ctx, &profiles,
		`SELECT `+profileColumns+` FROM driver_profiles WHERE account_id = ANY($1)`,
		pq.Array(accountIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list driver profiles: %w", err)
	}
	return profiles, nil
}

// ListEligible returns every driver that is online, approved and active
func (r *DriverRepo) ListEligible(ctx context.Context) ([]*models.DriverProfile, error) {
	var profiles []*models.DriverProfile
	err := r.db.SelectContext(ctx, &profiles,
		`SELECT `+profileColumns+` FROM driver_profiles WHERE online AND approved AND active`)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible drivers: %w", err)
	}
	return profiles, nil
}

func (r *DriverRepo) getOne(ctx context.Context, query, id string) (*models.DriverProfile, error) {
	var profile models.DriverProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("driver", id)
		}
		return nil, fmt.Errorf("failed to get driver profile: %w", err)
	}
	return &profile, nil
}
