package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/models"
)

const rideColumns = `id, rider_id, driver_id, pickup_lat, pickup_lon, pickup_address,
	dropoff_lat, dropoff_lon, dropoff_address, vehicle_type, status, distance_km,
	estimated_fare, final_fare, cancel_reason, scheduled_at, created_at, matched_at,
	accepted_at, arrived_at, started_at, completed_at, cancelled_at, updated_at`

// rideRow mirrors the rides table
type rideRow struct {
	ID             string          `db:"id"`
	RiderID        string          `db:"rider_id"`
	DriverID       sql.NullString  `db:"driver_id"`
	PickupLat      float64         `db:"pickup_lat"`
	PickupLon      float64         `db:"pickup_lon"`
	PickupAddress  string          `db:"pickup_address"`
	DropoffLat     float64         `db:"dropoff_lat"`
	DropoffLon     float64         `db:"dropoff_lon"`
	DropoffAddress string          `db:"dropoff_address"`
	VehicleType    string          `db:"vehicle_type"`
	Status         string          `db:"status"`
	DistanceKm     float64         `db:"distance_km"`
	EstimatedFare  float64         `db:"estimated_fare"`
	FinalFare      sql.NullFloat64 `db:"final_fare"`
	CancelReason   string          `db:"cancel_reason"`
	ScheduledAt    sql.NullTime    `db:"scheduled_at"`
	CreatedAt      time.Time       `db:"created_at"`
	MatchedAt      sql.NullTime    `db:"matched_at"`
	AcceptedAt     sql.NullTime    `db:"accepted_at"`
	ArrivedAt      sql.NullTime    `db:"arrived_at"`
	StartedAt      sql.NullTime    `db:"started_at"`
	CompletedAt    sql.NullTime    `db:"completed_at"`
	CancelledAt    sql.NullTime    `db:"cancelled_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

func (r *rideRow) toModel() *models.Ride {
	ride := &models.Ride{
		ID:            r.ID,
		RiderID:       r.RiderID,
		DriverID:      r.DriverID.String,
		Pickup:        models.Location{Latitude: r.PickupLat, Longitude: r.PickupLon, Address: r.PickupAddress},
		Dropoff:       models.Location{Latitude: r.DropoffLat, Longitude: r.DropoffLon, Address: r.DropoffAddress},
		VehicleType:   models.VehicleType(r.VehicleType),
		Status:        models.RideStatus(r.Status),
		DistanceKm:    r.DistanceKm,
		EstimatedFare: r.EstimatedFare,
		CancelReason:  r.CancelReason,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		ScheduledAt:   timePtr(r.ScheduledAt),
		MatchedAt:     timePtr(r.MatchedAt),
		AcceptedAt:    timePtr(r.AcceptedAt),
		ArrivedAt:     timePtr(r.ArrivedAt),
		StartedAt:     timePtr(r.StartedAt),
		CompletedAt:   timePtr(r.CompletedAt),
		CancelledAt:   timePtr(r.CancelledAt),
	}
	if r.FinalFare.Valid {
		fare := r.FinalFare.Float64
		ride.FinalFare = &fare
	}
	return ride
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// RideRepo stores rides in PostgreSQL
type RideRepo struct {
	db *sqlx.DB
}

// NewRideRepository creates a ride repository on db
func NewRideRepository(db *sqlx.DB) *RideRepo {
	return &RideRepo{db: db}
}

// CreateRide inserts a new ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (` + rideColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`
	_, err := r.db.ExecContext(ctx, query,
		ride.ID, ride.RiderID, nullString(ride.DriverID),
		ride.Pickup.Latitude, ride.Pickup.Longitude, ride.Pickup.Address,
		ride.Dropoff.Latitude, ride.Dropoff.Longitude, ride.Dropoff.Address,
		string(ride.VehicleType), string(ride.Status), ride.DistanceKm,
		ride.EstimatedFare, nullFloat(ride.FinalFare), ride.CancelReason,
		nullTime(ride.ScheduledAt), ride.CreatedAt, nullTime(ride.MatchedAt),
		nullTime(ride.AcceptedAt), nullTime(ride.ArrivedAt), nullTime(ride.StartedAt),
		nullTime(ride.CompletedAt), nullTime(ride.CancelledAt), ride.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	return nil
}

// GetRide retrieves a ride by id
func (r *RideRepo) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	var row rideRow
	err := r.db.GetContext(ctx, &row, `SELECT `+rideColumns+` FROM rides WHERE id = $1`, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("ride", rideID)
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return row.toModel(), nil
}

// UpdateStatus writes the mutable ride fields guarded by the previous status
func (r *RideRepo) UpdateStatus(ctx context.Context, ride *models.Ride, from models.RideStatus) error {
	query := `
		UPDATE rides
		SET status = $1, driver_id = $2, final_fare = $3, cancel_reason = $4,
			matched_at = $5, accepted_at = $6, arrived_at = $7, started_at = $8,
			completed_at = $9, cancelled_at = $10, updated_at = $11
		WHERE id = $12 AND status = $13
	`
	result, err := r.db.ExecContext(ctx, query,
		string(ride.Status), nullString(ride.DriverID), nullFloat(ride.FinalFare), ride.CancelReason,
		nullTime(ride.MatchedAt), nullTime(ride.AcceptedAt), nullTime(ride.ArrivedAt), nullTime(ride.StartedAt),
		nullTime(ride.CompletedAt), nullTime(ride.CancelledAt), ride.UpdatedAt,
		ride.ID, string(from),
	)
	if err != nil {
		return fmt.Errorf("failed to update ride status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("ride %s no longer %s: %w", ride.ID, from, apperrors.ErrConflict)
	}
	return nil
}

// ActiveRideForDriver returns the ongoing ride bound to a driver, if any
func (r *RideRepo) ActiveRideForDriver(ctx context.Context, driverID string) (*models.Ride, error) {
	return r.activeRide(ctx, "driver_id", driverID)
}

// ActiveRideForRider returns the non-terminal ride of a rider, if any
func (r *RideRepo) ActiveRideForRider(ctx context.Context, riderID string) (*models.Ride, error) {
	return r.activeRide(ctx, "rider_id", riderID)
}

func (r *RideRepo) activeRide(ctx context.Context, column, userID string) (*models.Ride, error) {
	statuses := []string{
		string(models.RideStatusAssigned), string(models.RideStatusAccepted),
		string(models.RideStatusArrived), string(models.RideStatusInProgress),
	}
	if column == "rider_id" {
		statuses = append(statuses, string(models.RideStatusSearching),
			string(models.RideStatusNoDrivers), string(models.RideStatusScheduled))
	}

	var row rideRow
	query := `SELECT ` + rideColumns + ` FROM rides
		WHERE ` + column + ` = $1 AND status = ANY($2)
		ORDER BY created_at DESC LIMIT 1`
	err := r.db.GetContext(ctx, &row, query, userID, pq.Array(statuses))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active ride: %w", err)
	}
	return row.toModel(), nil
}

// ListOpenRides returns searching rides created after the given instant, newest first
func (r *RideRepo) ListOpenRides(ctx context.Context, createdAfter time.Time) ([]*models.Ride, error) {
	var rows []rideRow
	query := `SELECT ` + rideColumns + ` FROM rides
		WHERE status = $1 AND created_at > $2
		ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, string(models.RideStatusSearching), createdAfter); err != nil {
		return nil, fmt.Errorf("failed to list open rides: %w", err)
	}
	return toModels(rows), nil
}

// ListByStatus returns every ride currently in one of the statuses
func (r *RideRepo) ListByStatus(ctx context.Context, statuses []models.RideStatus) ([]*models.Ride, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	var rows []rideRow
	query := `SELECT ` + rideColumns + ` FROM rides WHERE status = ANY($1) ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(values)); err != nil {
		return nil, fmt.Errorf("failed to list rides by status: %w", err)
	}
	return toModels(rows), nil
}

func toModels(rows []rideRow) []*models.Ride {
	out := make([]*models.Ride, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toModel())
	}
	return out
}
