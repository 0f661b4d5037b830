package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// MemoryRideRepo keeps rides in process. Status writes are compare-and-set like the SQL store.
type MemoryRideRepo struct {
	mu    sync.RWMutex
	rides map[string]*models.Ride
}

// NewMemoryRideRepository creates an empty in-memory ride store
func NewMemoryRideRepository() *MemoryRideRepo {
	return &MemoryRideRepo{rides: make(map[string]*models.Ride)}
}

func (r *MemoryRideRepo) CreateRide(_ context.Context, ride *models.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rides[ride.ID]; exists {
		return fmt.Errorf("ride %s already exists: %w", ride.ID, apperrors.ErrConflict)
	}
	r.rides[ride.ID] = ride.Clone()
	return nil
}

func (r *MemoryRideRepo) GetRide(_ context.Context, rideID string) (*models.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ride, ok := r.rides[rideID]
	if !ok {
		return nil, apperrors.NotFound("ride", rideID)
	}
	return ride.Clone(), nil
}

func (r *MemoryRideRepo) UpdateStatus(_ context.Context, ride *models.Ride, from models.RideStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.rides[ride.ID]
	if !ok {
		return apperrors.NotFound("ride", ride.ID)
	}
	if current.Status != from {
		return fmt.Errorf("ride %s no longer %s: %w", ride.ID, from, apperrors.ErrConflict)
	}
	r.rides[ride.ID] = ride.Clone()
	return nil
}

func (r *MemoryRideRepo) ActiveRideForDriver(_ context.Context, driverID string) (*models.Ride, error) {
	return r.latest(func(ride *models.Ride) bool {
		return ride.DriverID == driverID && ride.Status.Ongoing()
	}), nil
}

func (r *MemoryRideRepo) ActiveRideForRider(_ context.Context, riderID string) (*models.Ride, error) {
	return r.latest(func(ride *models.Ride) bool {
		return ride.RiderID == riderID && !ride.Status.Terminal()
	}), nil
}

func (r *MemoryRideRepo) ListOpenRides(_ context.Context, createdAfter time.Time) ([]*models.Ride, error) {
	out := r.filter(func(ride *models.Ride) bool {
		return ride.Status == models.RideStatusSearching && ride.CreatedAt.After(createdAfter)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRideRepo) ListByStatus(_ context.Context, statuses []models.RideStatus) ([]*models.Ride, error) {
	wanted := make(map[models.RideStatus]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}
	out := r.filter(func(ride *models.Ride) bool { return wanted[ride.Status] })
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRideRepo) latest(match func(*models.Ride) bool) *models.Ride {
	var found *models.Ride
	for _, ride := range r.filter(match) {
		if found == nil || ride.CreatedAt.After(found.CreatedAt) {
			found = ride
		}
	}
	return found
}

func (r *MemoryRideRepo) filter(match func(*models.Ride) bool) []*models.Ride {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Ride, 0)
	for _, ride := range r.rides {
		if match(ride) {
			out = append(out, ride.Clone())
		}
	}
	return out
}
