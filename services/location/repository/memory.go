package repository

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/location"
)

// bucketPrecision is the geohash length of the memory index cells (about 39 x 20 km)
const bucketPrecision = 4

type memoryLocationRepo struct {
	mu           sync.RWMutex
	positions    map[string]*models.DriverPosition
	cells        map[string]string
	buckets      map[string]map[string]struct{}
	lastAccepted map[string]time.Time
	retention    time.Duration
	now          models.Clock
}

// NewMemoryLocationRepository creates a process-local location repository indexed by geohash cells.
// Positions older than the retention horizon are ignored on read.
func NewMemoryLocationRepository(retention time.Duration, now models.Clock) location.LocationRepo {
	if retention <= 0 {
		retention = DefaultRetention
	}
	if now == nil {
		now = models.Now
	}
	return &memoryLocationRepo{
		positions:    make(map[string]*models.DriverPosition),
		cells:        make(map[string]string),
		buckets:      make(map[string]map[string]struct{}),
		lastAccepted: make(map[string]time.Time),
		retention:    retention,
		now:          now,
	}
}

func (r *memoryLocationRepo) UpsertDriverPosition(_ context.Context, pos *models.DriverPosition) (*models.DriverPosition, error) {
	stored := *pos
	cell := utils.Encode(utils.GeoPoint{Latitude: pos.Latitude, Longitude: pos.Longitude}, bucketPrecision)

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.cells[pos.DriverID]; ok && prev != cell {
		delete(r.buckets[prev], pos.DriverID)
		if len(r.buckets[prev]) == 0 {
			delete(r.buckets, prev)
		}
	}
	if r.buckets[cell] == nil {
		r.buckets[cell] = make(map[string]struct{})
	}
	r.buckets[cell][pos.DriverID] = struct{}{}
	r.cells[pos.DriverID] = cell
	r.positions[pos.DriverID] = &stored

	out := stored
	return &out, nil
}

func (r *memoryLocationRepo) GetDriverPosition(_ context.Context, driverID string) (*models.DriverPosition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.live(driverID, r.now())
	if !ok {
		return nil, false, nil
	}
	return pos, true, nil
}

func (r *memoryLocationRepo) ForEachDriverPosition(_ context.Context, fn func(*models.DriverPosition) bool) error {
	now := r.now()

	r.mu.RLock()
	snapshot := make([]*models.DriverPosition, 0, len(r.positions))
	for id := range r.positions {
		if pos, ok := r.live(id, now); ok {
			snapshot = append(snapshot, pos)
		}
	}
	r.mu.RUnlock()

	for _, pos := range snapshot {
		if !fn(pos) {
			return nil
		}
	}
	return nil
}

// FindDriversWithin reads the origin cell and its neighbours, or every position when
// the radius reaches past the neighbourhood
func (r *memoryLocationRepo) FindDriversWithin(ctx context.Context, lat, lon, radiusKm float64) ([]*models.DriverPosition, error) {
	if radiusKm > utils.CellCoverKm(bucketPrecision, lat) {
		var all []*models.DriverPosition
		err := r.ForEachDriverPosition(ctx, func(p *models.DriverPosition) bool {
			all = append(all, p)
			return true
		})
		return all, err
	}

	origin := utils.Encode(utils.GeoPoint{Latitude: lat, Longitude: lon}, bucketPrecision)
	cells := append([]string{origin}, utils.GetNeighbors(origin)...)
	now := r.now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var found []*models.DriverPosition
	for _, cell := range cells {
		for id := range r.buckets[cell] {
			if pos, ok := r.live(id, now); ok {
				found = append(found, pos)
			}
		}
	}
	return found, nil
}

// AcquireUpdateSlot accepts when no update was accepted within window before at
func (r *memoryLocationRepo) AcquireUpdateSlot(_ context.Context, accountID string, at time.Time, window time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if last, ok := r.lastAccepted[accountID]; ok && at.Sub(last) < window {
		return false, nil
	}
	r.lastAccepted[accountID] = at
	return true, nil
}

// live returns a copy of the position when it is within retention. Callers hold r.mu.
func (r *memoryLocationRepo) live(driverID string, now time.Time) (*models.DriverPosition, bool) {
	pos, ok := r.positions[driverID]
	if !ok || pos.Age(now) >= r.retention {
		return nil, false
	}
	out := *pos
	return &out, true
}
