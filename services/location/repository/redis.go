package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/location"
)

// DefaultRetention is how long a position survives without a new report
const DefaultRetention = 24 * time.Hour

type redisLocationRepo struct {
	redisClient *database.RedisClient
	retention   time.Duration
}

// NewRedisLocationRepository creates a location repository backed by Redis.
// Each driver gets a hash with a TTL plus a member in the driver geo set.
func NewRedisLocationRepository(redisClient *database.RedisClient, retention time.Duration) location.LocationRepo {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &redisLocationRepo{
		redisClient: redisClient,
		retention:   retention,
	}
}

// UpsertDriverPosition writes the hash, refreshes its TTL and moves the geo member in one transaction
func (r *redisLocationRepo) UpsertDriverPosition(ctx context.Context, pos *models.DriverPosition) (*models.DriverPosition, error) {
	key := fmt.Sprintf(constants.KeyDriverLocation, pos.DriverID)
	fields := map[string]interface{}{
		constants.FieldDriverID:  pos.DriverID,
		constants.FieldLatitude:  strconv.FormatFloat(pos.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(pos.Longitude, 'f', -1, 64),
		constants.FieldHeading:   strconv.FormatFloat(pos.Heading, 'f', -1, 64),
		constants.FieldSpeed:     strconv.FormatFloat(pos.Speed, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(pos.CapturedAt.UnixMilli(), 10),
	}

	err := r.redisClient.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, fields)
		p.Expire(ctx, key, r.retention)
		p.GeoAdd(ctx, constants.KeyDriverGeo, &redis.GeoLocation{
			Name:      pos.DriverID,
			Longitude: pos.Longitude,
			Latitude:  pos.Latitude,
		})
		p.SAdd(ctx, constants.KeyTrackedDrivers, pos.DriverID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store driver position: %w", err)
	}

	stored := *pos
	return &stored, nil
}

// GetDriverPosition reads the driver hash. An expired or missing hash is reported as not found.
func (r *redisLocationRepo) GetDriverPosition(ctx context.Context, driverID string) (*models.DriverPosition, bool, error) {
	values, err := r.redisClient.HGetAll(ctx, fmt.Sprintf(constants.KeyDriverLocation, driverID))
	if err != nil {
		return nil, false, fmt.Errorf("failed to get driver position: %w", err)
	}
	if len(values) == 0 {
		return nil, false, nil
	}

	pos, err := parsePosition(driverID, values)
	if err != nil {
		return nil, false, err
	}
	return pos, true, nil
}

// ForEachDriverPosition walks the tracked set and forgets drivers whose hash has expired
func (r *redisLocationRepo) ForEachDriverPosition(ctx context.Context, fn func(*models.DriverPosition) bool) error {
	ids, err := r.redisClient.SMembers(ctx, constants.KeyTrackedDrivers)
	if err != nil {
		return fmt.Errorf("failed to list tracked drivers: %w", err)
	}

	var expired []string
	defer func() { r.forget(ctx, expired) }()

	for _, id := range ids {
		pos, found, err := r.GetDriverPosition(ctx, id)
		if err != nil {
			logger.Warn("Skipping unreadable driver position",
				logger.String("driver_id", id),
				logger.Err(err))
			continue
		}
		if !found {
			expired = append(expired, id)
			continue
		}
		if !fn(pos) {
			return nil
		}
	}
	return nil
}

// FindDriversWithin uses GEORADIUS as the spatial prefilter, then loads each hash
func (r *redisLocationRepo) FindDriversWithin(ctx context.Context, lat, lon, radiusKm float64) ([]*models.DriverPosition, error) {
	members, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, lon, lat, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to search driver geo set: %w", err)
	}

	var expired []string
	positions := make([]*models.DriverPosition, 0, len(members))
	for _, m := range members {
		pos, found, err := r.GetDriverPosition(ctx, m.Name)
		if err != nil {
			logger.Warn("Skipping unreadable driver position",
				logger.String("driver_id", m.Name),
				logger.Err(err))
			continue
		}
		if !found {
			expired = append(expired, m.Name)
			continue
		}
		positions = append(positions, pos)
	}
	r.forget(ctx, expired)

	return positions, nil
}

// AcquireUpdateSlot claims the per-account limiter key for the window. The key expiring frees the slot.
func (r *redisLocationRepo) AcquireUpdateSlot(ctx context.Context, accountID string, at time.Time, window time.Duration) (bool, error) {
	key := fmt.Sprintf(constants.KeyLocationLimiter, accountID)
	ok, err := r.redisClient.SetNX(ctx, key, strconv.FormatInt(at.UnixMilli(), 10), window)
	if err != nil {
		return false, fmt.Errorf("failed to acquire location update slot: %w", err)
	}
	return ok, nil
}

// forget drops the geo member and tracked entry of drivers whose hash expired
func (r *redisLocationRepo) forget(ctx context.Context, driverIDs []string) {
	if len(driverIDs) == 0 {
		return
	}
	members := make([]interface{}, len(driverIDs))
	for i, id := range driverIDs {
		members[i] = id
	}
	err := r.redisClient.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRem(ctx, constants.KeyDriverGeo, members...)
		p.SRem(ctx, constants.KeyTrackedDrivers, members...)
		return nil
	})
	if err != nil {
		logger.Warn("Failed to forget expired driver positions",
			logger.Strings("driver_ids", driverIDs),
			logger.Err(err))
	}
}

func parsePosition(driverID string, values map[string]string) (*models.DriverPosition, error) {
	floats := make(map[string]float64, 4)
	for _, field := range []string{constants.FieldLatitude, constants.FieldLongitude, constants.FieldHeading, constants.FieldSpeed} {
		raw, ok := values[field]
		if !ok {
			if field == constants.FieldHeading || field == constants.FieldSpeed {
				continue
			}
			return nil, fmt.Errorf("driver %s position has no %s", driverID, field)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s for driver %s: %w", field, driverID, err)
		}
		floats[field] = v
	}

	ts, err := strconv.ParseInt(values[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp for driver %s: %w", driverID, err)
	}

	return &models.DriverPosition{
		DriverID:   driverID,
		Latitude:   floats[constants.FieldLatitude],
		Longitude:  floats[constants.FieldLongitude],
		Heading:    floats[constants.FieldHeading],
		Speed:      floats[constants.FieldSpeed],
		CapturedAt: time.UnixMilli(ts).UTC(),
	}, nil
}
