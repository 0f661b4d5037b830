package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniredis creates a new miniredis server and a repository connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redisLocationRepo) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewRedisLocationRepository(&database.RedisClient{Client: client}, time.Hour)
	return mr, repo.(*redisLocationRepo)
}

func samplePosition(driverID string, lat, lon float64) *models.DriverPosition {
	return &models.DriverPosition{
		DriverID:   driverID,
		Latitude:   lat,
		Longitude:  lon,
		Heading:    90,
		Speed:      24.5,
		CapturedAt: time.UnixMilli(1700000000123).UTC(),
	}
}

func TestRedisUpsertDriverPosition(t *testing.T) {
	mr, repo := setupMiniredis(t)
	ctx := context.Background()

	stored, err := repo.UpsertDriverPosition(ctx, samplePosition("driver-1", 51.2362, -0.5704))
	require.NoError(t, err)
	assert.Equal(t, "driver-1", stored.DriverID)

	key := fmt.Sprintf(constants.KeyDriverLocation, "driver-1")
	assert.Equal(t, "51.2362", mr.HGet(key, constants.FieldLatitude))
	assert.Equal(t, "-0.5704", mr.HGet(key, constants.FieldLongitude))
	assert.Equal(t, "1700000000123", mr.HGet(key, constants.FieldTimestamp))
	assert.Equal(t, time.Hour, mr.TTL(key))

	members, err := mr.Members(constants.KeyTrackedDrivers)
	require.NoError(t, err)
	assert.Equal(t, []string{"driver-1"}, members)
}

func TestRedisGetDriverPosition(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		_, repo := setupMiniredis(t)
		ctx := context.Background()
		in := samplePosition("driver-1", 51.2362, -0.5704)

		_, err := repo.UpsertDriverPosition(ctx, in)
		require.NoError(t, err)

		got, found, err := repo.GetDriverPosition(ctx, "driver-1")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, in, got)
	})

	t.Run("absent driver", func(t *testing.T) {
		_, repo := setupMiniredis(t)

		got, found, err := repo.GetDriverPosition(context.Background(), "ghost")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
	})

	t.Run("expired after retention", func(t *testing.T) {
		mr, repo := setupMiniredis(t)
		ctx := context.Background()

		_, err := repo.UpsertDriverPosition(ctx, samplePosition("driver-1", 51.2362, -0.5704))
		require.NoError(t, err)
		mr.FastForward(time.Hour + time.Second)

		_, found, err := repo.GetDriverPosition(ctx, "driver-1")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("corrupt hash", func(t *testing.T) {
		mr, repo := setupMiniredis(t)
		key := fmt.Sprintf(constants.KeyDriverLocation, "driver-1")
		mr.HSet(key, constants.FieldLatitude, "north")
		mr.HSet(key, constants.FieldLongitude, "1")
		mr.HSet(key, constants.FieldTimestamp, "1")

		_, _, err := repo.GetDriverPosition(context.Background(), "driver-1")
		assert.Error(t, err)
	})
}

func TestRedisLastWriteWins(t *testing.T) {
	_, repo := setupMiniredis(t)
	ctx := context.Background()

	newer := samplePosition("driver-1", 51.2362, -0.5704)
	older := samplePosition("driver-1", 51.2000, -0.5000)
	older.CapturedAt = newer.CapturedAt.Add(-time.Minute)

	_, err := repo.UpsertDriverPosition(ctx, newer)
	require.NoError(t, err)
	_, err = repo.UpsertDriverPosition(ctx, older)
	require.NoError(t, err)

	got, found, err := repo.GetDriverPosition(ctx, "driver-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, older.Latitude, got.Latitude)
}

func TestRedisFindDriversWithin(t *testing.T) {
	mr, repo := setupMiniredis(t)
	ctx := context.Background()

	_, err := repo.UpsertDriverPosition(ctx, samplePosition("near", 51.2362, -0.5704))
	require.NoError(t, err)
	_, err = repo.UpsertDriverPosition(ctx, samplePosition("far", 51.5074, -0.1278))
	require.NoError(t, err)

	found, err := repo.FindDriversWithin(ctx, 51.2438, -0.5906, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "near", found[0].DriverID)

	// the hash expires but the geo member lingers until the next read
	mr.Del(fmt.Sprintf(constants.KeyDriverLocation, "near"))
	found, err = repo.FindDriversWithin(ctx, 51.2438, -0.5906, 10)
	require.NoError(t, err)
	assert.Empty(t, found)

	members, err := mr.Members(constants.KeyTrackedDrivers)
	require.NoError(t, err)
	assert.Equal(t, []string{"far"}, members)
}

func TestRedisForEachDriverPosition(t *testing.T) {
	mr, repo := setupMiniredis(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.UpsertDriverPosition(ctx, samplePosition(id, 51.23, -0.57))
		require.NoError(t, err)
	}
	mr.Del(fmt.Sprintf(constants.KeyDriverLocation, "b"))

	var seen []string
	err := repo.ForEachDriverPosition(ctx, func(p *models.DriverPosition) bool {
		seen = append(seen, p.DriverID)
		return true
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, seen)

	members, err := mr.Members(constants.KeyTrackedDrivers)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, members)

	count := 0
	err = repo.ForEachDriverPosition(ctx, func(*models.DriverPosition) bool {
		count++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRedisAcquireUpdateSlot(t *testing.T) {
	mr, repo := setupMiniredis(t)
	ctx := context.Background()
	now := time.Now()

	ok, err := repo.AcquireUpdateSlot(ctx, "driver-1", now, time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AcquireUpdateSlot(ctx, "driver-1", now.Add(500*time.Millisecond), time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.AcquireUpdateSlot(ctx, "driver-2", now, time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "slots are per account")

	mr.FastForward(time.Second)
	ok, err = repo.AcquireUpdateSlot(ctx, "driver-1", now.Add(time.Second), time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisErrorsWhenServerDown(t *testing.T) {
	mr, repo := setupMiniredis(t)
	mr.Close()
	ctx := context.Background()

	_, err := repo.UpsertDriverPosition(ctx, samplePosition("driver-1", 51.23, -0.57))
	assert.Error(t, err)
	_, _, err = repo.GetDriverPosition(ctx, "driver-1")
	assert.Error(t, err)
	_, err = repo.AcquireUpdateSlot(ctx, "driver-1", time.Now(), time.Second)
	assert.Error(t, err)
}
