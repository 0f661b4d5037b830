package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("test:key", "test-value", time.Hour).SetVal("OK")

	err := client.Set(context.Background(), "test:key", "test-value", time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_SetNX(t *testing.T) {
	tests := []struct {
		name           string
		mockResult     bool
		mockError      error
		expectedResult bool
		expectedError  bool
	}{
		{name: "Slot acquired", mockResult: true, expectedResult: true},
		{name: "Slot taken", mockResult: false, expectedResult: false},
		{name: "Redis error", mockError: errors.New("connection reset"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}

			key := "rate:limit:location:driver-1"
			if tt.mockError != nil {
				mock.ExpectSetNX(key, "1", time.Second).SetErr(tt.mockError)
			} else {
				mock.ExpectSetNX(key, "1", time.Second).SetVal(tt.mockResult)
			}

			result, err := client.SetNX(context.Background(), key, "1", time.Second)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGet("missing").RedisNil()

	_, err := client.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, redis.Nil)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_HGetAll(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectHGetAll("driver:location:d1").SetVal(map[string]string{"lat": "51.2", "lng": "-0.5"})

	fields, err := client.HGetAll(context.Background(), "driver:location:d1")

	assert.NoError(t, err)
	assert.Equal(t, "51.2", fields["lat"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_SMembers(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSMembers("drivers:tracked").SetVal([]string{"d1", "d2"})

	members, err := client.SMembers(context.Background(), "drivers:tracked")

	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"d1", "d2"}, members)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoAdd(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGeoAdd("driver:geo", &redis.GeoLocation{Longitude: -0.5704, Latitude: 51.2362, Name: "d1"}).SetVal(1)

	err := client.GeoAdd(context.Background(), "driver:geo", -0.5704, 51.2362, "d1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoRadius(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	query := &redis.GeoRadiusQuery{Radius: 10, Unit: "km", WithCoord: true, WithDist: true, Sort: "ASC"}
	mock.ExpectGeoRadius("driver:geo", -0.59, 51.24, query).SetVal([]redis.GeoLocation{{Name: "d1", Dist: 1.64}})

	found, err := client.GeoRadius(context.Background(), "driver:geo", -0.59, 51.24, 10, "km")

	assert.NoError(t, err)
	if assert.Len(t, found, 1) {
		assert.Equal(t, "d1", found[0].Name)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Delete_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("k").SetErr(errors.New("boom"))

	assert.Error(t, client.Delete(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
