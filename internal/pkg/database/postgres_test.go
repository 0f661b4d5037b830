package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(models.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Username: "dispatch",
		Password: "secret",
		Database: "rides",
		SSLMode:  "disable",
	})

	assert.Equal(t, "host=localhost port=5432 user=dispatch password=secret dbname=rides sslmode=disable", dsn)
}

func TestPostgresClient_Ping(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	client := NewPostgresClientFromDB(sqlx.NewDb(mockDB, "postgres"))
	assert.NotNil(t, client.GetDB())

	mock.ExpectPing()
	assert.NoError(t, client.Ping(context.Background()))

	mock.ExpectClose()
	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPostgresClient_ConnectionError(t *testing.T) {
	client, err := NewPostgresClient(models.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     1,
		Username: "nobody",
		Database: "none",
		SSLMode:  "disable",
	})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to postgres")
}
