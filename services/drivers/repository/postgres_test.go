package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/drivers/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileCols = []string{"profile_id", "account_id", "online", "approved", "active", "vehicle_type"}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestGetByAccountID_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDriverRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT profile_id, account_id")).
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows(profileCols).AddRow("prof-1", "acc-1", true, true, true, "economy"))

	p, err := repo.GetByAccountID(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, &models.DriverProfile{
		ProfileID: "prof-1", AccountID: "acc-1", Online: true, Approved: true, Active: true,
		VehicleType: models.VehicleEconomy,
	}, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByProfileID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDriverRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE profile_id = $1")).
		WithArgs("prof-x").
		WillReturnRows(sqlmock.NewRows(profileCols))

	_, err := repo.GetByProfileID(context.Background(), "prof-x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByAccountID_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDriverRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM driver_profiles")).
		WithArgs("acc-1").
		WillReturnError(assert.AnError)

	_, err := repo.GetByAccountID(context.Background(), "acc-1")
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListByAccountIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDriverRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE account_id = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow("prof-1", "acc-1", true, true, true, "economy").
			AddRow("prof-2", "acc-2", false, true, true, "xl"))

	profiles, err := repo.ListByAccountIDs(context.Background(), []string{"acc-1", "acc-2", "acc-3"})
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, models.VehicleXL, profiles[1].VehicleType)
	assert.False(t, profiles[1].Online)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByAccountIDs_EmptyInputSkipsQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDriverRepository(db)

	profiles, err := repo.ListByAccountIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEligible(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDriverRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE online AND approved AND active")).
		WillReturnRows(sqlmock.NewRows(profileCols).AddRow("prof-1", "acc-1", true, true, true, "comfort"))

	profiles, err := repo.ListEligible(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "acc-1", profiles[0].AccountID)
}
