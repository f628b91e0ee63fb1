package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/piresc/nebengcab/services/cabs/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cabCols = []string{"id", "driver_id", "car_type", "car_number", "per_km_rate", "available", "created_at", "updated_at"}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestCreateCab(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCabRepository(&models.Config{}, db)

	now := time.Now().UTC()
	cab := &models.Cab{ID: uuid.New(), CarType: "SUV", CarNumber: "B 2 CAB", PerKmRate: 20, Available: true, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cabs")).
		WithArgs(cab.ID, nil, "SUV", "B 2 CAB", 20.0, true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateCab(context.Background(), cab))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCab_Conflicts(t *testing.T) {
	tests := []struct {
		constraint string
		message    string
	}{
		{"cabs_driver_id_key", "already owns a cab"},
		{"cabs_car_number_key", "car number B 2 CAB is already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := repository.NewCabRepository(&models.Config{}, db)

			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cabs")).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			err := repo.CreateCab(context.Background(), &models.Cab{
				ID:        uuid.New(),
				DriverID:  uuid.NullUUID{UUID: uuid.New(), Valid: true},
				CarNumber: "B 2 CAB",
			})
			assert.ErrorIs(t, err, apperror.ErrConflict)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestGetCab(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCabRepository(&models.Config{}, db)

	id, driverID := uuid.New(), uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM cabs WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(cabCols).AddRow(id.String(), driverID.String(), "Sedan", "B 1 CAB", 15.0, true, now, now))

	cab, err := repo.GetCab(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, driverID, cab.DriverID.UUID)
	assert.Equal(t, 15.0, cab.PerKmRate)

	mock.ExpectQuery(regexp.QuoteMeta("FROM cabs WHERE id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetCab(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListCabs_Filtered(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCabRepository(&models.Config{}, db)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE ($1::text = '' OR car_type = $1::text) AND (NOT $2::boolean OR available)")).
		WithArgs("Sedan", true).
		WillReturnRows(sqlmock.NewRows(cabCols).AddRow(uuid.NewString(), nil, "Sedan", "B 1 CAB", 15.0, true, now, now))

	list, err := repo.ListCabs(context.Background(), models.CabFilter{CarType: "Sedan", AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].DriverID.Valid)
}

func TestUpdateCab_TakenByTrip(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCabRepository(&models.Config{}, db)

	cab := &models.Cab{ID: uuid.New(), CarType: "Sedan", CarNumber: "B 1 CAB", PerKmRate: 15}
	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND available")).
		WithArgs(cab.ID, "Sedan", "B 1 CAB", 15.0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCab(context.Background(), cab)
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
}

func TestDeleteCab(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		result  execResult
		wantErr error
	}{
		{"deleted", execResult{rows: 1}, nil},
		{"on a trip", execResult{rows: 0}, apperror.ErrInvalidState},
		{"trip history", execResult{err: &pgconn.PgError{Code: "23503"}}, apperror.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := repository.NewCabRepository(&models.Config{}, db)

			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cabs WHERE id = $1 AND available")).WithArgs(id)
			if tt.result.err != nil {
				exp.WillReturnError(tt.result.err)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.result.rows))
			}

			err := repo.DeleteCab(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type execResult struct {
	rows int64
	err  error
}

func TestDriverExists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCabRepository(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM drivers WHERE user_id = $1)")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.DriverExists(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, ok)
}
