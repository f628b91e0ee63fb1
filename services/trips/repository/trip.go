package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	"github.com/piresc/nebengcab/internal/pkg/database"
	"github.com/piresc/nebengcab/internal/pkg/models"
	nrpkg "github.com/piresc/nebengcab/internal/pkg/newrelic"
	"github.com/piresc/nebengcab/internal/pkg/retry"
	"github.com/piresc/nebengcab/services/trips"
)

const (
	tripColumns = `id, customer_id, driver_id, cab_id, pickup_address, pickup_latitude, pickup_longitude,
		pickup_geohash, dropoff_address, car_type, scheduled_at, from_date_time, to_date_time,
		distance_in_km, bill, status, customer_rating, created_at, updated_at`

	driverColumns = `user_id, license_no, available, verified, rating, total_ratings`

	cabColumns = `id, driver_id, car_type, car_number, per_km_rate, available, created_at, updated_at`
)

// TripRepo is the PostgreSQL implementation of trips.TripRepo
type TripRepo struct {
	cfg     *models.Config
	db      *sqlx.DB
	retrier *retry.Retrier
}

// NewTripRepository creates a trip repository. Transactions aborted by a
// serialization failure or deadlock are replayed a few times.
func NewTripRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
		retrier: retry.New(retry.Config{
			MaxRetries:    2,
			BaseDelay:     20 * time.Millisecond,
			MaxDelay:      200 * time.Millisecond,
			Multiplier:    2.0,
			Jitter:        true,
			RetryableFunc: database.IsTransientTxError,
		}, nil),
	}
}

// WithinTx runs fn in a transaction, committing on success
func (r *TripRepo) WithinTx(ctx context.Context, fn func(ctx context.Context, tx trips.TripTx) error) error {
	return r.retrier.Execute(ctx, func(ctx context.Context) error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		if err := fn(ctx, &tripTx{tx: tx}); err != nil {
			_ = tx.Rollback()
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	})
}

// CreateTrip inserts a new trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	defer nrpkg.StartPostgresSegment(ctx, "trips", "INSERT").End()

	query := `INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.ExecContext(ctx, query,
		trip.ID,
		trip.CustomerID,
		trip.DriverID,
		trip.CabID,
		trip.PickupAddress,
		trip.PickupLatitude,
		trip.PickupLongitude,
		trip.PickupGeohash,
		trip.DropoffAddress,
		trip.CarType,
		trip.ScheduledAt,
		trip.FromDateTime,
		trip.ToDateTime,
		trip.DistanceInKm,
		trip.Bill,
		trip.Status,
		trip.CustomerRating,
		trip.CreatedAt,
		trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	defer nrpkg.StartPostgresSegment(ctx, "trips", "SELECT").End()

	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("trip %s not found", tripID)
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// ListTrips returns the most recent trips
func (r *TripRepo) ListTrips(ctx context.Context, limit int) ([]*models.Trip, error) {
	return r.selectTrips(ctx,
		`SELECT `+tripColumns+` FROM trips ORDER BY created_at DESC LIMIT $1`, limit)
}

// ListTripsByCustomer returns the customer's most recent trips
func (r *TripRepo) ListTripsByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*models.Trip, error) {
	return r.selectTrips(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2`,
		customerID, limit)
}

// ListTripsByDriver returns the driver's most recent trips
func (r *TripRepo) ListTripsByDriver(ctx context.Context, driverID uuid.UUID, limit int) ([]*models.Trip, error) {
	return r.selectTrips(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE driver_id = $1 ORDER BY created_at DESC LIMIT $2`,
		driverID, limit)
}

// ListOpenTrips returns scheduled trips whose pickup geohash falls in one of cells
func (r *TripRepo) ListOpenTrips(ctx context.Context, cells []string, carType string, limit int) ([]*models.Trip, error) {
	patterns := make([]string, len(cells))
	for i, cell := range cells {
		patterns[i] = cell + "%"
	}

	return r.selectTrips(ctx,
		`SELECT `+tripColumns+` FROM trips
		WHERE status = $1
		  AND pickup_geohash LIKE ANY($2)
		  AND ($3::text = '' OR car_type = $3::text)
		ORDER BY scheduled_at
		LIMIT $4`,
		models.TripStatusScheduled, pq.Array(patterns), carType, limit)
}

// CustomerExists reports whether a customer account with the id exists
func (r *TripRepo) CustomerExists(ctx context.Context, customerID uuid.UUID) (bool, error) {
	defer nrpkg.StartPostgresSegment(ctx, "users", "SELECT").End()

	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND role = $2)`,
		customerID, models.RoleCustomer)
	if err != nil {
		return false, fmt.Errorf("failed to check customer: %w", err)
	}
	return exists, nil
}

func (r *TripRepo) selectTrips(ctx context.Context, query string, args ...interface{}) ([]*models.Trip, error) {
	defer nrpkg.StartPostgresSegment(ctx, "trips", "SELECT").End()

	result := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &result, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return result, nil
}

// tripTx implements trips.TripTx on an open transaction
type tripTx struct {
	tx *sqlx.Tx
}

func (t *tripTx) LockTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	err := t.tx.GetContext(ctx, &trip, `SELECT `+tripColumns+` FROM trips WHERE id = $1 FOR UPDATE`, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("trip %s not found", tripID)
		}
		return nil, fmt.Errorf("failed to lock trip: %w", err)
	}
	return &trip, nil
}

func (t *tripTx) LockDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	err := t.tx.GetContext(ctx, &driver, `SELECT `+driverColumns+` FROM drivers WHERE user_id = $1 FOR UPDATE`, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("driver %s not found", driverID)
		}
		return nil, fmt.Errorf("failed to lock driver: %w", err)
	}
	return &driver, nil
}

func (t *tripTx) LockCabByDriver(ctx context.Context, driverID uuid.UUID) (*models.Cab, error) {
	var cab models.Cab
	err := t.tx.GetContext(ctx, &cab, `SELECT `+cabColumns+` FROM cabs WHERE driver_id = $1 FOR UPDATE`, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("driver %s has no cab", driverID)
		}
		return nil, fmt.Errorf("failed to lock cab: %w", err)
	}
	return &cab, nil
}

func (t *tripTx) LockCab(ctx context.Context, cabID uuid.UUID) (*models.Cab, error) {
	var cab models.Cab
	err := t.tx.GetContext(ctx, &cab, `SELECT `+cabColumns+` FROM cabs WHERE id = $1 FOR UPDATE`, cabID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("cab %s not found", cabID)
		}
		return nil, fmt.Errorf("failed to lock cab: %w", err)
	}
	return &cab, nil
}

func (t *tripTx) FindAvailableDriver(ctx context.Context, carType string) (*models.Driver, *models.Cab, error) {
	query := `
		SELECT d.user_id, d.license_no, d.available, d.verified, d.rating, d.total_ratings,
		       c.id, c.driver_id, c.car_type, c.car_number, c.per_km_rate, c.available, c.created_at, c.updated_at
		FROM drivers d
		JOIN cabs c ON c.driver_id = d.user_id
		WHERE d.available AND d.verified AND c.available AND c.car_type = $1
		ORDER BY d.rating DESC, d.total_ratings DESC
		LIMIT 1
		FOR UPDATE OF d, c SKIP LOCKED`

	var (
		driver models.Driver
		cab    models.Cab
	)
	err := t.tx.QueryRowxContext(ctx, query, carType).Scan(
		&driver.UserID, &driver.LicenseNo, &driver.Available, &driver.Verified, &driver.Rating, &driver.TotalRatings,
		&cab.ID, &cab.DriverID, &cab.CarType, &cab.CarNumber, &cab.PerKmRate, &cab.Available, &cab.CreatedAt, &cab.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, apperror.NotFound("no available driver for car type %s", carType)
		}
		return nil, nil, fmt.Errorf("failed to find available driver: %w", err)
	}
	return &driver, &cab, nil
}

func (t *tripTx) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		UPDATE trips
		SET driver_id = $2, cab_id = $3, status = $4, from_date_time = $5, to_date_time = $6,
		    distance_in_km = $7, bill = $8, customer_rating = $9, updated_at = $10
		WHERE id = $1`

	res, err := t.tx.ExecContext(ctx, query,
		trip.ID,
		trip.DriverID,
		trip.CabID,
		trip.Status,
		trip.FromDateTime,
		trip.ToDateTime,
		trip.DistanceInKm,
		trip.Bill,
		trip.CustomerRating,
		trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	return expectOneRow(res, "trip", trip.ID)
}

func (t *tripTx) UpdateDriver(ctx context.Context, driver *models.Driver) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE drivers SET available = $2, rating = $3, total_ratings = $4 WHERE user_id = $1`,
		driver.UserID, driver.Available, driver.Rating, driver.TotalRatings)
	if err != nil {
		return fmt.Errorf("failed to update driver: %w", err)
	}
	return expectOneRow(res, "driver", driver.UserID)
}

func (t *tripTx) UpdateCab(ctx context.Context, cab *models.Cab) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE cabs SET available = $2, updated_at = $3 WHERE id = $1`,
		cab.ID, cab.Available, cab.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update cab: %w", err)
	}
	return expectOneRow(res, "cab", cab.ID)
}

func expectOneRow(res sql.Result, entity string, id uuid.UUID) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return apperror.NotFound("%s %s not found", entity, id)
	}
	return nil
}
