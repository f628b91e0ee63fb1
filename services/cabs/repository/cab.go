package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	"github.com/piresc/nebengcab/internal/pkg/database"
	"github.com/piresc/nebengcab/internal/pkg/models"
	nrpkg "github.com/piresc/nebengcab/internal/pkg/newrelic"
)

const cabColumns = `id, driver_id, car_type, car_number, per_km_rate, available, created_at, updated_at`

// CabRepo is the PostgreSQL implementation of cabs.CabRepo
type CabRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewCabRepository creates a new cab repository
func NewCabRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *CabRepo {
	return &CabRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateCab inserts a new cab
func (r *CabRepo) CreateCab(ctx context.Context, cab *models.Cab) error {
	defer nrpkg.StartPostgresSegment(ctx, "cabs", "INSERT").End()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cabs (`+cabColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		cab.ID,
		cab.DriverID,
		cab.CarType,
		cab.CarNumber,
		cab.PerKmRate,
		cab.Available,
		cab.CreatedAt,
		cab.UpdatedAt,
	)
	if err != nil {
		return mapCabWriteError(err, cab)
	}
	return nil
}

// GetCab retrieves a cab by ID
func (r *CabRepo) GetCab(ctx context.Context, id uuid.UUID) (*models.Cab, error) {
	defer nrpkg.StartPostgresSegment(ctx, "cabs", "SELECT").End()

	var cab models.Cab
	err := r.db.GetContext(ctx, &cab, `SELECT `+cabColumns+` FROM cabs WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("cab %s not found", id)
		}
		return nil, fmt.Errorf("failed to get cab: %w", err)
	}
	return &cab, nil
}

// ListCabs lists cabs ordered by creation time
func (r *CabRepo) ListCabs(ctx context.Context, filter models.CabFilter) ([]*models.Cab, error) {
	defer nrpkg.StartPostgresSegment(ctx, "cabs", "SELECT").End()

	list := []*models.Cab{}
	err := r.db.SelectContext(ctx, &list, `
		SELECT `+cabColumns+` FROM cabs
		WHERE ($1::text = '' OR car_type = $1::text) AND (NOT $2::boolean OR available)
		ORDER BY created_at, id`,
		filter.CarType, filter.AvailableOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list cabs: %w", err)
	}
	return list, nil
}

// UpdateCab saves the editable cab columns of an available cab
func (r *CabRepo) UpdateCab(ctx context.Context, cab *models.Cab) error {
	defer nrpkg.StartPostgresSegment(ctx, "cabs", "UPDATE").End()

	res, err := r.db.ExecContext(ctx, `
		UPDATE cabs SET car_type = $2, car_number = $3, per_km_rate = $4, updated_at = $5
		WHERE id = $1 AND available`,
		cab.ID,
		cab.CarType,
		cab.CarNumber,
		cab.PerKmRate,
		cab.UpdatedAt,
	)
	if err != nil {
		return mapCabWriteError(err, cab)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperror.InvalidState("cab %s is on a trip or no longer exists", cab.ID)
	}
	return nil
}

// DeleteCab removes a cab if it is available
func (r *CabRepo) DeleteCab(ctx context.Context, id uuid.UUID) error {
	defer nrpkg.StartPostgresSegment(ctx, "cabs", "DELETE").End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM cabs WHERE id = $1 AND available`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperror.Conflict("cab %s has trip history", id)
		}
		return fmt.Errorf("failed to delete cab: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		// either gone or taken by a trip since it was read
		return apperror.InvalidState("cab %s is on a trip or no longer exists", id)
	}
	return nil
}

// DriverExists reports whether a driver row exists for driverID
func (r *CabRepo) DriverExists(ctx context.Context, driverID uuid.UUID) (bool, error) {
	defer nrpkg.StartPostgresSegment(ctx, "drivers", "SELECT").End()

	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM drivers WHERE user_id = $1)`, driverID)
	if err != nil {
		return false, fmt.Errorf("failed to check driver: %w", err)
	}
	return exists, nil
}

func mapCabWriteError(err error, cab *models.Cab) error {
	var pgErr *pgconn.PgError
	if database.IsUniqueViolation(err, "") && errors.As(err, &pgErr) {
		switch pgErr.ConstraintName {
		case "cabs_driver_id_key":
			return apperror.Conflict("driver %s already owns a cab", cab.DriverID.UUID)
		case "cabs_car_number_key":
			return apperror.Conflict("car number %s is already registered", cab.CarNumber)
		default:
			return apperror.Conflict("cab already exists")
		}
	}
	return fmt.Errorf("failed to write cab: %w", err)
}
