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

const selectUser = `
	SELECT u.id, u.username, u.email, u.password_hash, u.role, u.full_name, u.mobile, u.address,
		u.created_at, u.updated_at,
		d.license_no, d.available, d.verified, d.rating, d.total_ratings
	FROM users u
	LEFT JOIN drivers d ON d.user_id = u.id`

// userRow is a users row joined with its optional drivers row
type userRow struct {
	models.User
	LicenseNo    sql.NullString  `db:"license_no"`
	Available    sql.NullBool    `db:"available"`
	Verified     sql.NullBool    `db:"verified"`
	Rating       sql.NullFloat64 `db:"rating"`
	TotalRatings sql.NullInt64   `db:"total_ratings"`
}

func (r *userRow) toModel() *models.User {
	user := r.User
	if r.LicenseNo.Valid {
		user.Driver = &models.Driver{
			UserID:       user.ID,
			LicenseNo:    r.LicenseNo.String,
			Available:    r.Available.Bool,
			Verified:     r.Verified.Bool,
			Rating:       r.Rating.Float64,
			TotalRatings: int(r.TotalRatings.Int64),
		}
	}
	return &user
}

// UserRepo is the PostgreSQL implementation of users.UserRepo
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateUser inserts the user and its driver row in one transaction
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	defer nrpkg.StartPostgresSegment(ctx, "users", "INSERT").End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, role, full_name, mobile, address,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.FullName,
		user.Mobile,
		user.Address,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return mapUserWriteError(err, user)
	}

	if user.Driver != nil {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO drivers (user_id, license_no, available, verified, rating, total_ratings)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			user.ID,
			user.Driver.LicenseNo,
			user.Driver.Available,
			user.Driver.Verified,
			user.Driver.Rating,
			user.Driver.TotalRatings,
		)
		if err != nil {
			return mapUserWriteError(err, user)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "u.id", id)
}

// GetUserByUsername retrieves a user by username
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getUserByField(ctx, "u.username", username)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "u.email", email)
}

// getUserByField is a helper function to get a user by a specific column
func (r *UserRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	defer nrpkg.StartPostgresSegment(ctx, "users", "SELECT").End()

	var row userRow
	err := r.db.GetContext(ctx, &row, selectUser+` WHERE `+field+` = $1`, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user %v not found", value)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return row.toModel(), nil
}

// UpdateProfile saves the mutable profile columns
func (r *UserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	defer nrpkg.StartPostgresSegment(ctx, "users", "UPDATE").End()

	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET email = $2, full_name = $3, mobile = $4, address = $5, updated_at = $6
		WHERE id = $1`,
		user.ID,
		user.Email,
		user.FullName,
		user.Mobile,
		user.Address,
		user.UpdatedAt,
	)
	if err != nil {
		return mapUserWriteError(err, user)
	}
	return expectOneRow(res, "user %s not found", user.ID)
}

// UpdatePassword replaces the stored password hash
func (r *UserRepo) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	defer nrpkg.StartPostgresSegment(ctx, "users", "UPDATE").End()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`,
		userID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return expectOneRow(res, "user %s not found", userID)
}

// DeleteByUsername removes a user. Users referenced by trips are kept.
func (r *UserRepo) DeleteByUsername(ctx context.Context, username string) error {
	defer nrpkg.StartPostgresSegment(ctx, "users", "DELETE").End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperror.Conflict("user %s still has trips", username)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return expectOneRow(res, "user %s not found", username)
}

// ListUsers pages through users ordered by creation time
func (r *UserRepo) ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	defer nrpkg.StartPostgresSegment(ctx, "users", "SELECT").End()

	var rows []userRow
	err := r.db.SelectContext(ctx, &rows, selectUser+`
		WHERE ($1::text = '' OR u.role = $1::text)
		ORDER BY u.created_at, u.id
		LIMIT $2 OFFSET $3`,
		string(filter.Role), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	list := make([]*models.User, 0, len(rows))
	for i := range rows {
		list = append(list, rows[i].toModel())
	}
	return list, nil
}

// VerifyDriver sets the verified flag of a driver
func (r *UserRepo) VerifyDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	defer nrpkg.StartPostgresSegment(ctx, "drivers", "UPDATE").End()

	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, `
		UPDATE drivers SET verified = TRUE WHERE user_id = $1
		RETURNING user_id, license_no, available, verified, rating, total_ratings`,
		driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("driver %s not found", driverID)
		}
		return nil, fmt.Errorf("failed to verify driver: %w", err)
	}
	return &driver, nil
}

func mapUserWriteError(err error, user *models.User) error {
	var pgErr *pgconn.PgError
	if database.IsUniqueViolation(err, "") && errors.As(err, &pgErr) {
		switch pgErr.ConstraintName {
		case "users_username_key":
			return apperror.Conflict("username %s is already taken", user.Username)
		case "users_email_key":
			return apperror.Conflict("email %s is already registered", user.Email)
		case "drivers_license_no_key":
			return apperror.Conflict("license is already registered")
		default:
			return apperror.Conflict("user already exists")
		}
	}
	return fmt.Errorf("failed to write user: %w", err)
}

func expectOneRow(res sql.Result, format string, args ...interface{}) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperror.NotFound(format, args...)
	}
	return nil
}
