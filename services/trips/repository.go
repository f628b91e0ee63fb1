package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nebengcab/services/trips TripRepo,TripTx
type TripRepo interface {
	// WithinTx runs fn inside one database transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx TripTx) error) error

	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	ListTrips(ctx context.Context, limit int) ([]*models.Trip, error)
	ListTripsByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*models.Trip, error)
	ListTripsByDriver(ctx context.Context, driverID uuid.UUID, limit int) ([]*models.Trip, error)
	ListOpenTrips(ctx context.Context, cells []string, carType string, limit int) ([]*models.Trip, error)
	CustomerExists(ctx context.Context, customerID uuid.UUID) (bool, error)
}

// TripTx is the set of row locking operations available inside WithinTx.
// Rows must be locked in trip, driver, cab order.
type TripTx interface {
	LockTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	LockDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	LockCabByDriver(ctx context.Context, driverID uuid.UUID) (*models.Cab, error)
	LockCab(ctx context.Context, cabID uuid.UUID) (*models.Cab, error)
	// FindAvailableDriver locks the best rated free, verified driver whose
	// free cab has the given car type. Rows held by other transactions are skipped.
	FindAvailableDriver(ctx context.Context, carType string) (*models.Driver, *models.Cab, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	UpdateDriver(ctx context.Context, driver *models.Driver) error
	UpdateCab(ctx context.Context, cab *models.Cab) error
}
