package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	"github.com/piresc/nebengcab/internal/pkg/constants"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/piresc/nebengcab/services/trips"
	"github.com/piresc/nebengcab/services/trips/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tripFixture struct {
	uc   *tripUC
	repo *mocks.MockTripRepo
	tx   *mocks.MockTripTx
	gw   *mocks.MockTripGW
}

func setupTripUC(t *testing.T) *tripFixture {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockTripRepo(ctrl)
	tx := mocks.NewMockTripTx(ctrl)
	gw := mocks.NewMockTripGW(ctrl)

	cfg := &models.Config{Trips: models.TripsConfig{GeohashPrecision: 6, ListLimit: 20}}
	uc := NewTripUC(cfg, repo, gw).(*tripUC)
	uc.now = func() time.Time { return fixedNow }

	return &tripFixture{uc: uc, repo: repo, tx: tx, gw: gw}
}

// expectTx runs the transaction body against the mocked TripTx
func (f *tripFixture) expectTx() {
	f.repo.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, trips.TripTx) error) error {
			return fn(ctx, f.tx)
		})
}

func customer(id uuid.UUID) models.Actor {
	return models.Actor{UserID: id, Role: models.RoleCustomer}
}

func driverActor(id uuid.UUID) models.Actor {
	return models.Actor{UserID: id, Role: models.RoleDriver}
}

var admin = models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}

func TestCreateTrip_Success(t *testing.T) {
	// Arrange
	f := setupTripUC(t)
	customerID := uuid.New()

	req := &models.CreateTripRequest{
		PickupAddress:     " A ",
		DropoffAddress:    "B",
		CarType:           "Sedan",
		PickupCoordinates: &models.Coordinates{Latitude: -6.175392, Longitude: 106.827153},
	}

	f.repo.EXPECT().CustomerExists(gomock.Any(), customerID).Return(true, nil)
	f.repo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) error {
			assert.Equal(t, customerID, trip.CustomerID)
			assert.Equal(t, "A", trip.PickupAddress)
			assert.Equal(t, models.TripStatusScheduled, trip.Status)
			assert.False(t, trip.DriverID.Valid)
			assert.False(t, trip.CabID.Valid)
			require.NotNil(t, trip.PickupGeohash)
			assert.Len(t, *trip.PickupGeohash, 6)
			return nil
		})
	f.gw.EXPECT().
		PublishTripEvent(gomock.Any(), constants.SubjectTripCreated, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, ev models.TripEvent) error {
			assert.Equal(t, customerID.String(), ev.CustomerID)
			assert.Equal(t, models.TripStatusScheduled, ev.Status)
			return nil
		})

	// Act
	trip, err := f.uc.CreateTrip(context.Background(), customer(customerID), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fixedNow, trip.ScheduledAt)
}

func TestCreateTrip_Errors(t *testing.T) {
	customerID := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		actor   models.Actor
		req     *models.CreateTripRequest
		setup   func(f *tripFixture)
		wantErr error
	}{
		{
			name:  "customer not found",
			actor: admin,
			req:   &models.CreateTripRequest{CustomerID: &customerID, PickupAddress: "A", DropoffAddress: "B", CarType: "Sedan"},
			setup: func(f *tripFixture) {
				f.repo.EXPECT().CustomerExists(gomock.Any(), customerID).Return(false, nil)
			},
			wantErr: apperror.ErrNotFound,
		},
		{
			name:    "customer booking for someone else",
			actor:   customer(customerID),
			req:     &models.CreateTripRequest{CustomerID: &other, PickupAddress: "A", DropoffAddress: "B", CarType: "Sedan"},
			wantErr: apperror.ErrForbidden,
		},
		{
			name:    "driver cannot book",
			actor:   driverActor(uuid.New()),
			req:     &models.CreateTripRequest{PickupAddress: "A", DropoffAddress: "B", CarType: "Sedan"},
			wantErr: apperror.ErrForbidden,
		},
		{
			name:    "admin without customer",
			actor:   admin,
			req:     &models.CreateTripRequest{PickupAddress: "A", DropoffAddress: "B", CarType: "Sedan"},
			wantErr: apperror.ErrValidation,
		},
		{
			name:    "missing dropoff",
			actor:   customer(customerID),
			req:     &models.CreateTripRequest{PickupAddress: "A", DropoffAddress: "  ", CarType: "Sedan"},
			wantErr: apperror.ErrValidation,
		},
		{
			name:  "bad coordinates",
			actor: customer(customerID),
			req: &models.CreateTripRequest{
				PickupAddress: "A", DropoffAddress: "B", CarType: "Sedan",
				PickupCoordinates: &models.Coordinates{Latitude: 95, Longitude: 0},
			},
			setup: func(f *tripFixture) {
				f.repo.EXPECT().CustomerExists(gomock.Any(), customerID).Return(true, nil)
			},
			wantErr: apperror.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTripUC(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			trip, err := f.uc.CreateTrip(context.Background(), tt.actor, tt.req)

			assert.Nil(t, trip)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestTripScenario walks one trip through its whole lifecycle
func TestTripScenario(t *testing.T) {
	f := setupTripUC(t)
	ctx := context.Background()

	trip := newTrip(models.TripStatusScheduled)
	driver, cab := newDriverWithCab()
	cust := customer(trip.CustomerID)
	drv := driverActor(driver.UserID)

	f.gw.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)

	// assign
	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.tx.EXPECT().LockDriver(gomock.Any(), driver.UserID).Return(driver, nil)
	f.tx.EXPECT().LockCabByDriver(gomock.Any(), driver.UserID).Return(cab, nil)
	f.tx.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)
	f.tx.EXPECT().UpdateDriver(gomock.Any(), driver).Return(nil)
	f.tx.EXPECT().UpdateCab(gomock.Any(), cab).Return(nil)

	got, err := f.uc.AssignTrip(ctx, drv, trip.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusConfirmed, got.Status)
	assert.False(t, driver.Available)

	// start
	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.tx.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)

	got, err = f.uc.StartTrip(ctx, drv, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusInProgress, got.Status)

	// complete
	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.tx.EXPECT().LockDriver(gomock.Any(), driver.UserID).Return(driver, nil)
	f.tx.EXPECT().LockCab(gomock.Any(), cab.ID).Return(cab, nil)
	f.tx.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)
	f.tx.EXPECT().UpdateDriver(gomock.Any(), driver).Return(nil)
	f.tx.EXPECT().UpdateCab(gomock.Any(), cab).Return(nil)

	got, err = f.uc.CompleteTrip(ctx, drv, trip.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, got.Status)
	assert.Equal(t, 150.0, got.Bill)
	assert.True(t, driver.Available)
	assert.True(t, cab.Available)

	// rate
	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.tx.EXPECT().LockDriver(gomock.Any(), driver.UserID).Return(driver, nil)
	f.tx.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)
	f.tx.EXPECT().UpdateDriver(gomock.Any(), driver).Return(nil)

	got, err = f.uc.RateTrip(ctx, cust, trip.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, *got.CustomerRating)
	assert.InDelta(t, 4.545, driver.Rating, 0.001)
	assert.Equal(t, 11, driver.TotalRatings)

	// a second rating is rejected without touching the driver
	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err = f.uc.RateTrip(ctx, cust, trip.ID, 4)
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
	assert.Equal(t, 11, driver.TotalRatings)
}

func TestAssignTrip_AlreadyConfirmed(t *testing.T) {
	f := setupTripUC(t)
	trip := newTrip(models.TripStatusConfirmed)

	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := f.uc.AssignTrip(context.Background(), admin, trip.ID, nil)

	assert.ErrorIs(t, err, apperror.ErrInvalidState)
}

func TestAssignTrip_DriverUnavailable(t *testing.T) {
	f := setupTripUC(t)
	trip := newTrip(models.TripStatusScheduled)
	driver, cab := newDriverWithCab()
	driver.Available = false

	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.tx.EXPECT().LockDriver(gomock.Any(), driver.UserID).Return(driver, nil)
	f.tx.EXPECT().LockCabByDriver(gomock.Any(), driver.UserID).Return(cab, nil)

	_, err := f.uc.AssignTrip(context.Background(), admin, trip.ID, &driver.UserID)

	assert.ErrorIs(t, err, apperror.ErrUnavailable)
	assert.Equal(t, models.TripStatusScheduled, trip.Status)
}

func TestAssignTrip_DriverWithoutCab(t *testing.T) {
	f := setupTripUC(t)
	trip := newTrip(models.TripStatusScheduled)
	driver, _ := newDriverWithCab()

	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.tx.EXPECT().LockDriver(gomock.Any(), driver.UserID).Return(driver, nil)
	f.tx.EXPECT().LockCabByDriver(gomock.Any(), driver.UserID).Return(nil, apperror.NotFound("no cab"))

	_, err := f.uc.AssignTrip(context.Background(), admin, trip.ID, &driver.UserID)

	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

func TestAssignTrip_AutoPick(t *testing.T) {
	f := setupTripUC(t)
	trip := newTrip(models.TripStatusScheduled)
	driver, cab := newDriverWithCab()

	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.tx.EXPECT().FindAvailableDriver(gomock.Any(), "Sedan").Return(driver, cab, nil)
	f.tx.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)
	f.tx.EXPECT().UpdateDriver(gomock.Any(), driver).Return(nil)
	f.tx.EXPECT().UpdateCab(gomock.Any(), cab).Return(nil)
	f.gw.EXPECT().PublishTripEvent(gomock.Any(), constants.SubjectTripConfirmed, gomock.Any()).Return(nil)

	got, err := f.uc.AssignTrip(context.Background(), admin, trip.ID, nil)

	require.NoError(t, err)
	assert.Equal(t, driver.UserID, got.DriverID.UUID)
}

func TestAssignTrip_AutoPickNoneFree(t *testing.T) {
	f := setupTripUC(t)
	trip := newTrip(models.TripStatusScheduled)

	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.tx.EXPECT().FindAvailableDriver(gomock.Any(), "Sedan").Return(nil, nil, apperror.NotFound("none"))

	_, err := f.uc.AssignTrip(context.Background(), admin, trip.ID, nil)

	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

func TestAssignTrip_Forbidden(t *testing.T) {
	f := setupTripUC(t)
	other := uuid.New()

	_, err := f.uc.AssignTrip(context.Background(), driverActor(uuid.New()), uuid.New(), &other)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = f.uc.AssignTrip(context.Background(), customer(uuid.New()), uuid.New(), nil)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestStartTrip_NotAssignedDriver(t *testing.T) {
	f := setupTripUC(t)
	trip := newTrip(models.TripStatusConfirmed)
	trip.DriverID = uuid.NullUUID{UUID: uuid.New(), Valid: true}

	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := f.uc.StartTrip(context.Background(), driverActor(uuid.New()), trip.ID)

	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.Equal(t, models.TripStatusConfirmed, trip.Status)
}

func TestCompleteTrip_RejectsNegativeDistance(t *testing.T) {
	f := setupTripUC(t)

	_, err := f.uc.CompleteTrip(context.Background(), admin, uuid.New(), -3)

	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCompleteTrip_WrongState(t *testing.T) {
	f := setupTripUC(t)
	trip := newTrip(models.TripStatusConfirmed)

	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := f.uc.CompleteTrip(context.Background(), admin, trip.ID, 4)

	assert.ErrorIs(t, err, apperror.ErrInvalidState)
}

func TestCancelTrip_FromConfirmedReleases(t *testing.T) {
	f := setupTripUC(t)
	trip := newTrip(models.TripStatusScheduled)
	driver, cab := newDriverWithCab()
	require.NoError(t, confirmTrip(trip, driver, cab, fixedNow))

	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.tx.EXPECT().LockDriver(gomock.Any(), driver.UserID).Return(driver, nil)
	f.tx.EXPECT().LockCab(gomock.Any(), cab.ID).Return(cab, nil)
	f.tx.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)
	f.tx.EXPECT().UpdateDriver(gomock.Any(), driver).Return(nil)
	f.tx.EXPECT().UpdateCab(gomock.Any(), cab).Return(nil)
	f.gw.EXPECT().PublishTripEvent(gomock.Any(), constants.SubjectTripCancelled, gomock.Any()).Return(nil)

	got, err := f.uc.CancelTrip(context.Background(), customer(trip.CustomerID), trip.ID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, got.Status)
	assert.True(t, driver.Available)
	assert.True(t, cab.Available)
}

func TestCancelTrip_FromScheduledTouchesNoDriver(t *testing.T) {
	f := setupTripUC(t)
	trip := newTrip(models.TripStatusScheduled)

	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.tx.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)
	f.gw.EXPECT().PublishTripEvent(gomock.Any(), constants.SubjectTripCancelled, gomock.Any()).Return(nil)

	got, err := f.uc.CancelTrip(context.Background(), admin, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, got.Status)
}

func TestCancelTrip_InProgress(t *testing.T) {
	f := setupTripUC(t)
	trip := newTrip(models.TripStatusInProgress)

	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := f.uc.CancelTrip(context.Background(), customer(trip.CustomerID), trip.ID)

	assert.ErrorIs(t, err, apperror.ErrInvalidState)
}

func TestRateTrip_OutOfRangeSkipsTransaction(t *testing.T) {
	f := setupTripUC(t)

	_, err := f.uc.RateTrip(context.Background(), customer(uuid.New()), uuid.New(), 6)

	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestRateTrip_OnlyCustomer(t *testing.T) {
	f := setupTripUC(t)
	trip := newTrip(models.TripStatusCompleted)

	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := f.uc.RateTrip(context.Background(), admin, trip.ID, 5)

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestPublishFailureDoesNotFailTransition(t *testing.T) {
	f := setupTripUC(t)
	trip := newTrip(models.TripStatusScheduled)

	f.expectTx()
	f.tx.EXPECT().LockTrip(gomock.Any(), trip.ID).Return(trip, nil)
	f.tx.EXPECT().UpdateTrip(gomock.Any(), trip).Return(nil)
	f.gw.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	got, err := f.uc.CancelTrip(context.Background(), customer(trip.CustomerID), trip.ID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, got.Status)
}

func TestTransactionErrorPropagates(t *testing.T) {
	f := setupTripUC(t)
	dbErr := errors.New("connection reset")

	f.repo.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := f.uc.StartTrip(context.Background(), admin, uuid.New())

	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestGetTrip_Visibility(t *testing.T) {
	trip := newTrip(models.TripStatusConfirmed)
	driverID := uuid.New()
	trip.DriverID = uuid.NullUUID{UUID: driverID, Valid: true}

	tests := []struct {
		name    string
		actor   models.Actor
		wantErr error
	}{
		{"owner", customer(trip.CustomerID), nil},
		{"assigned driver", driverActor(driverID), nil},
		{"admin", admin, nil},
		{"other customer", customer(uuid.New()), apperror.ErrForbidden},
		{"other driver", driverActor(uuid.New()), apperror.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTripUC(t)
			f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

			got, err := f.uc.GetTrip(context.Background(), tt.actor, trip.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, trip.ID, got.ID)
		})
	}
}

func TestListTrips_ByRole(t *testing.T) {
	f := setupTripUC(t)
	id := uuid.New()

	f.repo.EXPECT().ListTripsByCustomer(gomock.Any(), id, 20).Return([]*models.Trip{}, nil)
	f.repo.EXPECT().ListTripsByDriver(gomock.Any(), id, 20).Return([]*models.Trip{}, nil)
	f.repo.EXPECT().ListTrips(gomock.Any(), 20).Return([]*models.Trip{}, nil)

	_, err := f.uc.ListTrips(context.Background(), customer(id))
	require.NoError(t, err)
	_, err = f.uc.ListTrips(context.Background(), driverActor(id))
	require.NoError(t, err)
	_, err = f.uc.ListTrips(context.Background(), admin)
	require.NoError(t, err)
}

func TestListOpenTrips(t *testing.T) {
	f := setupTripUC(t)

	f.repo.EXPECT().
		ListOpenTrips(gomock.Any(), gomock.Any(), "Sedan", 5).
		DoAndReturn(func(_ context.Context, cells []string, _ string, _ int) ([]*models.Trip, error) {
			assert.Len(t, cells, 9)
			return []*models.Trip{newTrip(models.TripStatusScheduled)}, nil
		})

	got, err := f.uc.ListOpenTrips(context.Background(), driverActor(uuid.New()), models.OpenTripQuery{
		Latitude: -6.2, Longitude: 106.8, CarType: "Sedan", Limit: 5,
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = f.uc.ListOpenTrips(context.Background(), customer(uuid.New()), models.OpenTripQuery{})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}
