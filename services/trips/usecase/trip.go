package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	"github.com/piresc/nebengcab/internal/pkg/constants"
	"github.com/piresc/nebengcab/internal/pkg/logger"
	"github.com/piresc/nebengcab/internal/pkg/models"
	nrpkg "github.com/piresc/nebengcab/internal/pkg/newrelic"
	"github.com/piresc/nebengcab/internal/utils"
	"github.com/piresc/nebengcab/services/trips"
)

const (
	defaultGeohashPrecision uint = 6
	defaultListLimit             = 50
)

// tripUC implements the trips.TripUC interface
type tripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
	now      func() time.Time
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	tripGW trips.TripGW,
) trips.TripUC {
	return &tripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateTrip books a new unassigned trip in SCHEDULED
func (uc *tripUC) CreateTrip(ctx context.Context, actor models.Actor, req *models.CreateTripRequest) (*models.Trip, error) {
	defer nrpkg.StartSegment(ctx, "Trips.CreateTrip").End()

	customerID, err := bookingCustomer(actor, req.CustomerID)
	if err != nil {
		return nil, err
	}

	pickup := strings.TrimSpace(req.PickupAddress)
	dropoff := strings.TrimSpace(req.DropoffAddress)
	carType := strings.TrimSpace(req.CarType)
	if pickup == "" {
		return nil, apperror.Validation("pickup_address is required")
	}
	if dropoff == "" {
		return nil, apperror.Validation("dropoff_address is required")
	}
	if carType == "" {
		return nil, apperror.Validation("car_type is required")
	}

	exists, err := uc.tripRepo.CustomerExists(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}
	if !exists {
		return nil, apperror.NotFound("customer %s not found", customerID)
	}

	now := uc.now()
	trip := &models.Trip{
		ID:             uuid.New(),
		CustomerID:     customerID,
		PickupAddress:  pickup,
		DropoffAddress: dropoff,
		CarType:        carType,
		ScheduledAt:    now,
		Status:         models.TripStatusScheduled,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.ScheduledAt != nil {
		trip.ScheduledAt = req.ScheduledAt.UTC()
	}

	if c := req.PickupCoordinates; c != nil {
		if err := validateCoordinates(c.Latitude, c.Longitude); err != nil {
			return nil, err
		}
		lat, lng := c.Latitude, c.Longitude
		hash := utils.EncodeCoordinates(*c, uc.geohashPrecision())
		trip.PickupLatitude = &lat
		trip.PickupLongitude = &lng
		trip.PickupGeohash = &hash
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	logger.InfoCtx(ctx, "Trip created",
		logger.String("trip_id", trip.ID.String()),
		logger.String("customer_id", customerID.String()),
		logger.String("car_type", carType))

	uc.publish(ctx, constants.SubjectTripCreated, trip)
	return trip, nil
}

// GetTrip returns a trip visible to actor
func (uc *tripUC) GetTrip(ctx context.Context, actor models.Actor, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !canView(actor, trip) {
		return nil, apperror.Forbidden("not allowed to view trip %s", tripID)
	}
	return trip, nil
}

// ListTrips returns the actor's own trips, or every trip for admins
func (uc *tripUC) ListTrips(ctx context.Context, actor models.Actor) ([]*models.Trip, error) {
	limit := uc.listLimit()

	switch actor.Role {
	case models.RoleAdmin:
		return uc.tripRepo.ListTrips(ctx, limit)
	case models.RoleDriver:
		return uc.tripRepo.ListTripsByDriver(ctx, actor.UserID, limit)
	case models.RoleCustomer:
		return uc.tripRepo.ListTripsByCustomer(ctx, actor.UserID, limit)
	default:
		return nil, apperror.Forbidden("role %q cannot list trips", actor.Role)
	}
}

// ListOpenTrips returns scheduled trips picked up around the query point
func (uc *tripUC) ListOpenTrips(ctx context.Context, actor models.Actor, query models.OpenTripQuery) ([]*models.Trip, error) {
	if actor.Role != models.RoleDriver && !actor.IsAdmin() {
		return nil, apperror.Forbidden("only drivers can browse open trips")
	}
	if err := validateCoordinates(query.Latitude, query.Longitude); err != nil {
		return nil, err
	}

	limit := uc.listLimit()
	if query.Limit > 0 && query.Limit < limit {
		limit = query.Limit
	}

	cells := utils.NearbyCells(query.Latitude, query.Longitude, uc.geohashPrecision())
	return uc.tripRepo.ListOpenTrips(ctx, cells, strings.TrimSpace(query.CarType), limit)
}

// AssignTrip confirms a scheduled trip with the given driver, or with the best
// available driver for the trip's car type when driverID is nil
func (uc *tripUC) AssignTrip(ctx context.Context, actor models.Actor, tripID uuid.UUID, driverID *uuid.UUID) (*models.Trip, error) {
	defer nrpkg.StartSegment(ctx, "Trips.AssignTrip").End()

	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleDriver:
		if driverID != nil && *driverID != actor.UserID {
			return nil, apperror.Forbidden("drivers can only assign themselves")
		}
		self := actor.UserID
		driverID = &self
	default:
		return nil, apperror.Forbidden("role %q cannot assign trips", actor.Role)
	}

	var result *models.Trip
	err := uc.tripRepo.WithinTx(ctx, func(ctx context.Context, tx trips.TripTx) error {
		trip, err := tx.LockTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if err := requireStatus(trip, models.TripStatusScheduled); err != nil {
			return err
		}

		var (
			driver *models.Driver
			cab    *models.Cab
		)
		if driverID != nil {
			driver, err = tx.LockDriver(ctx, *driverID)
			if err != nil {
				return err
			}
			cab, err = tx.LockCabByDriver(ctx, driver.UserID)
			if err != nil && !errors.Is(err, apperror.ErrNotFound) {
				return err
			}
		} else {
			driver, cab, err = tx.FindAvailableDriver(ctx, trip.CarType)
			if errors.Is(err, apperror.ErrNotFound) {
				return apperror.Unavailable("no %s cab is available", trip.CarType)
			}
			if err != nil {
				return err
			}
		}

		if err := confirmTrip(trip, driver, cab, uc.now()); err != nil {
			return err
		}
		if err := tx.UpdateTrip(ctx, trip); err != nil {
			return err
		}
		if err := tx.UpdateDriver(ctx, driver); err != nil {
			return err
		}
		if err := tx.UpdateCab(ctx, cab); err != nil {
			return err
		}
		result = trip
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assign trip %s: %w", tripID, err)
	}

	logger.InfoCtx(ctx, "Trip confirmed",
		logger.String("trip_id", tripID.String()),
		logger.String("driver_id", result.DriverID.UUID.String()),
		logger.String("cab_id", result.CabID.UUID.String()))

	uc.publish(ctx, constants.SubjectTripConfirmed, result)
	return result, nil
}

// StartTrip moves a confirmed trip to IN_PROGRESS
func (uc *tripUC) StartTrip(ctx context.Context, actor models.Actor, tripID uuid.UUID) (*models.Trip, error) {
	defer nrpkg.StartSegment(ctx, "Trips.StartTrip").End()

	var result *models.Trip
	err := uc.tripRepo.WithinTx(ctx, func(ctx context.Context, tx trips.TripTx) error {
		trip, err := tx.LockTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if err := authorizeDriving(actor, trip, "start"); err != nil {
			return err
		}
		if err := startTrip(trip, uc.now()); err != nil {
			return err
		}
		if err := tx.UpdateTrip(ctx, trip); err != nil {
			return err
		}
		result = trip
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("start trip %s: %w", tripID, err)
	}

	logger.InfoCtx(ctx, "Trip started", logger.String("trip_id", tripID.String()))
	uc.publish(ctx, constants.SubjectTripStarted, result)
	return result, nil
}

// CompleteTrip bills an in-progress trip and releases its driver and cab
func (uc *tripUC) CompleteTrip(ctx context.Context, actor models.Actor, tripID uuid.UUID, distanceInKm float64) (*models.Trip, error) {
	defer nrpkg.StartSegment(ctx, "Trips.CompleteTrip").End()

	if err := validateDistance(distanceInKm); err != nil {
		return nil, err
	}

	var result *models.Trip
	err := uc.tripRepo.WithinTx(ctx, func(ctx context.Context, tx trips.TripTx) error {
		trip, err := tx.LockTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if err := authorizeDriving(actor, trip, "complete"); err != nil {
			return err
		}
		if err := requireStatus(trip, models.TripStatusInProgress); err != nil {
			return err
		}
		if !trip.DriverID.Valid || !trip.CabID.Valid {
			return fmt.Errorf("trip %s is in progress without driver or cab", trip.ID)
		}

		driver, err := tx.LockDriver(ctx, trip.DriverID.UUID)
		if err != nil {
			return err
		}
		cab, err := tx.LockCab(ctx, trip.CabID.UUID)
		if err != nil {
			return err
		}

		if err := completeTrip(trip, driver, cab, distanceInKm, uc.now()); err != nil {
			return err
		}
		if err := tx.UpdateTrip(ctx, trip); err != nil {
			return err
		}
		if err := tx.UpdateDriver(ctx, driver); err != nil {
			return err
		}
		if err := tx.UpdateCab(ctx, cab); err != nil {
			return err
		}
		result = trip
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("complete trip %s: %w", tripID, err)
	}

	logger.InfoCtx(ctx, "Trip completed",
		logger.String("trip_id", tripID.String()),
		logger.Float64("distance_in_km", result.DistanceInKm),
		logger.Float64("bill", result.Bill))

	uc.publish(ctx, constants.SubjectTripCompleted, result)
	return result, nil
}

// CancelTrip cancels a trip that has not started and releases any assigned driver and cab
func (uc *tripUC) CancelTrip(ctx context.Context, actor models.Actor, tripID uuid.UUID) (*models.Trip, error) {
	defer nrpkg.StartSegment(ctx, "Trips.CancelTrip").End()

	var result *models.Trip
	err := uc.tripRepo.WithinTx(ctx, func(ctx context.Context, tx trips.TripTx) error {
		trip, err := tx.LockTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if !canView(actor, trip) {
			return apperror.Forbidden("not allowed to cancel trip %s", tripID)
		}
		if !trip.Status.CanTransitionTo(models.TripStatusCancelled) {
			return apperror.InvalidState("trip %s is %s and can no longer be cancelled", trip.ID, trip.Status)
		}

		var (
			driver *models.Driver
			cab    *models.Cab
		)
		if trip.DriverID.Valid {
			if driver, err = tx.LockDriver(ctx, trip.DriverID.UUID); err != nil {
				return err
			}
		}
		if trip.CabID.Valid {
			if cab, err = tx.LockCab(ctx, trip.CabID.UUID); err != nil {
				return err
			}
		}

		if err := cancelTrip(trip, driver, cab, uc.now()); err != nil {
			return err
		}
		if err := tx.UpdateTrip(ctx, trip); err != nil {
			return err
		}
		if driver != nil {
			if err := tx.UpdateDriver(ctx, driver); err != nil {
				return err
			}
		}
		if cab != nil {
			if err := tx.UpdateCab(ctx, cab); err != nil {
				return err
			}
		}
		result = trip
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cancel trip %s: %w", tripID, err)
	}

	logger.InfoCtx(ctx, "Trip cancelled",
		logger.String("trip_id", tripID.String()),
		logger.String("cancelled_by", actor.UserID.String()))

	uc.publish(ctx, constants.SubjectTripCancelled, result)
	return result, nil
}

// RateTrip records the customer's rating of a completed trip
func (uc *tripUC) RateTrip(ctx context.Context, actor models.Actor, tripID uuid.UUID, rating int) (*models.Trip, error) {
	defer nrpkg.StartSegment(ctx, "Trips.RateTrip").End()

	if err := validateRating(rating); err != nil {
		return nil, err
	}

	var result *models.Trip
	err := uc.tripRepo.WithinTx(ctx, func(ctx context.Context, tx trips.TripTx) error {
		trip, err := tx.LockTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if actor.Role != models.RoleCustomer || trip.CustomerID != actor.UserID {
			return apperror.Forbidden("only the trip's customer can rate trip %s", tripID)
		}
		if err := checkRatable(trip); err != nil {
			return err
		}
		if !trip.DriverID.Valid {
			return fmt.Errorf("completed trip %s has no driver", trip.ID)
		}

		driver, err := tx.LockDriver(ctx, trip.DriverID.UUID)
		if err != nil {
			return err
		}
		if err := rateTrip(trip, driver, rating, uc.now()); err != nil {
			return err
		}
		if err := tx.UpdateTrip(ctx, trip); err != nil {
			return err
		}
		if err := tx.UpdateDriver(ctx, driver); err != nil {
			return err
		}
		result = trip
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rate trip %s: %w", tripID, err)
	}

	logger.InfoCtx(ctx, "Trip rated",
		logger.String("trip_id", tripID.String()),
		logger.Int("rating", rating))

	uc.publish(ctx, constants.SubjectTripRated, result)
	return result, nil
}

// publish emits a trip event after commit. Failures are logged only, the
// transition has already been persisted.
func (uc *tripUC) publish(ctx context.Context, subject string, trip *models.Trip) {
	if uc.tripGW == nil {
		return
	}
	event := models.NewTripEvent(subject, trip, uc.now())
	if err := uc.tripGW.PublishTripEvent(ctx, subject, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trip event",
			logger.String("subject", subject),
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}
}

func (uc *tripUC) geohashPrecision() uint {
	if uc.cfg == nil || uc.cfg.Trips.GeohashPrecision == 0 {
		return defaultGeohashPrecision
	}
	return uc.cfg.Trips.GeohashPrecision
}

func (uc *tripUC) listLimit() int {
	if uc.cfg == nil || uc.cfg.Trips.ListLimit <= 0 {
		return defaultListLimit
	}
	return uc.cfg.Trips.ListLimit
}

// bookingCustomer resolves whose trip is being booked
func bookingCustomer(actor models.Actor, requested *uuid.UUID) (uuid.UUID, error) {
	switch actor.Role {
	case models.RoleCustomer:
		if requested != nil && *requested != actor.UserID {
			return uuid.Nil, apperror.Forbidden("customers can only book trips for themselves")
		}
		return actor.UserID, nil
	case models.RoleAdmin:
		if requested == nil || *requested == uuid.Nil {
			return uuid.Nil, apperror.Validation("customer_id is required")
		}
		return *requested, nil
	default:
		return uuid.Nil, apperror.Forbidden("role %q cannot book trips", actor.Role)
	}
}

// canView reports whether actor takes part in trip
func canView(actor models.Actor, trip *models.Trip) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleCustomer:
		return trip.CustomerID == actor.UserID
	case models.RoleDriver:
		return trip.DriverID.Valid && trip.DriverID.UUID == actor.UserID
	}
	return false
}

// authorizeDriving allows the assigned driver or an admin
func authorizeDriving(actor models.Actor, trip *models.Trip, action string) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role == models.RoleDriver && trip.DriverID.Valid && trip.DriverID.UUID == actor.UserID {
		return nil
	}
	return apperror.Forbidden("only the assigned driver can %s trip %s", action, trip.ID)
}

func validateCoordinates(latitude, longitude float64) error {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return apperror.Validation("latitude must be between -90 and 90")
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return apperror.Validation("longitude must be between -180 and 180")
	}
	return nil
}
