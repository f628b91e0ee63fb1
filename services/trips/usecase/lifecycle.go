package usecase

import (
	"math"
	"time"

	"github.com/piresc/nebengcab/internal/pkg/apperror"
	"github.com/piresc/nebengcab/internal/pkg/models"
)

const (
	minRating = 1
	maxRating = 5
)

// transition moves trip to next or fails with an invalid state error
func transition(trip *models.Trip, next models.TripStatus) error {
	if !trip.Status.CanTransitionTo(next) {
		return apperror.InvalidState("trip %s cannot move from %s to %s", trip.ID, trip.Status, next)
	}
	trip.Status = next
	return nil
}

// requireStatus fails unless trip is currently in want
func requireStatus(trip *models.Trip, want models.TripStatus) error {
	if trip.Status != want {
		return apperror.InvalidState("trip %s is %s, expected %s", trip.ID, trip.Status, want)
	}
	return nil
}

// checkAssignable fails when driver or cab cannot take a new trip
func checkAssignable(driver *models.Driver, cab *models.Cab) error {
	if !driver.Verified {
		return apperror.Unavailable("driver %s is not verified", driver.UserID)
	}
	if !driver.Available {
		return apperror.Unavailable("driver %s is not available", driver.UserID)
	}
	if cab == nil {
		return apperror.Unavailable("driver %s has no cab", driver.UserID)
	}
	if !cab.Available {
		return apperror.Unavailable("cab %s is not available", cab.ID)
	}
	return nil
}

// confirmTrip assigns driver and cab to a scheduled trip and takes both out of rotation
func confirmTrip(trip *models.Trip, driver *models.Driver, cab *models.Cab, now time.Time) error {
	if err := requireStatus(trip, models.TripStatusScheduled); err != nil {
		return err
	}
	if err := checkAssignable(driver, cab); err != nil {
		return err
	}
	if err := transition(trip, models.TripStatusConfirmed); err != nil {
		return err
	}

	trip.DriverID.UUID, trip.DriverID.Valid = driver.UserID, true
	trip.CabID.UUID, trip.CabID.Valid = cab.ID, true
	trip.UpdatedAt = now
	driver.Available = false
	cab.Available = false
	cab.UpdatedAt = now
	return nil
}

// startTrip marks a confirmed trip as in progress
func startTrip(trip *models.Trip, now time.Time) error {
	if err := transition(trip, models.TripStatusInProgress); err != nil {
		return err
	}
	trip.FromDateTime = &now
	trip.UpdatedAt = now
	return nil
}

// validateDistance rejects distances that cannot be billed
func validateDistance(distanceInKm float64) error {
	if math.IsNaN(distanceInKm) || math.IsInf(distanceInKm, 0) || distanceInKm < 0 {
		return apperror.Validation("distance_in_km must be a non-negative number")
	}
	return nil
}

// completeTrip bills the trip at the cab's rate and releases driver and cab
func completeTrip(trip *models.Trip, driver *models.Driver, cab *models.Cab, distanceInKm float64, now time.Time) error {
	if err := validateDistance(distanceInKm); err != nil {
		return err
	}
	if err := transition(trip, models.TripStatusCompleted); err != nil {
		return err
	}

	trip.ToDateTime = &now
	trip.DistanceInKm = distanceInKm
	trip.Bill = distanceInKm * cab.PerKmRate
	trip.UpdatedAt = now
	release(driver, cab, now)
	return nil
}

// cancelTrip cancels a trip that has not started. driver and cab are nil for unassigned trips.
func cancelTrip(trip *models.Trip, driver *models.Driver, cab *models.Cab, now time.Time) error {
	if err := transition(trip, models.TripStatusCancelled); err != nil {
		return err
	}
	trip.UpdatedAt = now
	release(driver, cab, now)
	return nil
}

func release(driver *models.Driver, cab *models.Cab, now time.Time) {
	if driver != nil {
		driver.Available = true
	}
	if cab != nil {
		cab.Available = true
		cab.UpdatedAt = now
	}
}

// validateRating checks the rating range
func validateRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return apperror.Validation("rating must be between %d and %d", minRating, maxRating)
	}
	return nil
}

// checkRatable fails unless trip is completed and not rated yet
func checkRatable(trip *models.Trip) error {
	if err := requireStatus(trip, models.TripStatusCompleted); err != nil {
		return err
	}
	if trip.CustomerRating != nil {
		return apperror.InvalidState("trip %s is already rated", trip.ID)
	}
	return nil
}

// rateTrip records the customer's rating once and folds it into the driver's running average
func rateTrip(trip *models.Trip, driver *models.Driver, rating int, now time.Time) error {
	if err := validateRating(rating); err != nil {
		return err
	}
	if err := checkRatable(trip); err != nil {
		return err
	}

	r := rating
	trip.CustomerRating = &r
	trip.UpdatedAt = now

	total := float64(driver.TotalRatings)
	driver.Rating = (driver.Rating*total + float64(rating)) / (total + 1)
	driver.TotalRatings++
	return nil
}
