package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusScheduled  TripStatus = "SCHEDULED"
	TripStatusConfirmed  TripStatus = "CONFIRMED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusScheduled:  {TripStatusConfirmed, TripStatusCancelled},
	TripStatusConfirmed:  {TripStatusInProgress, TripStatusCancelled},
	TripStatusInProgress: {TripStatusCompleted},
}

// CanTransitionTo reports whether next is a legal successor of s
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	for _, allowed := range tripTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s
func (s TripStatus) IsTerminal() bool {
	return len(tripTransitions[s]) == 0
}

// Trip represents a single cab booking
type Trip struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	CustomerID      uuid.UUID     `json:"customer_id" db:"customer_id"`
	DriverID        uuid.NullUUID `json:"driver_id" db:"driver_id"`
	CabID           uuid.NullUUID `json:"cab_id" db:"cab_id"`
	PickupAddress   string        `json:"pickup_address" db:"pickup_address"`
	PickupLatitude  *float64      `json:"pickup_latitude,omitempty" db:"pickup_latitude"`
	PickupLongitude *float64      `json:"pickup_longitude,omitempty" db:"pickup_longitude"`
	PickupGeohash   *string       `json:"pickup_geohash,omitempty" db:"pickup_geohash"`
	DropoffAddress  string        `json:"dropoff_address" db:"dropoff_address"`
	CarType         string        `json:"car_type" db:"car_type"`
	ScheduledAt     time.Time     `json:"scheduled_at" db:"scheduled_at"`
	FromDateTime    *time.Time    `json:"from_date_time,omitempty" db:"from_date_time"`
	ToDateTime      *time.Time    `json:"to_date_time,omitempty" db:"to_date_time"`
	DistanceInKm    float64       `json:"distance_in_km" db:"distance_in_km"`
	Bill            float64       `json:"bill" db:"bill"`
	Status          TripStatus    `json:"status" db:"status"`
	CustomerRating  *int          `json:"customer_rating,omitempty" db:"customer_rating"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// Coordinates is an optional lat/lon pair
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// CreateTripRequest is the payload for booking a trip
type CreateTripRequest struct {
	CustomerID        *uuid.UUID   `json:"customer_id"`
	PickupAddress     string       `json:"pickup_address" validate:"required,max=255"`
	DropoffAddress    string       `json:"dropoff_address" validate:"required,max=255"`
	CarType           string       `json:"car_type" validate:"required,max=30"`
	PickupCoordinates *Coordinates `json:"pickup_coordinates"`
	ScheduledAt       *time.Time   `json:"scheduled_at"`
}

// AssignTripRequest names the driver to assign; empty means pick one
type AssignTripRequest struct {
	DriverID *uuid.UUID `json:"driver_id"`
}

// CompleteTripRequest carries the distance travelled
type CompleteTripRequest struct {
	DistanceInKm *float64 `json:"distance_in_km" validate:"required,gte=0"`
}

// RateTripRequest carries the customer's rating
type RateTripRequest struct {
	Rating *int `json:"rating" validate:"required"`
}

// OpenTripQuery locates scheduled trips around a point
type OpenTripQuery struct {
	Latitude  float64
	Longitude float64
	CarType   string
	Limit     int
}

// TripEvent is published on every committed trip transition
type TripEvent struct {
	Event      string     `json:"event"`
	TripID     string     `json:"trip_id"`
	CustomerID string     `json:"customer_id"`
	DriverID   string     `json:"driver_id,omitempty"`
	CabID      string     `json:"cab_id,omitempty"`
	Status     TripStatus `json:"status"`
	Bill       float64    `json:"bill"`
	Rating     *int       `json:"rating,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// NewTripEvent builds the event payload for trip
func NewTripEvent(event string, trip *Trip, at time.Time) TripEvent {
	ev := TripEvent{
		Event:      event,
		TripID:     trip.ID.String(),
		CustomerID: trip.CustomerID.String(),
		Status:     trip.Status,
		Bill:       trip.Bill,
		Rating:     trip.CustomerRating,
		OccurredAt: at,
	}
	if trip.DriverID.Valid {
		ev.DriverID = trip.DriverID.UUID.String()
	}
	if trip.CabID.Valid {
		ev.CabID = trip.CabID.UUID.String()
	}
	return ev
}
