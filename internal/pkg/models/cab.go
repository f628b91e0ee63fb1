package models

import (
	"time"

	"github.com/google/uuid"
)

// Cab represents a vehicle. DriverID is the owning driver, if any.
type Cab struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	DriverID  uuid.NullUUID `json:"driver_id" db:"driver_id"`
	CarType   string        `json:"car_type" db:"car_type"`
	CarNumber string        `json:"car_number" db:"car_number"`
	PerKmRate float64       `json:"per_km_rate" db:"per_km_rate"`
	Available bool          `json:"available" db:"available"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// RegisterCabRequest is the payload for registering a cab
type RegisterCabRequest struct {
	DriverID  *uuid.UUID `json:"driver_id"`
	CarType   string     `json:"car_type" validate:"required,max=30"`
	CarNumber string     `json:"car_number" validate:"required,max=20"`
	PerKmRate float64    `json:"per_km_rate" validate:"required,gt=0"`
}

// UpdateCabRequest carries mutable cab fields; nil fields are left untouched
type UpdateCabRequest struct {
	CarType   *string  `json:"car_type" validate:"omitempty,max=30"`
	CarNumber *string  `json:"car_number" validate:"omitempty,max=20"`
	PerKmRate *float64 `json:"per_km_rate" validate:"omitempty,gt=0"`
}

// CabFilter narrows cab listings
type CabFilter struct {
	CarType       string
	AvailableOnly bool
}
