package models

import (
	"time"

	"github.com/google/uuid"
)

// Role tags a user record as admin, customer or driver
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleDriver:
		return true
	}
	return false
}

// User represents any account in the system. Driver is set only for RoleDriver.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	FullName     string    `json:"full_name" db:"full_name"`
	Mobile       string    `json:"mobile" db:"mobile"`
	Address      string    `json:"address" db:"address"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	Driver       *Driver   `json:"driver,omitempty" db:"-"`
}

// Driver holds the driver specific part of a user record
type Driver struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	LicenseNo    string    `json:"license_no" db:"license_no"`
	Available    bool      `json:"available" db:"available"`
	Verified     bool      `json:"verified" db:"verified"`
	Rating       float64   `json:"rating" db:"rating"`
	TotalRatings int       `json:"total_ratings" db:"total_ratings"`
}

// Actor is the authenticated principal performing an operation
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	Role      Role   `json:"role" validate:"omitempty,oneof=admin customer driver"`
	FullName  string `json:"full_name" validate:"max=100"`
	Mobile    string `json:"mobile" validate:"max=20"`
	Address   string `json:"address" validate:"max=255"`
	LicenseNo string `json:"license_no" validate:"max=50"`
}

// LoginRequest is the payload for username/password login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      Role   `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

// UpdateProfileRequest carries the mutable profile fields; nil fields are left untouched
type UpdateProfileRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Mobile   *string `json:"mobile" validate:"omitempty,max=20"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
}

// ForgotPasswordRequest starts a password reset
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest completes a password reset
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// UserFilter narrows user listings
type UserFilter struct {
	Role   Role
	Offset int
	Limit  int
}
