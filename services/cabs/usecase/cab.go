package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/apperror"
	"github.com/piresc/nebengcab/internal/pkg/models"
	nrpkg "github.com/piresc/nebengcab/internal/pkg/newrelic"
	"github.com/piresc/nebengcab/services/cabs"
)

type cabUC struct {
	cfg     *models.Config
	cabRepo cabs.CabRepo
	now     func() time.Time
}

// NewCabUC creates a new cab use case
func NewCabUC(
	cfg *models.Config,
	cabRepo cabs.CabRepo,
) cabs.CabUC {
	return &cabUC{
		cfg:     cfg,
		cabRepo: cabRepo,
		now:     time.Now,
	}
}

// RegisterCab adds a cab. Drivers register their own cab; admins may name
// any driver or leave the cab unowned.
func (uc *cabUC) RegisterCab(ctx context.Context, actor models.Actor, req *models.RegisterCabRequest) (*models.Cab, error) {
	defer nrpkg.StartSegment(ctx, "Cabs.RegisterCab").End()

	var owner uuid.NullUUID
	switch actor.Role {
	case models.RoleDriver:
		if req.DriverID != nil && *req.DriverID != actor.UserID {
			return nil, apperror.Forbidden("drivers can only register their own cab")
		}
		owner = uuid.NullUUID{UUID: actor.UserID, Valid: true}
	case models.RoleAdmin:
		if req.DriverID != nil {
			owner = uuid.NullUUID{UUID: *req.DriverID, Valid: true}
		}
	default:
		return nil, apperror.Forbidden("only drivers and admins can register cabs")
	}

	carType := strings.TrimSpace(req.CarType)
	carNumber := strings.TrimSpace(req.CarNumber)
	if carType == "" {
		return nil, apperror.Validation("car_type is required")
	}
	if carNumber == "" {
		return nil, apperror.Validation("car_number is required")
	}
	if req.PerKmRate <= 0 {
		return nil, apperror.Validation("per_km_rate must be positive")
	}

	if owner.Valid {
		exists, err := uc.cabRepo.DriverExists(ctx, owner.UUID)
		if err != nil {
			return nil, fmt.Errorf("register cab: %w", err)
		}
		if !exists {
			return nil, apperror.NotFound("driver %s not found", owner.UUID)
		}
	}

	now := uc.now().UTC()
	cab := &models.Cab{
		ID:        uuid.New(),
		DriverID:  owner,
		CarType:   carType,
		CarNumber: carNumber,
		PerKmRate: req.PerKmRate,
		Available: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.cabRepo.CreateCab(ctx, cab); err != nil {
		return nil, fmt.Errorf("register cab: %w", err)
	}
	return cab, nil
}

// GetCab returns a cab by id
func (uc *cabUC) GetCab(ctx context.Context, id uuid.UUID) (*models.Cab, error) {
	defer nrpkg.StartSegment(ctx, "Cabs.GetCab").End()

	cab, err := uc.cabRepo.GetCab(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cab %s: %w", id, err)
	}
	return cab, nil
}

// ListCabs lists cabs, optionally by car type and availability
func (uc *cabUC) ListCabs(ctx context.Context, filter models.CabFilter) ([]*models.Cab, error) {
	defer nrpkg.StartSegment(ctx, "Cabs.ListCabs").End()

	list, err := uc.cabRepo.ListCabs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list cabs: %w", err)
	}
	return list, nil
}

// UpdateCab applies the non-nil fields of req. Availability is not editable,
// and a cab on a trip keeps the rate the trip was confirmed at.
func (uc *cabUC) UpdateCab(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.UpdateCabRequest) (*models.Cab, error) {
	defer nrpkg.StartSegment(ctx, "Cabs.UpdateCab").End()

	cab, err := uc.ownedCab(ctx, actor, id)
	if err != nil {
		return nil, fmt.Errorf("update cab %s: %w", id, err)
	}
	if !cab.Available {
		return nil, apperror.InvalidState("cab %s is on a trip", id)
	}

	if req.CarType != nil {
		cab.CarType = strings.TrimSpace(*req.CarType)
		if cab.CarType == "" {
			return nil, apperror.Validation("car_type must not be empty")
		}
	}
	if req.CarNumber != nil {
		cab.CarNumber = strings.TrimSpace(*req.CarNumber)
		if cab.CarNumber == "" {
			return nil, apperror.Validation("car_number must not be empty")
		}
	}
	if req.PerKmRate != nil {
		if *req.PerKmRate <= 0 {
			return nil, apperror.Validation("per_km_rate must be positive")
		}
		cab.PerKmRate = *req.PerKmRate
	}
	cab.UpdatedAt = uc.now().UTC()

	if err := uc.cabRepo.UpdateCab(ctx, cab); err != nil {
		return nil, fmt.Errorf("update cab %s: %w", id, err)
	}
	return cab, nil
}

// DeleteCab removes a cab that is not on a trip
func (uc *cabUC) DeleteCab(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	defer nrpkg.StartSegment(ctx, "Cabs.DeleteCab").End()

	cab, err := uc.ownedCab(ctx, actor, id)
	if err != nil {
		return fmt.Errorf("delete cab %s: %w", id, err)
	}
	if !cab.Available {
		return apperror.InvalidState("cab %s is on a trip", id)
	}

	if err := uc.cabRepo.DeleteCab(ctx, id); err != nil {
		return fmt.Errorf("delete cab %s: %w", id, err)
	}
	return nil
}

// ownedCab loads a cab the actor may modify: its owning driver or an admin
func (uc *cabUC) ownedCab(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Cab, error) {
	cab, err := uc.cabRepo.GetCab(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return cab, nil
	}
	if actor.Role == models.RoleDriver && cab.DriverID.Valid && cab.DriverID.UUID == actor.UserID {
		return cab, nil
	}
	return nil, apperror.Forbidden("cab %s belongs to another driver", id)
}
