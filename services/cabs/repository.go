package cabs

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/models"
)

// CabRepo defines the interface for cab data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nebengcab/services/cabs CabRepo
type CabRepo interface {
	CreateCab(ctx context.Context, cab *models.Cab) error
	GetCab(ctx context.Context, id uuid.UUID) (*models.Cab, error)
	ListCabs(ctx context.Context, filter models.CabFilter) ([]*models.Cab, error)
	UpdateCab(ctx context.Context, cab *models.Cab) error
	// DeleteCab removes an available cab. A cab on a trip is not deleted.
	DeleteCab(ctx context.Context, id uuid.UUID) error
	DriverExists(ctx context.Context, driverID uuid.UUID) (bool, error)
}
