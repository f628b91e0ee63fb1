package cabs

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/models"
)

// CabUC defines the interface for cab registry business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nebengcab/services/cabs CabUC
type CabUC interface {
	RegisterCab(ctx context.Context, actor models.Actor, req *models.RegisterCabRequest) (*models.Cab, error)
	GetCab(ctx context.Context, id uuid.UUID) (*models.Cab, error)
	ListCabs(ctx context.Context, filter models.CabFilter) ([]*models.Cab, error)
	UpdateCab(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.UpdateCabRequest) (*models.Cab, error)
	DeleteCab(ctx context.Context, actor models.Actor, id uuid.UUID) error
}
