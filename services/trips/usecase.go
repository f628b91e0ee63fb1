package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/models"
)

// TripUC defines the interface for trip business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nebengcab/services/trips TripUC
type TripUC interface {
	CreateTrip(ctx context.Context, actor models.Actor, req *models.CreateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, actor models.Actor, tripID uuid.UUID) (*models.Trip, error)
	ListTrips(ctx context.Context, actor models.Actor) ([]*models.Trip, error)
	ListOpenTrips(ctx context.Context, actor models.Actor, query models.OpenTripQuery) ([]*models.Trip, error)
	AssignTrip(ctx context.Context, actor models.Actor, tripID uuid.UUID, driverID *uuid.UUID) (*models.Trip, error)
	StartTrip(ctx context.Context, actor models.Actor, tripID uuid.UUID) (*models.Trip, error)
	CompleteTrip(ctx context.Context, actor models.Actor, tripID uuid.UUID, distanceInKm float64) (*models.Trip, error)
	CancelTrip(ctx context.Context, actor models.Actor, tripID uuid.UUID) (*models.Trip, error)
	RateTrip(ctx context.Context, actor models.Actor, tripID uuid.UUID, rating int) (*models.Trip, error)
}
