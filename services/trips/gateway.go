package trips

import (
	"context"

	"github.com/piresc/nebengcab/internal/pkg/models"
)

// TripGW defines the interface for outbound trip events
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nebengcab/services/trips TripGW
type TripGW interface {
	PublishTripEvent(ctx context.Context, subject string, event models.TripEvent) error
}
