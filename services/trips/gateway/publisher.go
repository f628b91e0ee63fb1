package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/nebengcab/internal/pkg/models"
	nrpkg "github.com/piresc/nebengcab/internal/pkg/newrelic"
	"github.com/piresc/nebengcab/services/trips"
)

// Publisher sends a payload to a subject. Satisfied by the NATS client and the NSQ producer.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// TripGW publishes trip lifecycle events to the configured broker
type TripGW struct {
	publisher Publisher
}

// NewTripGW creates a new trip gateway
func NewTripGW(publisher Publisher) trips.TripGW {
	return &TripGW{
		publisher: publisher,
	}
}

// PublishTripEvent publishes event as JSON on subject
func (g *TripGW) PublishTripEvent(ctx context.Context, subject string, event models.TripEvent) error {
	defer nrpkg.StartSegment(ctx, "TripGW.Publish."+subject).End()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal trip event: %w", err)
	}
	if err := g.publisher.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}
