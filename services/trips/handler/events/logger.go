package events

import (
	"encoding/json"
	"fmt"

	"github.com/piresc/nebengcab/internal/pkg/logger"
	"github.com/piresc/nebengcab/internal/pkg/models"
)

// AuditLogger writes every trip event it receives to the log. Its Handle
// method fits both the NATS and the NSQ message handler signatures.
type AuditLogger struct {
	log *logger.ZapLogger
}

// NewAuditLogger creates a trip event audit logger
func NewAuditLogger(log *logger.ZapLogger) *AuditLogger {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &AuditLogger{log: log}
}

// Handle decodes one trip event. Malformed payloads are returned as errors
// so NSQ can requeue them, NATS drops them after logging.
func (a *AuditLogger) Handle(data []byte) error {
	var event models.TripEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to decode trip event: %w", err)
	}

	fields := []logger.Field{
		logger.String("event", event.Event),
		logger.String("trip_id", event.TripID),
		logger.String("customer_id", event.CustomerID),
		logger.String("status", string(event.Status)),
		logger.Time("occurred_at", event.OccurredAt),
	}
	if event.DriverID != "" {
		fields = append(fields, logger.String("driver_id", event.DriverID))
	}
	if event.CabID != "" {
		fields = append(fields, logger.String("cab_id", event.CabID))
	}
	if event.Status == models.TripStatusCompleted {
		fields = append(fields, logger.Float64("bill", event.Bill))
	}
	if event.Rating != nil {
		fields = append(fields, logger.Int("rating", *event.Rating))
	}

	a.log.Info("Trip event", fields...)
	return nil
}
