package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengcab/internal/pkg/constants"
	"github.com/piresc/nebengcab/internal/pkg/logger"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuditLogger_Handle(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	audit := NewAuditLogger(logger.NewFromCore(core))

	rating := 5
	trip := &models.Trip{
		ID:             uuid.New(),
		CustomerID:     uuid.New(),
		DriverID:       uuid.NullUUID{UUID: uuid.New(), Valid: true},
		Status:         models.TripStatusCompleted,
		Bill:           150,
		CustomerRating: &rating,
	}
	data, err := json.Marshal(models.NewTripEvent(constants.SubjectTripRated, trip, time.Now().UTC()))
	require.NoError(t, err)

	require.NoError(t, audit.Handle(data))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, constants.SubjectTripRated, fields["event"])
	assert.Equal(t, trip.ID.String(), fields["trip_id"])
	assert.Equal(t, trip.DriverID.UUID.String(), fields["driver_id"])
	assert.Equal(t, 150.0, fields["bill"])
	assert.Equal(t, int64(5), fields["rating"])
	assert.NotContains(t, fields, "cab_id")
}

func TestAuditLogger_HandleMalformed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	audit := NewAuditLogger(logger.NewFromCore(core))

	err := audit.Handle([]byte("{not json"))

	assert.Error(t, err)
	assert.Equal(t, 0, logs.Len())
}
