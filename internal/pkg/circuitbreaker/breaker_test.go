package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/nebengcab/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var errBroker = errors.New("broker down")

func newTestBreaker(threshold int) (*CircuitBreaker, *time.Time, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	cb := New(Config{Name: "broker", FailureThreshold: threshold, Timeout: 10 * time.Second}, logger.NewFromCore(core))

	clock := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	cb.now = func() time.Time { return clock }
	return cb, &clock, logs
}

func fail(context.Context) error    { return errBroker }
func succeed(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _, logs := newTestBreaker(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(ctx, fail), errBroker)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)

	entries := logs.FilterMessage("Circuit breaker state changed").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "OPEN", entries[0].ContextMap()["to"])
	}
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb, _, _ := newTestBreaker(2)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	assert.NoError(t, cb.Execute(ctx, succeed))
	_ = cb.Execute(ctx, fail)

	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenProbe(t *testing.T) {
	tests := []struct {
		name      string
		probe     func(context.Context) error
		wantState State
	}{
		{"probe succeeds", succeed, StateClosed},
		{"probe fails", fail, StateOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, clock, _ := newTestBreaker(1)
			ctx := context.Background()

			_ = cb.Execute(ctx, fail)
			assert.Equal(t, StateOpen, cb.State())

			*clock = clock.Add(11 * time.Second)
			_ = cb.Execute(ctx, tt.probe)

			assert.Equal(t, tt.wantState, cb.State())
		})
	}
}

func TestCircuitBreaker_SingleProbeWhileHalfOpen(t *testing.T) {
	cb, clock, _ := newTestBreaker(1)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	*clock = clock.Add(11 * time.Second)

	err := cb.Execute(ctx, func(ctx context.Context) error {
		assert.Equal(t, StateHalfOpen, cb.State())
		assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrOpen)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "HALF_OPEN", StateHalfOpen.String())
	assert.Equal(t, "UNKNOWN", State(9).String())
}
