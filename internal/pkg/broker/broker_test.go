package broker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/nebengcab/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerType(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", TypeNATS, false},
		{"nats", TypeNATS, false},
		{" NSQ ", TypeNSQ, false},
		{"kafka", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := brokerType(&models.Config{Broker: models.BrokerConfig{Type: tt.in}})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPublisher_UnknownType(t *testing.T) {
	pub, err := NewPublisher(&models.Config{Broker: models.BrokerConfig{Type: "kafka"}}, "test")

	assert.Nil(t, pub)
	assert.ErrorContains(t, err, `unknown broker type "kafka"`)
}

func TestNewPublisher_NSQUnreachable(t *testing.T) {
	cfg := &models.Config{
		Broker: models.BrokerConfig{Type: TypeNSQ},
		NSQ:    models.NSQConfig{Address: "127.0.0.1:1"},
	}

	pub, err := NewPublisher(cfg, "test")

	assert.Nil(t, pub)
	assert.ErrorContains(t, err, "failed to ping NSQ daemon")
}

func TestSubscribe_NATSUnreachable(t *testing.T) {
	cfg := &models.Config{NATS: models.NATSConfig{URL: "nats://127.0.0.1:1"}}

	sub, err := Subscribe(cfg, "test", "audit", []string{"trip.created"}, func([]byte) error { return nil })

	assert.Nil(t, sub)
	assert.ErrorContains(t, err, "failed to connect to NATS server")
}

func TestSubscription_CloseReturnsFirstError(t *testing.T) {
	calls := 0
	first := errors.New("first")
	sub := &Subscription{closers: []func() error{
		func() error { calls++; return first },
		func() error { calls++; return errors.New("second") },
		func() error { calls++; return nil },
	}}

	assert.Equal(t, first, sub.Close())
	assert.Equal(t, 3, calls)
}

type stubPublisher struct {
	calls int
	err   error
}

func (s *stubPublisher) Publish(string, []byte) error { s.calls++; return s.err }
func (s *stubPublisher) Ping(context.Context) error   { return nil }
func (s *stubPublisher) Close() error                 { return nil }

func TestGuard_StopsPublishingWhileOpen(t *testing.T) {
	stub := &stubPublisher{err: errors.New("nats: connection closed")}
	breaker := circuitbreaker.New(circuitbreaker.Config{Name: "broker", FailureThreshold: 2, Timeout: time.Minute}, nil)
	pub := Guard(stub, breaker)

	assert.Error(t, pub.Publish("trip.created", []byte("{}")))
	assert.Error(t, pub.Publish("trip.created", []byte("{}")))
	assert.ErrorIs(t, pub.Publish("trip.created", []byte("{}")), circuitbreaker.ErrOpen)

	assert.Equal(t, 2, stub.calls)
	assert.NoError(t, pub.Ping(context.Background()))
}
