package nats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		client, err := NewClient("invalid://address", "cab-test")
		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})

	t.Run("nothing listening", func(t *testing.T) {
		client, err := NewClient("nats://127.0.0.1:1", "cab-test")
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestClient_PingWithoutConnection(t *testing.T) {
	client := &Client{}

	assert.Error(t, client.Ping(context.Background()))
	assert.NoError(t, client.Close())
}
