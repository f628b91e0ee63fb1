package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg := LoadFromEnv()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, "nats", cfg.Broker.Type)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "nebengcab", cfg.JWT.Issuer)
	assert.Equal(t, uint(6), cfg.Trips.GeohashPrecision)
	assert.Equal(t, 15, cfg.Auth.ResetTokenTTL)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.False(t, cfg.NewRelic.Enabled)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9990")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION", "15")
	t.Setenv("BROKER_TYPE", "nsq")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("TRIPS_GEOHASH_PRECISION", "5")

	cfg := LoadFromEnv()

	assert.Equal(t, 9990, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 15, cfg.JWT.Expiration)
	assert.Equal(t, "nsq", cfg.Broker.Type)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, uint(5), cfg.Trips.GeohashPrecision)
}

func TestInitConfig_LoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cab.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_NAME=cab-test\nREDIS_PORT=6380\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv never overrides variables that are already set, so make sure
	// these are registered with t.Setenv for cleanup and start empty.
	t.Setenv("APP_NAME", "")
	t.Setenv("REDIS_PORT", "")
	os.Unsetenv("APP_NAME")
	os.Unsetenv("REDIS_PORT")

	cfg := InitConfig(path)

	assert.Equal(t, "cab-test", cfg.App.Name)
	assert.Equal(t, 6380, cfg.Redis.Port)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CAB_TEST_KEY", "value")

	assert.Equal(t, "value", GetEnv("CAB_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CAB_TEST_MISSING", "fallback"))
}
