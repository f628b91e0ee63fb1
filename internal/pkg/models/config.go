package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Broker    BrokerConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Trips     TripsConfig
	Logger    LoggerConfig
	NewRelic  NewRelicConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver         string
	Host           string
	Port           int
	Username       string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       int
	IdleConns      int
	MigrationsPath string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// BrokerConfig selects the message broker used for trip events
type BrokerConfig struct {
	Type string // "nats" or "nsq"
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains nsqd connection configuration
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// AuthConfig contains account management configuration
type AuthConfig struct {
	ResetTokenTTL     int // in minutes
	BootstrapAdmin    string
	BootstrapEmail    string
	BootstrapPassword string
}

// RateLimitConfig contains limits for unauthenticated endpoints
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  int // in seconds
}

// TripsConfig contains trip service specific configuration
type TripsConfig struct {
	GeohashPrecision uint // characters used for nearby open trip search
	ListLimit        int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	ForwardLogs bool
}
