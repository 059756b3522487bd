package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds party-server configuration.
type Config struct {
	AppEnv   string // APP_ENV
	AppHost  string // APP_HOST
	HTTPPort string // PORT
	LogLevel string // LOG_LEVEL

	// WebSocket
	WSReadBufferSize  int
	WSWriteBufferSize int

	// Presence
	GracePeriod time.Duration // GRACE_PERIOD_SECONDS

	// Janitor
	JanitorInterval time.Duration // JANITOR_INTERVAL_MINUTES
	StartedTTL      time.Duration // STARTED_TTL_HOURS
	LobbyTTL        time.Duration // LOBBY_TTL_HOURS

	// Event loop queue depth
	EventQueueSize int
}

// Load loads config from environment (.env if present).
func Load() (*Config, error) {
	_ = godotenv.Load()

	readBuf, _ := strconv.Atoi(getEnv("WS_READ_BUFFER_SIZE", "4096"))
	writeBuf, _ := strconv.Atoi(getEnv("WS_WRITE_BUFFER_SIZE", "4096"))
	graceSecs, _ := strconv.Atoi(getEnv("GRACE_PERIOD_SECONDS", "30"))
	sweepMins, _ := strconv.Atoi(getEnv("JANITOR_INTERVAL_MINUTES", "60"))
	startedTTL, _ := strconv.Atoi(getEnv("STARTED_TTL_HOURS", "6"))
	lobbyTTL, _ := strconv.Atoi(getEnv("LOBBY_TTL_HOURS", "2"))
	queueSize, _ := strconv.Atoi(getEnv("EVENT_QUEUE_SIZE", "1024"))

	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		AppHost:           getEnv("APP_HOST", "0.0.0.0"),
		HTTPPort:          getEnv("PORT", "3000"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		WSReadBufferSize:  readBuf,
		WSWriteBufferSize: writeBuf,
		GracePeriod:       time.Duration(graceSecs) * time.Second,
		JanitorInterval:   time.Duration(sweepMins) * time.Minute,
		StartedTTL:        time.Duration(startedTTL) * time.Hour,
		LobbyTTL:          time.Duration(lobbyTTL) * time.Hour,
		EventQueueSize:    queueSize,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return errors.New("PORT cannot be empty")
	}
	if c.GracePeriod <= 0 {
		return errors.New("GRACE_PERIOD_SECONDS must be positive")
	}
	if c.JanitorInterval <= 0 {
		return errors.New("JANITOR_INTERVAL_MINUTES must be positive")
	}
	if c.StartedTTL <= 0 || c.LobbyTTL <= 0 {
		return errors.New("session TTLs must be positive")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.HTTPPort
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
