package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.Equal(t, 30*time.Second, cfg.GracePeriod)
	assert.Equal(t, time.Hour, cfg.JanitorInterval)
	assert.Equal(t, 6*time.Hour, cfg.StartedTTL)
	assert.Equal(t, 2*time.Hour, cfg.LobbyTTL)
	assert.Equal(t, 1024, cfg.EventQueueSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GRACE_PERIOD_SECONDS", "10")
	t.Setenv("JANITOR_INTERVAL_MINUTES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 10*time.Second, cfg.GracePeriod)
	assert.Equal(t, 5*time.Minute, cfg.JanitorInterval)
}

func TestValidate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	cfg.GracePeriod = 0
	assert.Error(t, cfg.Validate())
}
