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

	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Order.PlacementDelay)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.FakeAPI.Seed)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.test")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("SESSION_FILE", "/tmp/portal-session.json")
	t.Setenv("ORDER_PLACEMENT_DELAY", "0s")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("FAKE_API_SEED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.test", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/portal-session.json", cfg.Session.File)
	assert.Equal(t, time.Duration(0), cfg.Order.PlacementDelay)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.FakeAPI.Seed)
}

func TestLoad_RejectsNegativeDelay(t *testing.T) {
	t.Setenv("ORDER_PLACEMENT_DELAY", "-1s")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
