package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENWEATHERMAP_API_KEY", "")
	t.Setenv("NIMBUS_UNITS", "")
	t.Setenv("NIMBUS_BASE_URL", "")
	t.Setenv("NIMBUS_HTTP_TIMEOUT", "")

	cfg := Load()
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "imperial", cfg.Units)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("OPENWEATHERMAP_API_KEY", "secret")
	t.Setenv("NIMBUS_UNITS", "metric")
	t.Setenv("NIMBUS_BASE_URL", "http://localhost:9090")
	t.Setenv("NIMBUS_HTTP_TIMEOUT", "3s")

	cfg := Load()
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "metric", cfg.Units)
	assert.Equal(t, "http://localhost:9090", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
}

func TestLoadBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("NIMBUS_HTTP_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}
