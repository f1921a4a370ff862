package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PLACEBED_ENV", "PLACEBED_LOG_LEVEL", "PLACEBED_ENTITIES", "PLACEBED_RADIUS_KM", "PLACEBED_METRICS"} {
		t.Setenv(k, "")
	}
	assert.Equal(t, Config{
		Env:          "prod",
		LogLevel:     "info",
		EntitiesFile: "entities.json",
		RadiusKm:     25,
		DumpMetrics:  false,
	}, FromEnv())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PLACEBED_ENV", "dev")
	t.Setenv("PLACEBED_LOG_LEVEL", "debug")
	t.Setenv("PLACEBED_ENTITIES", "/tmp/users.json")
	t.Setenv("PLACEBED_RADIUS_KM", "7.5")
	t.Setenv("PLACEBED_METRICS", "true")

	assert.Equal(t, Config{
		Env:          "dev",
		LogLevel:     "debug",
		EntitiesFile: "/tmp/users.json",
		RadiusKm:     7.5,
		DumpMetrics:  true,
	}, FromEnv())
}

func TestFromEnvBadNumbers(t *testing.T) {
	tests := []struct {
		name, radius, metrics string
	}{
		{"not numbers", "far", "maybe"},
		{"negative radius", "-3", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PLACEBED_RADIUS_KM", tt.radius)
			t.Setenv("PLACEBED_METRICS", tt.metrics)
			cfg := FromEnv()
			assert.Equal(t, 25.0, cfg.RadiusKm)
			assert.False(t, cfg.DumpMetrics)
		})
	}
}
