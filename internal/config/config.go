package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the CLI configuration, read from the environment.
type Config struct {
	Env          string  // PLACEBED_ENV: "dev" switches to console logs
	LogLevel     string  // PLACEBED_LOG_LEVEL
	EntitiesFile string  // PLACEBED_ENTITIES: default entity JSON file
	RadiusKm     float64 // PLACEBED_RADIUS_KM: default radius for nearby
	DumpMetrics  bool    // PLACEBED_METRICS: print metrics on exit
}

// Load reads an optional .env file and then the environment. It reports
// whether a .env file was found so the caller can log it.
func Load() (Config, bool) {
	loaded := godotenv.Load() == nil
	return FromEnv(), loaded
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		Env:          env("PLACEBED_ENV", "prod"),
		LogLevel:     env("PLACEBED_LOG_LEVEL", "info"),
		EntitiesFile: env("PLACEBED_ENTITIES", "entities.json"),
		RadiusKm:     atof("PLACEBED_RADIUS_KM", 25),
		DumpMetrics:  atob("PLACEBED_METRICS", false),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atof(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return def
}

func atob(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
