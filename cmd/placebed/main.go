// Command placebed normalizes locations and queries entity collections
// from the command line.
//
// Usage:
//
//	placebed normalize "תל אביב" "" "ישראל"
//	placebed search -file users.json -city "tel aviv"
//	placebed nearby -file users.json -lat 32.08 -lng 34.78 -radius 10
//	placebed validate
//
// Entities are read from a JSON array; see placebed.Entity for the shape.
// Configuration comes from the environment or a .env file:
// PLACEBED_ENV, PLACEBED_LOG_LEVEL, PLACEBED_ENTITIES, PLACEBED_RADIUS_KM
// and PLACEBED_METRICS.
package main

import (
	"os"

	"github.com/DavidMandiel/placebed/internal/config"
	"github.com/DavidMandiel/placebed/internal/observability"
)

func main() {
	cfg, dotenv := config.Load()
	logger := observability.NewLogger(cfg.Env, cfg.LogLevel)
	if !dotenv {
		logger.Debug().Msg("no .env file found, using environment variables")
	}

	a := &app{
		cfg:     cfg,
		log:     logger,
		metrics: observability.NewMetrics(),
		out:     os.Stdout,
	}
	err := a.run(os.Args[1:])

	if cfg.DumpMetrics {
		if mErr := a.metrics.WriteText(os.Stderr); mErr != nil {
			logger.Warn().Err(mErr).Msg("dumping metrics")
		}
	}
	if err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
