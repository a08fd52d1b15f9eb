package app

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"wildfire-ca/internal/masks"
	"wildfire-ca/internal/sims/wildfire"
)

// NewLogger returns the text logger the commands write to stderr.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Build resolves the config, loads the terrain and applies the requested
// ignitions. Rejected ignition points are logged and skipped; a terrain
// failure is returned.
func Build(c *Config, logger *slog.Logger) (*wildfire.Simulation, error) {
	cfg, err := c.SimConfig()
	if err != nil {
		return nil, err
	}
	sim, err := wildfire.NewSimulation(cfg, masks.ForConfig(cfg))
	if err != nil {
		return nil, err
	}
	size := sim.Size()
	logger.Info("terrain ready",
		"width", size.W,
		"height", size.H,
		"fuel", sim.Terrain().FuelCount(),
		"masks", cfg.UsesMasks(),
		"seed", cfg.Seed,
	)
	IgniteAll(sim, c.Ignite, logger)
	return sim, nil
}

// IgniteAll lights each point, logging the ones the automaton refuses.
func IgniteAll(sim *wildfire.Simulation, points []Point, logger *slog.Logger) int {
	lit := 0
	for _, p := range points {
		if err := sim.Ignite(p.X, p.Y); err != nil {
			level := slog.LevelWarn
			if errors.Is(err, wildfire.ErrInvalidTarget) {
				level = slog.LevelInfo
			}
			logger.Log(context.Background(), level, "ignition rejected", "x", p.X, "y", p.Y, "err", err)
			continue
		}
		logger.Debug("ignited", "x", p.X, "y", p.Y)
		lit++
	}
	return lit
}
