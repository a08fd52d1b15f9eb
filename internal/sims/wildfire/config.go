package wildfire

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// TerrainParams shapes the procedural terrain used when no masks are given.
type TerrainParams struct {
	NoiseScale float64 `json:"noise_scale"`
	FuelCover  float64 `json:"fuel_cover"`
	Relief     float64 `json:"relief"`
}

// Config controls the wildfire simulation.
type Config struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"`

	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	Moisture      float64 `json:"moisture"`
	TickMS        int     `json:"tick_ms"`

	FuelMask      string `json:"fuel_mask"`
	ElevationMask string `json:"elevation_mask"`
	BaseImage     string `json:"base_image"`

	Terrain TerrainParams `json:"terrain"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    256,
		Height:   256,
		Seed:     1337,
		Moisture: 10,
		TickMS:   150,
		Terrain: TerrainParams{
			NoiseScale: 0.02,
			FuelCover:  0.7,
			Relief:     1,
		},
	}
}

// Wind returns the configured wind vector.
func (c Config) Wind() Wind { return WindFromDegrees(c.WindSpeed, c.WindDirection) }

// StepInterval returns the configured cadence of the simulation clock.
func (c Config) StepInterval() time.Duration {
	if c.TickMS <= 0 {
		return 150 * time.Millisecond
	}
	return time.Duration(c.TickMS) * time.Millisecond
}

// UsesMasks reports whether terrain comes from mask files.
func (c Config) UsesMasks() bool { return c.FuelMask != "" || c.ElevationMask != "" }

// LoadConfig reads a JSON file over the defaults. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.normalize()
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.ApplyMap(cfg)
	return c
}

// ApplyMap overrides fields named in cfg. Values that fail to parse or fall
// outside their domain are ignored.
func (c *Config) ApplyMap(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["wind_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.WindSpeed = parsed
		}
	}
	if v, ok := cfg["wind_direction"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.WindDirection = parsed
		}
	}
	if v, ok := cfg["moisture"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Moisture = parsed
		}
	}
	if v, ok := cfg["tick_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TickMS = parsed
		}
	}
	if v, ok := cfg["fuel_mask"]; ok {
		c.FuelMask = v
	}
	if v, ok := cfg["elevation_mask"]; ok {
		c.ElevationMask = v
	}
	if v, ok := cfg["base_image"]; ok {
		c.BaseImage = v
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Terrain.NoiseScale = parsed
		}
	}
	if v, ok := cfg["fuel_cover"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Terrain.FuelCover = parsed
		}
	}
	if v, ok := cfg["relief"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Terrain.Relief = parsed
		}
	}
	c.normalize()
}

func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.WindSpeed < 0 {
		c.WindSpeed = 0
	}
	if c.TickMS <= 0 {
		c.TickMS = def.TickMS
	}
	if c.Terrain.NoiseScale <= 0 {
		c.Terrain.NoiseScale = def.Terrain.NoiseScale
	}
	if c.Terrain.FuelCover < 0 {
		c.Terrain.FuelCover = 0
	}
	if c.Terrain.FuelCover > 1 {
		c.Terrain.FuelCover = 1
	}
	if c.Terrain.Relief < 0 {
		c.Terrain.Relief = 0
	}
}
