package wildfire

import (
	"image"
	"time"

	"wildfire-ca/internal/core"
	randcore "wildfire-ca/pkg/core"
)

// Backdropper is implemented by mask sources that carry a picture of the
// terrain to draw beneath the fire.
type Backdropper interface {
	Backdrop() image.Image
}

// Simulation adapts an Automaton to the core.Sim contract the front ends drive
// and exposes its weather inputs as adjustable parameters.
type Simulation struct {
	cfg      Config
	fire     *Automaton
	rng      *randcore.RNG
	backdrop image.Image
}

var (
	_ core.Sim                       = (*Simulation)(nil)
	_ core.Igniter                   = (*Simulation)(nil)
	_ core.Activity                  = (*Simulation)(nil)
	_ core.ParameterProvider         = (*Simulation)(nil)
	_ core.ParameterControlsProvider = (*Simulation)(nil)
	_ core.FloatParameterSetter      = (*Simulation)(nil)
	_ core.IntParameterSetter        = (*Simulation)(nil)
)

// NewSimulation builds the terrain from src and prepares an unburned grid.
func NewSimulation(cfg Config, src MaskSource) (*Simulation, error) {
	terrain, err := BuildTerrain(src)
	if err != nil {
		return nil, err
	}
	cfg.normalize()
	size := terrain.Size()
	cfg.Width, cfg.Height = size.W, size.H

	rng := randcore.NewRNG(cfg.Seed)
	s := &Simulation{
		cfg:  cfg,
		fire: New(terrain, rng),
		rng:  rng,
	}
	if b, ok := src.(Backdropper); ok {
		s.backdrop = b.Backdrop()
	}
	s.applyWeather()
	return s, nil
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return s.fire.Size() }

// Cells exposes the current cell states.
func (s *Simulation) Cells() []uint8 { return s.fire.Cells() }

// Automaton exposes the underlying fire automaton.
func (s *Simulation) Automaton() *Automaton { return s.fire }

// Terrain returns the terrain model.
func (s *Simulation) Terrain() *Terrain { return s.fire.Terrain() }

// Backdrop returns the base terrain picture, or nil when none was supplied.
func (s *Simulation) Backdrop() image.Image { return s.backdrop }

// Config returns the current configuration including weather changes.
func (s *Simulation) Config() Config { return s.cfg }

// StepInterval returns the cadence the drivers should step at.
func (s *Simulation) StepInterval() time.Duration { return s.cfg.StepInterval() }

// Reset rebuilds the grid from the terrain. A non-zero seed replaces the
// random stream; zero replays the configured seed.
func (s *Simulation) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.rng.Seed(effective)
	s.fire.Reset()
}

// Step advances the fire one tick.
func (s *Simulation) Step() { s.fire.Step() }

// Ignite starts a fire at (x, y).
func (s *Simulation) Ignite(x, y int) error { return s.fire.Ignite(x, y) }

// Active reports whether a fire is still in progress.
func (s *Simulation) Active() bool { return s.fire.Active() && !s.fire.Done() }

func (s *Simulation) applyWeather() {
	s.fire.SetWind(s.cfg.Wind())
	s.fire.SetMoisture(s.cfg.Moisture)
}
