//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/render"
	"wildfire-ca/internal/sims/wildfire"
	"wildfire-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the wildfire simulation to the ebiten.Game interface.
type Game struct {
	sim     *wildfire.Simulation
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FixedStep
	logger  *slog.Logger

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	controls map[string]core.ParameterControl
}

// New constructs a Game for the provided simulation.
func New(sim *wildfire.Simulation, cfg *Config, logger *slog.Logger) *Game {
	backdrop := render.Backdrop(sim.Terrain(), sim.Backdrop())
	comp := render.NewCompositor(sim.Size(), backdrop, wildfire.Palette())
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(comp),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		clock:    core.NewFixedStep(sim.StepInterval()),
		logger:   logger,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
		controls: map[string]core.ParameterControl{},
	}
	for _, c := range sim.ParameterControls() {
		g.controls[c.Key] = c
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.clock.Restart()
	g.tickOnce = false
	g.logger.Info("reset", "seed", seed)
}

// Update handles per-frame logic and advances the fire on the clock cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.handleWeatherKeys()
	g.handleIgnition()

	size := g.sim.Size()
	g.hud.Update(size.W * g.scale)
	g.overlay.Update()

	g.clock.SetInterval(g.sim.StepInterval())
	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.sim.Active() && g.clock.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

func (g *Game) handleWeatherKeys() {
	nudges := []struct {
		key ebiten.Key
		ctl string
		dir int
	}{
		{ebiten.KeyArrowUp, "wind_speed", 1},
		{ebiten.KeyArrowDown, "wind_speed", -1},
		{ebiten.KeyArrowRight, "wind_direction", 1},
		{ebiten.KeyArrowLeft, "wind_direction", -1},
		{ebiten.KeyBracketRight, "moisture", 1},
		{ebiten.KeyBracketLeft, "moisture", -1},
	}
	for _, n := range nudges {
		if inpututil.IsKeyJustPressed(n.key) {
			core.Nudge(g.sim, g.sim, g.controls[n.ctl], n.dir)
		}
	}
}

func (g *Game) handleIgnition() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p, ok := GridPoint(mx, my, g.scale, g.sim.Size())
	if !ok {
		return
	}
	wasActive := g.sim.Active()
	if err := g.sim.Ignite(p.X, p.Y); err != nil {
		g.logger.Debug("ignition rejected", "x", p.X, "y", p.Y, "err", err)
		return
	}
	if !wasActive {
		g.clock.Restart()
	}
	g.logger.Info("ignited", "x", p.X, "y", p.Y)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
