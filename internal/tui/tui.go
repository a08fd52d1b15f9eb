package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/wildfire"
)

// frameInterval is the redraw cadence; the fire itself advances on the
// simulation's step interval.
const frameInterval = 33 * time.Millisecond

// Viewer drives a simulation inside a tcell screen.
type Viewer struct {
	screen tcell.Screen
	sim    *wildfire.Simulation
	logger *slog.Logger
	clock  *core.FixedStep

	seed     int64
	paused   bool
	controls map[string]core.ParameterControl
	view     viewport
}

// NewViewer wraps an initialised screen.
func NewViewer(screen tcell.Screen, sim *wildfire.Simulation, seed int64, logger *slog.Logger) *Viewer {
	v := &Viewer{
		screen:   screen,
		sim:      sim,
		logger:   logger,
		clock:    core.NewFixedStep(sim.StepInterval()),
		seed:     seed,
		controls: map[string]core.ParameterControl{},
	}
	for _, c := range sim.ParameterControls() {
		v.controls[c.Key] = c
	}
	v.resize()
	return v
}

// Paused reports whether automatic stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

func (v *Viewer) resize() {
	cols, rows := v.screen.Size()
	v.view = newViewport(v.sim.Size(), cols, rows-1)
}

// Run polls input on a goroutine and redraws on a ticker until the user quits
// or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	v.screen.EnableMouse()
	defer v.screen.DisableMouse()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go pumpEvents(v.screen.PollEvent, events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			v.Tick()
			v.Draw()
		}
	}
}

// pumpEvents forwards polled events until poll returns nil or quit is closed.
// events is closed on exit.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// Tick advances the fire when the step clock allows it.
func (v *Viewer) Tick() {
	v.clock.SetInterval(v.sim.StepInterval())
	if v.paused || !v.sim.Active() {
		return
	}
	if v.clock.ShouldStep() {
		v.sim.Step()
		if !v.sim.Active() {
			stats := v.sim.Automaton().Stats()
			v.logger.Info("fire out", "ticks", v.sim.Automaton().Ticks(), "burned", stats.BurnedFraction())
		}
	}
}

// HandleEvent applies one input event. It returns false when the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.resize()
	case *tcell.EventKey:
		return v.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			col, row := ev.Position()
			v.Click(col, row)
		}
	}
	return true
}

func (v *Viewer) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.nudge("wind_speed", 1)
	case tcell.KeyDown:
		v.nudge("wind_speed", -1)
	case tcell.KeyRight:
		v.nudge("wind_direction", 1)
	case tcell.KeyLeft:
		v.nudge("wind_direction", -1)
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.sim.Step()
		case 'r':
			v.sim.Reset(v.seed)
			v.clock.Restart()
			v.logger.Info("reset", "seed", v.seed)
		case ']':
			v.nudge("moisture", 1)
		case '[':
			v.nudge("moisture", -1)
		}
	}
	return true
}

func (v *Viewer) nudge(key string, dir int) {
	core.Nudge(v.sim, v.sim, v.controls[key], dir)
}

// Click ignites the grid cell under terminal cell (col,row).
func (v *Viewer) Click(col, row int) {
	x, y, ok := v.view.cellAt(col, row)
	if !ok {
		return
	}
	wasActive := v.sim.Active()
	if err := v.sim.Ignite(x, y); err != nil {
		v.logger.Debug("ignition rejected", "x", x, "y", y, "err", err)
		return
	}
	if !wasActive {
		v.clock.Restart()
	}
	v.logger.Info("ignited", "x", x, "y", y)
}

// Draw paints the grid and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	for row, line := range frame(v.sim.Cells(), v.sim.Terrain().Elevation, v.view) {
		for col, g := range line {
			v.screen.SetContent(col, row, g.r, nil, g.style)
		}
	}
	cols, rows := v.screen.Size()
	statusRow := rows - 1
	text := []rune(statusText(v.sim, v.paused))
	for col := 0; col < cols; col++ {
		r := ' '
		if col < len(text) {
			r = text[col]
		}
		v.screen.SetContent(col, statusRow, r, nil, styleStatus)
	}
	v.screen.Show()
}
