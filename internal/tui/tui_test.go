package tui

import (
	"image"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/wildfire"
)

type flatSource struct{ w, h int }

func (s flatSource) Masks() (image.Image, image.Image, error) {
	fuel := image.NewGray(image.Rect(0, 0, s.w, s.h))
	for i := range fuel.Pix {
		fuel.Pix[i] = 255
	}
	return fuel, image.NewGray(image.Rect(0, 0, s.w, s.h)), nil
}

func newTestViewer(t *testing.T, w, h, cols, rows int) (*Viewer, *wildfire.Simulation) {
	t.Helper()
	cfg := wildfire.DefaultConfig()
	sim, err := wildfire.NewSimulation(cfg, flatSource{w: w, h: h})
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return NewViewer(screen, sim, 0, slog.New(slog.NewTextHandler(io.Discard, nil))), sim
}

func TestViewportNeverUpscales(t *testing.T) {
	v := newViewport(core.Size{W: 10, H: 6}, 80, 24)
	if v.cols != 10 || v.rows != 6 {
		t.Fatalf("expected 10x6 viewport, got %dx%d", v.cols, v.rows)
	}
	x, y, ok := v.cellAt(3, 4)
	if !ok || x != 3 || y != 4 {
		t.Fatalf("expected identity mapping, got (%d,%d,%v)", x, y, ok)
	}
	if _, _, ok := v.cellAt(10, 0); ok {
		t.Fatal("expected columns past the grid to miss")
	}
}

func TestViewportDownsamples(t *testing.T) {
	v := newViewport(core.Size{W: 100, H: 50}, 20, 10)
	x0, y0, x1, y1 := v.block(1, 2)
	if x0 != 5 || x1 != 10 || y0 != 10 || y1 != 15 {
		t.Fatalf("unexpected block (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
	x, y, _ := v.cellAt(1, 2)
	if x != 7 || y != 12 {
		t.Fatalf("expected block centre (7,12), got (%d,%d)", x, y)
	}
}

func TestSampleBlockPrefersHottestState(t *testing.T) {
	cells := []uint8{
		uint8(wildfire.Fuel), uint8(wildfire.Ash),
		uint8(wildfire.Burning), uint8(wildfire.Smoldering),
	}
	if got := sampleBlock(cells, 2, 0, 0, 2, 2); got != wildfire.Burning {
		t.Fatalf("expected burning, got %s", got)
	}
	if got := sampleBlock(cells, 2, 0, 0, 2, 1); got != wildfire.Ash {
		t.Fatalf("expected ash over fuel, got %s", got)
	}
}

func TestFrameGlyphs(t *testing.T) {
	cells := []uint8{uint8(wildfire.Empty), uint8(wildfire.Fuel), uint8(wildfire.Igniting), uint8(wildfire.Burning)}
	f := frame(cells, nil, newViewport(core.Size{W: 4, H: 1}, 4, 1))
	want := []rune{' ', '.', '*', '#'}
	for i, g := range f[0] {
		if g.r != want[i] {
			t.Fatalf("col %d: expected %q, got %q", i, want[i], g.r)
		}
	}
}

func TestFuelColorFollowsElevation(t *testing.T) {
	lowR, lowG, lowB := fuelColor(0).RGB()
	highR, highG, highB := fuelColor(1).RGB()
	if lowR+lowG+lowB >= highR+highG+highB {
		t.Fatal("expected ridges to be drawn lighter than valleys")
	}
	if fuelColor(-3) != fuelColor(0) || fuelColor(7) != fuelColor(1) {
		t.Fatal("expected elevation to be clamped to [0,1]")
	}
}

func TestPumpEventsStopsOnQuit(t *testing.T) {
	ev := tcell.NewEventResize(80, 24)
	events := make(chan tcell.Event, 2)
	quit := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pumpEvents(func() tcell.Event { return ev }, events, quit)
		close(exited)
	}()

	<-events
	close(quit)
	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("pump kept blocking after quit was closed")
	}
	for range events {
	}
}

func TestPumpEventsClosesOnNilEvent(t *testing.T) {
	events := make(chan tcell.Event, 1)
	pumpEvents(func() tcell.Event { return nil }, events, make(chan struct{}))
	if _, ok := <-events; ok {
		t.Fatal("expected events to be closed")
	}
}

func TestClickIgnitesAndTickAdvances(t *testing.T) {
	v, sim := newTestViewer(t, 12, 8, 40, 20)
	v.Click(5, 4)
	if got := sim.Automaton().At(5, 4); got != wildfire.Igniting {
		t.Fatalf("expected click to ignite (5,4), got %s", got)
	}
	if !sim.Active() {
		t.Fatal("expected simulation to be active")
	}

	v.Click(30, 2)
	if got := sim.Automaton().Stats().Count(wildfire.Igniting); got != 1 {
		t.Fatalf("click past the grid should be ignored, got %d igniting", got)
	}

	v.clock.Now = func() time.Time { return time.Unix(0, 0) }
	v.clock.Restart()
	v.clock.Now = func() time.Time { return time.Unix(10, 0) }
	v.Tick()
	if sim.Automaton().Ticks() != 1 {
		t.Fatalf("expected one step, got %d", sim.Automaton().Ticks())
	}
	v.Draw()
}

func TestKeysControlWeatherAndPause(t *testing.T) {
	v, sim := newTestViewer(t, 12, 8, 40, 20)
	startSpeed := sim.Automaton().Wind().Speed
	v.handleKey(tcell.KeyUp, 0)
	if got := sim.Automaton().Wind().Speed; got != startSpeed+5 {
		t.Fatalf("expected wind speed %.0f, got %.0f", startSpeed+5, got)
	}
	v.handleKey(tcell.KeyLeft, 0)
	if got := sim.Automaton().Wind().Degrees(); got < 344.9 || got > 345.1 {
		t.Fatalf("expected direction to wrap to 345, got %f", got)
	}
	startMoisture := sim.Automaton().Moisture()
	v.handleKey(tcell.KeyRune, ']')
	if got := sim.Automaton().Moisture(); got != startMoisture+5 {
		t.Fatalf("expected moisture %.0f, got %.0f", startMoisture+5, got)
	}

	v.handleKey(tcell.KeyRune, ' ')
	if !v.Paused() {
		t.Fatal("expected space to pause")
	}
	v.Click(5, 4)
	v.Tick()
	if sim.Automaton().Ticks() != 0 {
		t.Fatal("paused viewer should not step")
	}
	v.handleKey(tcell.KeyRune, 'n')
	if sim.Automaton().Ticks() != 1 {
		t.Fatal("n should single-step while paused")
	}
	v.handleKey(tcell.KeyRune, 'r')
	if sim.Automaton().Active() || sim.Automaton().Ticks() != 0 {
		t.Fatal("r should reset the fire")
	}
	if v.handleKey(tcell.KeyRune, 'q') {
		t.Fatal("q should quit")
	}
	if v.handleKey(tcell.KeyEscape, 0) {
		t.Fatal("escape should quit")
	}
}
