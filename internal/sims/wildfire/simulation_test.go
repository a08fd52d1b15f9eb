package wildfire

import (
	"errors"
	"image"
	"math"
	"slices"
	"testing"

	"wildfire-ca/internal/core"
)

type backdropMasks struct {
	maskPair
	base image.Image
}

func (b backdropMasks) Backdrop() image.Image { return b.base }

func newTestSimulation(t *testing.T, cfg Config) *Simulation {
	t.Helper()
	sim, err := NewSimulation(cfg, maskPair{fuel: openField(16, 12), elev: rampX(16, 12, 12)})
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return sim
}

func TestSimulationTakesTerrainSize(t *testing.T) {
	cfg := DefaultConfig()
	sim := newTestSimulation(t, cfg)
	if size := sim.Size(); size != (core.Size{W: 16, H: 12}) {
		t.Fatalf("unexpected size %+v", size)
	}
	if sim.Config().Width != 16 || sim.Config().Height != 12 {
		t.Fatalf("config not updated to terrain size: %+v", sim.Config())
	}
	if sim.Backdrop() != nil {
		t.Fatal("plain mask source should not provide a backdrop")
	}
}

func TestSimulationBackdrop(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 16, 12))
	src := backdropMasks{maskPair: maskPair{fuel: openField(16, 12), elev: flatMask(16, 12, 0)}, base: base}
	sim, err := NewSimulation(DefaultConfig(), src)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	if sim.Backdrop() != base {
		t.Fatal("expected the mask source backdrop to be kept")
	}
}

func TestSimulationTerrainFailure(t *testing.T) {
	_, err := NewSimulation(DefaultConfig(), maskPair{fuel: flatMask(3, 3, 255), elev: flatMask(2, 3, 0)})
	if !errors.Is(err, ErrTerrainUnavailable) {
		t.Fatalf("expected ErrTerrainUnavailable, got %v", err)
	}
}

func TestSimulationResetReplaysSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	cfg.Moisture = 25
	sim := newTestSimulation(t, cfg)

	run := func() []uint8 {
		if err := sim.Ignite(5, 5); err != nil {
			t.Fatalf("Ignite: %v", err)
		}
		for i := 0; i < 8; i++ {
			sim.Step()
		}
		return append([]uint8(nil), sim.Cells()...)
	}

	first := run()
	sim.Reset(0)
	if sim.Active() {
		t.Fatal("reset simulation should be inactive")
	}
	second := run()
	if !slices.Equal(first, second) {
		t.Fatal("Reset(0) should replay the configured seed")
	}
}

func TestSimulationWeatherParameters(t *testing.T) {
	sim := newTestSimulation(t, DefaultConfig())

	if !sim.SetFloatParameter("wind_speed", 40) {
		t.Fatal("wind_speed should be adjustable")
	}
	if !sim.SetFloatParameter("wind_direction", 90) {
		t.Fatal("wind_direction should be adjustable")
	}
	if !sim.SetFloatParameter("moisture", 35) {
		t.Fatal("moisture should be adjustable")
	}
	wind := sim.Automaton().Wind()
	if wind.Speed != 40 || math.Abs(wind.Angle-math.Pi/2) > 1e-12 {
		t.Fatalf("unexpected wind %+v", wind)
	}
	if sim.Automaton().Moisture() != 35 {
		t.Fatalf("expected moisture 35, got %v", sim.Automaton().Moisture())
	}

	if !sim.SetFloatParameter("wind_speed", -5) || sim.Automaton().Wind().Speed != 0 {
		t.Fatal("negative wind speed should clamp to zero")
	}
	if sim.SetFloatParameter("bogus", 1) {
		t.Fatal("unknown keys should be rejected")
	}
	if sim.SetFloatParameter("moisture", math.NaN()) {
		t.Fatal("NaN should be rejected")
	}
	if !sim.SetFloatParameter("tick_ms", 200) || sim.StepInterval().Milliseconds() != 200 {
		t.Fatalf("expected tick interval 200ms, got %v", sim.StepInterval())
	}
}

func TestSimulationNudgeWrapsDirection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WindDirection = 350
	sim := newTestSimulation(t, cfg)

	var dir core.ParameterControl
	for _, c := range sim.ParameterControls() {
		if c.Key == "wind_direction" {
			dir = c
		}
	}
	if !core.Nudge(sim, sim, dir, 1) {
		t.Fatal("expected nudge to be accepted")
	}
	if got := sim.Config().WindDirection; got != 5 {
		t.Fatalf("expected direction to wrap to 5, got %v", got)
	}
}

func TestSimulationParametersReportFire(t *testing.T) {
	sim := newTestSimulation(t, DefaultConfig())
	if err := sim.Ignite(4, 4); err != nil {
		t.Fatalf("Ignite: %v", err)
	}
	snap := sim.Parameters()
	p, ok := snap.Lookup("igniting")
	if !ok || p.Value != "1" {
		t.Fatalf("expected one igniting cell in snapshot, got %+v", p)
	}
	sim.Step()
	p, _ = snap.Lookup("ticks")
	if p.Value != "0" {
		t.Fatal("snapshots must not change after they are taken")
	}
	p, _ = sim.Parameters().Lookup("ticks")
	if p.Value != "1" {
		t.Fatalf("expected ticks=1, got %s", p.Value)
	}
}

func TestPaletteColors(t *testing.T) {
	palette := Palette()
	if len(palette) != int(Ash)+1 {
		t.Fatalf("expected one colour per state, got %d", len(palette))
	}
	if palette[Empty].A != 0 || palette[Fuel].A != 0 {
		t.Fatal("unburnt cells must be transparent")
	}
	names := map[Cell]string{Igniting: "yellow", Burning: "red", Smoldering: "brown", Ash: "black", Fuel: "", Empty: ""}
	for c, want := range names {
		if got := ColorName(c); got != want {
			t.Fatalf("ColorName(%s) = %q, expected %q", c, got, want)
		}
	}
	if y := palette[Igniting]; y.R != 255 || y.G != 255 || y.B != 0 {
		t.Fatalf("igniting should be yellow, got %+v", y)
	}
}
