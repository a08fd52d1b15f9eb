package wildfire

import (
	"fmt"

	"wildfire-ca/internal/core"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand and the seeded
// pkg/core RNG both satisfy it; tests substitute fixed sequences.
type RandomSource interface {
	Float64() float64
}

// neighborOffsets lists the Moore neighbourhood in the order draws are taken.
var neighborOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// Automaton owns the cell grid for one terrain and advances it in discrete
// steps. It is not safe for concurrent use.
type Automaton struct {
	terrain *Terrain
	rng     RandomSource

	cur *core.ByteGrid
	nxt *core.ByteGrid

	wind     Wind
	moisture float64

	active bool
	ticks  int
	stats  Stats

	// stranded counts border cells lit by Ignite. Step never visits the
	// border, so they stay Igniting until Reset.
	stranded int
}

// New returns an automaton over terrain with every fuel cell unburned.
func New(terrain *Terrain, rng RandomSource) *Automaton {
	if terrain == nil {
		panic("wildfire: nil terrain")
	}
	if rng == nil {
		panic("wildfire: nil random source")
	}
	size := terrain.Size()
	a := &Automaton{
		terrain: terrain,
		rng:     rng,
		cur:     core.NewByteGrid(size.W, size.H),
		nxt:     core.NewByteGrid(size.W, size.H),
	}
	a.Reset()
	return a
}

// Terrain returns the terrain the automaton runs on.
func (a *Automaton) Terrain() *Terrain { return a.terrain }

// Size returns the grid dimensions.
func (a *Automaton) Size() core.Size { return a.terrain.Size() }

// Cells exposes the current state buffer in row-major order. The slice is
// replaced on every step and must not be written by callers.
func (a *Automaton) Cells() []uint8 { return a.cur.Cells() }

// At returns the state of the cell at (x, y), or Empty outside the grid.
func (a *Automaton) At(x, y int) Cell {
	if !a.cur.InBounds(x, y) {
		return Empty
	}
	return Cell(a.cur.At(x, y))
}

// Wind returns the wind used by the next step.
func (a *Automaton) Wind() Wind { return a.wind }

// SetWind replaces the wind used by subsequent steps.
func (a *Automaton) SetWind(w Wind) {
	if w.Speed < 0 {
		w.Speed = 0
	}
	a.wind = w
}

// Moisture returns the fuel moisture used by the next step.
func (a *Automaton) Moisture() float64 { return a.moisture }

// SetMoisture replaces the fuel moisture used by subsequent steps.
func (a *Automaton) SetMoisture(m float64) { a.moisture = m }

// Active reports whether a fire has been started since the last reset.
func (a *Automaton) Active() bool { return a.active }

// Done reports whether a started fire has burnt out. Lit border cells never
// advance and do not keep the fire alive.
func (a *Automaton) Done() bool { return a.active && a.stats.Transient()-a.stranded == 0 }

// Ticks returns the number of steps taken since the last reset.
func (a *Automaton) Ticks() int { return a.ticks }

// Stats returns the per-state cell counts of the current grid.
func (a *Automaton) Stats() Stats { return a.stats }

// Reset rebuilds the grid from the terrain and forgets any fire.
func (a *Automaton) Reset() {
	a.terrain.fill(a.cur)
	a.nxt.CopyFrom(a.cur)
	a.active = false
	a.ticks = 0
	a.stranded = 0
	a.stats = countStates(a.cur.Cells())
}

// Ignite sets the fuel cell at (x, y) alight and starts the automaton.
func (a *Automaton) Ignite(x, y int) error {
	if !a.cur.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, a.cur.W, a.cur.H)
	}
	state := Cell(a.cur.At(x, y))
	if state != Fuel {
		return fmt.Errorf("%w: (%d,%d) is %s", ErrInvalidTarget, x, y, state)
	}
	if !a.cur.Interior(x, y) {
		a.stranded++
	}
	a.cur.Set(x, y, uint8(Igniting))
	a.stats.add(Fuel, -1)
	a.stats.add(Igniting, 1)
	a.active = true
	return nil
}

// Step advances every interior cell by one tick. All reads come from the
// current buffer and all writes go to the next one, so the outcome does not
// depend on scan order beyond the order of random draws.
func (a *Automaton) Step() {
	cur, nxt := a.cur, a.nxt
	nxt.CopyFrom(cur)

	w, h := cur.W, cur.H
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			state := Cell(cur.At(x, y))
			switch state {
			case Igniting:
				a.spreadFrom(x, y)
				nxt.Set(x, y, uint8(Burning))
			case Burning, Smoldering:
				nxt.Set(x, y, uint8(state.advance()))
			}
		}
	}

	a.cur, a.nxt = nxt, cur
	a.ticks++
	a.stats = countStates(a.cur.Cells())
}

func (a *Automaton) spreadFrom(x, y int) {
	p := SpreadProbability(a.terrain.Slope(x, y), a.wind, a.moisture)
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if !a.cur.Interior(nx, ny) {
			continue
		}
		if Cell(a.cur.At(nx, ny)) != Fuel {
			continue
		}
		if a.rng.Float64() < p {
			a.nxt.Set(nx, ny, uint8(Igniting))
		}
	}
}

// Stats counts cells per state.
type Stats struct {
	Counts [cellStates]int
}

// Count returns the number of cells in state c.
func (s Stats) Count(c Cell) int {
	if int(c) >= cellStates {
		return 0
	}
	return s.Counts[c]
}

// Transient returns the number of cells still igniting, burning or smoldering.
func (s Stats) Transient() int {
	return s.Counts[Igniting] + s.Counts[Burning] + s.Counts[Smoldering]
}

// Affected returns the number of cells the fire has reached.
func (s Stats) Affected() int { return s.Transient() + s.Counts[Ash] }

// BurnedFraction returns the share of flammable cells the fire has reached.
func (s Stats) BurnedFraction() float64 {
	flammable := s.Counts[Fuel] + s.Affected()
	if flammable == 0 {
		return 0
	}
	return float64(s.Affected()) / float64(flammable)
}

func (s *Stats) add(c Cell, n int) { s.Counts[c] += n }

func countStates(cells []uint8) Stats {
	var s Stats
	for _, c := range cells {
		if int(c) < cellStates {
			s.Counts[c]++
		}
	}
	return s
}
