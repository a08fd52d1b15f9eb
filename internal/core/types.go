package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Sim defines the contract the front ends drive. Step and Reset are never
// called concurrently; Cells is read only between steps.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Igniter is implemented by simulations that accept point ignitions from a
// pointer or the command line.
type Igniter interface {
	Ignite(x, y int) error
}

// Activity reports whether a simulation has something left to advance. Drivers
// only tick the clock while Active is true.
type Activity interface {
	Active() bool
}
