package wildfire

// Cell enumerates the per-coordinate fire states.
type Cell uint8

const (
	Empty Cell = iota
	Fuel
	Igniting
	Burning
	Smoldering
	Ash

	cellStates = int(Ash) + 1
)

var cellNames = [cellStates]string{"empty", "fuel", "igniting", "burning", "smoldering", "ash"}

func (c Cell) String() string {
	if int(c) < cellStates {
		return cellNames[c]
	}
	return "unknown"
}

// Transient reports whether the cell will still change without outside input.
func (c Cell) Transient() bool {
	return c == Igniting || c == Burning || c == Smoldering
}

// advance returns the unconditional successor of a transient state.
func (c Cell) advance() Cell {
	switch c {
	case Igniting:
		return Burning
	case Burning:
		return Smoldering
	case Smoldering:
		return Ash
	default:
		return c
	}
}
