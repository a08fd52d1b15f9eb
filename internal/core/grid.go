package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Interior reports whether (x, y) lies inside the outermost ring of cells.
func (g *ByteGrid) Interior(x, y int) bool {
	return x >= 1 && x < g.W-1 && y >= 1 && y < g.H-1
}

// At returns the value stored at (x, y). Callers check bounds first.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Set stores v at (x, y). Callers check bounds first.
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[g.Index(x, y)] = v }

// CopyFrom overwrites the grid contents with src. Both grids must share
// dimensions.
func (g *ByteGrid) CopyFrom(src *ByteGrid) {
	if src.W != g.W || src.H != g.H {
		panic("core: ByteGrid.CopyFrom dimension mismatch")
	}
	copy(g.data, src.data)
}
