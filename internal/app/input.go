package app

import "wildfire-ca/internal/core"

// GridPoint maps a cursor position in window pixels to the grid cell under
// it. It reports false when the cursor is outside the grid view.
func GridPoint(mx, my, scale int, size core.Size) (Point, bool) {
	if scale <= 0 {
		scale = 1
	}
	if mx < 0 || my < 0 {
		return Point{}, false
	}
	p := Point{X: mx / scale, Y: my / scale}
	if p.X >= size.W || p.Y >= size.H {
		return Point{}, false
	}
	return p, true
}
