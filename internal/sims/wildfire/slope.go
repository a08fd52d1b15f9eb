package wildfire

import "math"

// Slope returns the local elevation-gradient magnitude at (x, y) using central
// differences. Neighbours outside the terrain are replaced by the centre
// value, giving a zero gradient across the boundary on that side.
func (t *Terrain) Slope(x, y int) float64 {
	center := t.Elevation(x, y)

	right, left, up, down := center, center, center, center
	if x < t.w-1 {
		right = t.Elevation(x+1, y)
	}
	if x > 0 {
		left = t.Elevation(x-1, y)
	}
	if y > 0 {
		up = t.Elevation(x, y-1)
	}
	if y < t.h-1 {
		down = t.Elevation(x, y+1)
	}

	return math.Hypot(right-left, down-up)
}
