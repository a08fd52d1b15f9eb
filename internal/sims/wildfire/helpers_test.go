package wildfire

import (
	"image"
	"image/color"
	"testing"
)

// fuelMask builds a mask from rows where '#' marks fuel.
func fuelMask(rows ...string) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func flatMask(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func mustTerrain(t *testing.T, fuel, elev image.Image) *Terrain {
	t.Helper()
	terrain, err := NewTerrain(fuel, elev)
	if err != nil {
		t.Fatalf("NewTerrain: %v", err)
	}
	return terrain
}

// constSource returns the same draw forever and counts how often it was asked.
type constSource struct {
	v     float64
	draws int
}

func (c *constSource) Float64() float64 {
	c.draws++
	return c.v
}

type maskPair struct {
	fuel, elev image.Image
	err        error
}

func (m maskPair) Masks() (image.Image, image.Image, error) { return m.fuel, m.elev, m.err }

func openField(w, h int) image.Image {
	rows := make([]string, h)
	for y := range rows {
		row := make([]byte, w)
		for x := range row {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				row[x] = '.'
			} else {
				row[x] = '#'
			}
		}
		rows[y] = string(row)
	}
	return fuelMask(rows...)
}

func expectGrid(t *testing.T, a *Automaton, label string, rows ...string) {
	t.Helper()
	legend := map[byte]Cell{'.': Empty, 'f': Fuel, 'i': Igniting, 'b': Burning, 's': Smoldering, 'a': Ash}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			want := legend[row[x]]
			if got := a.At(x, y); got != want {
				t.Fatalf("%s: cell (%d,%d) = %s, expected %s", label, x, y, got, want)
			}
		}
	}
}
