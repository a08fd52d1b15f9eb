package wildfire

import (
	"fmt"
	"image"
	"image/color"

	"wildfire-ca/internal/core"
)

// FuelThreshold is the mask channel value above which a pixel carries fuel.
const FuelThreshold = 128

// MaskSource produces the fuel and elevation masks a Terrain is built from.
type MaskSource interface {
	Masks() (fuel, elevation image.Image, err error)
}

// Terrain is the immutable per-cell fuel flag and normalised elevation.
type Terrain struct {
	w, h      int
	fuel      []bool
	elevation []float64
}

// BuildTerrain loads masks from src and derives a Terrain from them. Any
// failure is reported as ErrTerrainUnavailable.
func BuildTerrain(src MaskSource) (*Terrain, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no mask source", ErrTerrainUnavailable)
	}
	fuel, elev, err := src.Masks()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTerrainUnavailable, err)
	}
	return NewTerrain(fuel, elev)
}

// NewTerrain reads one channel per pixel from each mask: fuel is present where
// the fuel mask exceeds FuelThreshold, elevation is the elevation mask value
// divided by 255.
func NewTerrain(fuelMask, elevationMask image.Image) (*Terrain, error) {
	if fuelMask == nil || elevationMask == nil {
		return nil, fmt.Errorf("%w: missing mask", ErrTerrainUnavailable)
	}
	fb := fuelMask.Bounds()
	eb := elevationMask.Bounds()
	if fb.Dx() != eb.Dx() || fb.Dy() != eb.Dy() {
		return nil, fmt.Errorf("%w: fuel mask is %dx%d, elevation mask is %dx%d",
			ErrTerrainUnavailable, fb.Dx(), fb.Dy(), eb.Dx(), eb.Dy())
	}
	w, h := fb.Dx(), fb.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: empty mask", ErrTerrainUnavailable)
	}

	t := &Terrain{
		w:         w,
		h:         h,
		fuel:      make([]bool, w*h),
		elevation: make([]float64, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			t.fuel[idx] = channel(fuelMask, fb.Min.X+x, fb.Min.Y+y) > FuelThreshold
			t.elevation[idx] = float64(channel(elevationMask, eb.Min.X+x, eb.Min.Y+y)) / 255
		}
	}
	return t, nil
}

// channel returns the non-premultiplied red channel of the pixel at (x, y).
func channel(img image.Image, x, y int) uint8 {
	switch m := img.(type) {
	case *image.Gray:
		return m.GrayAt(x, y).Y
	case *image.NRGBA:
		return m.NRGBAAt(x, y).R
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).R
}

// Size returns the terrain dimensions.
func (t *Terrain) Size() core.Size { return core.Size{W: t.w, H: t.h} }

// InBounds reports whether (x, y) is a terrain coordinate.
func (t *Terrain) InBounds(x, y int) bool {
	return x >= 0 && x < t.w && y >= 0 && y < t.h
}

// Fuel reports whether the cell at (x, y) can ever ignite.
func (t *Terrain) Fuel(x, y int) bool { return t.fuel[y*t.w+x] }

// Elevation returns the normalised height at (x, y).
func (t *Terrain) Elevation(x, y int) float64 { return t.elevation[y*t.w+x] }

// FuelCount returns the number of cells carrying fuel.
func (t *Terrain) FuelCount() int {
	n := 0
	for _, f := range t.fuel {
		if f {
			n++
		}
	}
	return n
}

// fill writes the initial cell states derived from the fuel layer into g.
func (t *Terrain) fill(g *core.ByteGrid) {
	if g.W != t.w || g.H != t.h {
		panic(fmt.Sprintf("wildfire: grid %dx%d does not match terrain %dx%d", g.W, g.H, t.w, t.h))
	}
	cells := g.Cells()
	for i, f := range t.fuel {
		if f {
			cells[i] = uint8(Fuel)
		} else {
			cells[i] = uint8(Empty)
		}
	}
}
