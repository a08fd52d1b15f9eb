// Package render turns cell grids into pixels: a terrain backdrop, the fire
// palette on top, PNG snapshots and (with the ebiten tag) a window painter.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"

	"wildfire-ca/internal/sims/wildfire"
)

const (
	vegetationHue = 105.0
	bareHue       = 35.0
)

// Backdrop returns the RGBA pixels drawn beneath the fire. A base picture is
// used as-is when present; otherwise the terrain is shaded from its fuel and
// elevation layers.
func Backdrop(terrain *wildfire.Terrain, base image.Image) []byte {
	size := terrain.Size()
	if base != nil {
		b := base.Bounds()
		if b.Dx() == size.W && b.Dy() == size.H {
			return imageRGBA(base)
		}
	}
	return shadeTerrain(terrain)
}

func shadeTerrain(terrain *wildfire.Terrain) []byte {
	size := terrain.Size()
	buf := make([]byte, 4*size.W*size.H)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			r, g, b := terrainColor(terrain.Fuel(x, y), terrain.Elevation(x, y), terrain.Slope(x, y))
			base := (y*size.W + x) * 4
			buf[base+0] = r
			buf[base+1] = g
			buf[base+2] = b
			buf[base+3] = 255
		}
	}
	return buf
}

// terrainColor brightens with height and darkens on steep ground.
func terrainColor(fuel bool, elevation, slope float64) (uint8, uint8, uint8) {
	hue, sat := bareHue, 0.35
	if fuel {
		hue, sat = vegetationHue, 0.6
	}
	value := 0.35 + 0.5*elevation - 0.8*slope
	value = math.Max(0.15, math.Min(1, value))
	r, g, b, err := colorconv.HSVToRGB(hue, sat, value)
	if err != nil {
		return 0, 0, 0
	}
	return r, g, b
}

func imageRGBA(img image.Image) []byte {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*b.Dx() && b.Min == (image.Point{}) {
		return append([]byte(nil), rgba.Pix...)
	}
	buf := make([]byte, 4*b.Dx()*b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			buf[i+0] = c.R
			buf[i+1] = c.G
			buf[i+2] = c.B
			buf[i+3] = 255
			i += 4
		}
	}
	return buf
}
