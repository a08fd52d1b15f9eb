package ui

import (
	"image"
	"math"

	"wildfire-ca/internal/sims/wildfire"
)

const overlayAlpha = 160

// elevationRGBA renders terrain height as translucent grey, brighter uphill.
func elevationRGBA(terrain *wildfire.Terrain) []byte {
	size := terrain.Size()
	buf := make([]byte, 4*size.W*size.H)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			v := uint8(math.Round(terrain.Elevation(x, y) * 255))
			i := (y*size.W + x) * 4
			// Premultiplied for ebiten.
			pv := uint8(uint16(v) * overlayAlpha / 255)
			buf[i+0] = pv
			buf[i+1] = pv
			buf[i+2] = pv
			buf[i+3] = overlayAlpha
		}
	}
	return buf
}

// windArrow returns the pixels of a line from the view centre pointing along
// the wind, with length proportional to speed (full length at speed 100).
func windArrow(w, h int, wind wildfire.Wind) []image.Point {
	if wind.Speed <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	cx, cy := float64(w)/2, float64(h)/2
	maxLen := math.Min(cx, cy) * 0.8
	length := maxLen * math.Min(wind.Speed, 100) / 100
	dx, dy := math.Cos(wind.Angle), math.Sin(wind.Angle)

	steps := int(math.Ceil(length))
	pts := make([]image.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i)
		pts = append(pts, image.Pt(int(math.Round(cx+dx*t)), int(math.Round(cy+dy*t))))
	}
	return pts
}
