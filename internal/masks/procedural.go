package masks

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/aquilax/go-perlin"

	"wildfire-ca/internal/sims/wildfire"
)

const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
)

// Procedural generates masks from Perlin noise: one field for elevation and an
// independent one thresholded so that Params.FuelCover of the cells carry fuel.
type Procedural struct {
	W, H   int
	Seed   int64
	Params wildfire.TerrainParams
}

var _ wildfire.MaskSource = (*Procedural)(nil)

// Masks renders both masks as grayscale images.
func (p *Procedural) Masks() (image.Image, image.Image, error) {
	if p.W <= 0 || p.H <= 0 {
		return nil, nil, fmt.Errorf("masks: invalid procedural size %dx%d", p.W, p.H)
	}
	scale := p.Params.NoiseScale
	if scale <= 0 {
		scale = wildfire.DefaultConfig().Terrain.NoiseScale
	}

	elevNoise := sample(perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, p.Seed), p.W, p.H, scale)
	fuelNoise := sample(perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, p.Seed+1), p.W, p.H, scale*2)

	elev := image.NewGray(image.Rect(0, 0, p.W, p.H))
	for i, v := range elevNoise {
		elev.Pix[i] = toByte(0.5 + 0.5*v*p.Params.Relief)
	}

	fuel := image.NewGray(image.Rect(0, 0, p.W, p.H))
	cut := coverThreshold(fuelNoise, p.Params.FuelCover)
	for i, v := range fuelNoise {
		if v >= cut {
			fuel.Pix[i] = 255
		}
	}
	return fuel, elev, nil
}

func sample(n *perlin.Perlin, w, h int, scale float64) []float64 {
	vals := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			vals[y*w+x] = n.Noise2D(float64(x)*scale, float64(y)*scale)
		}
	}
	return vals
}

// coverThreshold returns the noise value at or above which a cover fraction of
// the samples lie.
func coverThreshold(vals []float64, cover float64) float64 {
	if cover <= 0 {
		return math.Inf(1)
	}
	if cover >= 1 {
		return math.Inf(-1)
	}
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	idx := int(math.Round(float64(len(sorted)) * (1 - cover)))
	if idx >= len(sorted) {
		return math.Inf(1)
	}
	return sorted[idx]
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
