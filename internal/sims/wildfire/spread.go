package wildfire

import "math"

const (
	// SlopeCoefficient scales the exponential slope factor.
	SlopeCoefficient = 0.08

	baseSpread    = 0.5
	moistureScale = 50.0
	windScale     = 100.0
	windWeight    = 0.3
)

// Wind is a global wind vector. Speed is non-negative; Angle is in radians and
// may take any value.
type Wind struct {
	Speed float64
	Angle float64
}

// WindFromDegrees builds a Wind from a UI bearing expressed in degrees.
func WindFromDegrees(speed, degrees float64) Wind {
	return Wind{Speed: speed, Angle: degrees * math.Pi / 180}
}

// Degrees returns the wind angle in degrees.
func (w Wind) Degrees() float64 { return w.Angle * 180 / math.Pi }

// bias is the additive wind term shared by every cell for the current step.
func (w Wind) bias() float64 {
	strength := w.Speed / windScale
	return (math.Cos(w.Angle)*strength + math.Sin(w.Angle)*strength) * windWeight
}

// SpreadProbability returns the chance that a cell about to burn ignites each
// fuel neighbour. The value is not clamped: strong wind may push it above 1
// or below 0. Wind adds the same bias for every neighbour regardless of its
// direction, and slope enters by gradient magnitude only.
func SpreadProbability(slope float64, wind Wind, moisture float64) float64 {
	moistureFactor := math.Exp(-moisture / moistureScale)
	slopeFactor := math.Exp(SlopeCoefficient * slope)
	base := baseSpread * slopeFactor * moistureFactor
	if wind.Speed == 0 {
		return base
	}
	return base + wind.bias()
}
