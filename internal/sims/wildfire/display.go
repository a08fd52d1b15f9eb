package wildfire

import "image/color"

var firePalette = buildFirePalette()

// Palette maps cell values to render colours. Cells without fire are fully
// transparent so the terrain backdrop shows through.
func Palette() []color.RGBA {
	return firePalette
}

func buildFirePalette() []color.RGBA {
	palette := make([]color.RGBA, cellStates)
	for i := range palette {
		palette[i] = paletteColorFor(Cell(i))
	}
	return palette
}

func paletteColorFor(c Cell) color.RGBA {
	switch c {
	case Igniting:
		return color.RGBA{R: 255, G: 255, B: 0, A: 255}
	case Burning:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case Smoldering:
		return color.RGBA{R: 165, G: 42, B: 42, A: 255}
	case Ash:
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	default:
		return color.RGBA{}
	}
}

// ColorName returns the display colour name for a cell, or "" for cells
// that are not drawn.
func ColorName(c Cell) string {
	switch c {
	case Igniting:
		return "yellow"
	case Burning:
		return "red"
	case Smoldering:
		return "brown"
	case Ash:
		return "black"
	default:
		return ""
	}
}
