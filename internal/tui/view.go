// Package tui draws the fire in a terminal with tcell. Each terminal cell
// covers a block of grid cells and shows the hottest state inside it.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/wildfire"
)

// glyph is a single terminal cell.
type glyph struct {
	r     rune
	style tcell.Style
}

// heat orders states for block sampling; the highest wins.
var heat = [...]int{
	wildfire.Empty:      0,
	wildfire.Fuel:       1,
	wildfire.Ash:        2,
	wildfire.Smoldering: 3,
	wildfire.Igniting:   4,
	wildfire.Burning:    5,
}

var (
	styleBase   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleStatus = tcell.StyleDefault.Background(tcell.NewRGBColor(24, 24, 30)).Foreground(tcell.ColorWhite)
)

// fuelColor shades unburned fuel from dark valley green to pale ridge green.
func fuelColor(elevation float64) tcell.Color {
	elevation = min(1, max(0, elevation))
	low := colorful.Color{R: 0.12, G: 0.35, B: 0.12}
	high := colorful.Color{R: 0.55, G: 0.75, B: 0.45}
	r, g, b := low.BlendLab(high, elevation).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func glyphFor(c wildfire.Cell, elevation float64) glyph {
	switch c {
	case wildfire.Fuel:
		return glyph{'.', styleBase.Foreground(fuelColor(elevation))}
	case wildfire.Igniting:
		return glyph{'*', styleBase.Foreground(tcell.ColorYellow)}
	case wildfire.Burning:
		return glyph{'#', styleBase.Foreground(tcell.ColorRed)}
	case wildfire.Smoldering:
		return glyph{'%', styleBase.Foreground(tcell.NewRGBColor(165, 42, 42))}
	case wildfire.Ash:
		return glyph{',', styleBase.Foreground(tcell.NewRGBColor(90, 90, 90))}
	default:
		return glyph{' ', styleBase}
	}
}

// viewport maps terminal columns and rows onto grid blocks.
type viewport struct {
	grid       core.Size
	cols, rows int
}

// block returns the grid rectangle [x0,x1)x[y0,y1) under terminal cell (col,row).
func (v viewport) block(col, row int) (x0, y0, x1, y1 int) {
	x0 = col * v.grid.W / v.cols
	x1 = (col + 1) * v.grid.W / v.cols
	y0 = row * v.grid.H / v.rows
	y1 = (row + 1) * v.grid.H / v.rows
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return
}

// cellAt returns the grid cell at the centre of the block under (col,row).
func (v viewport) cellAt(col, row int) (int, int, bool) {
	if col < 0 || row < 0 || col >= v.cols || row >= v.rows {
		return 0, 0, false
	}
	x0, y0, x1, y1 := v.block(col, row)
	return (x0 + x1 - 1) / 2, (y0 + y1 - 1) / 2, true
}

// newViewport fits the grid into cols x rows, never upscaling.
func newViewport(grid core.Size, cols, rows int) viewport {
	return viewport{grid: grid, cols: max(1, min(cols, grid.W)), rows: max(1, min(rows, grid.H))}
}

// sampleBlock returns the hottest state in the block.
func sampleBlock(cells []uint8, w, x0, y0, x1, y1 int) wildfire.Cell {
	best := wildfire.Empty
	for y := y0; y < y1; y++ {
		row := cells[y*w : y*w+w]
		for x := x0; x < x1; x++ {
			c := wildfire.Cell(row[x])
			if int(c) < len(heat) && heat[c] > heat[best] {
				best = c
			}
		}
	}
	return best
}

// frame renders the grid part of the screen. elevation may be nil, in which
// case fuel is drawn at mid height.
func frame(cells []uint8, elevation func(x, y int) float64, v viewport) [][]glyph {
	out := make([][]glyph, v.rows)
	for row := range out {
		out[row] = make([]glyph, v.cols)
		for col := range out[row] {
			x0, y0, x1, y1 := v.block(col, row)
			h := 0.5
			if elevation != nil {
				h = elevation((x0+x1-1)/2, (y0+y1-1)/2)
			}
			out[row][col] = glyphFor(sampleBlock(cells, v.grid.W, x0, y0, x1, y1), h)
		}
	}
	return out
}

func statusText(sim *wildfire.Simulation, paused bool) string {
	fire := sim.Automaton()
	stats := fire.Stats()
	wind := fire.Wind()
	state := "idle"
	switch {
	case paused:
		state = "paused"
	case sim.Active():
		state = "burning"
	case fire.Done():
		state = "out"
	}
	return fmt.Sprintf(" %s  t=%d  fire=%d  ash=%d  wind %.0f@%.0f°  moisture %.0f  [space] pause [r] reset [arrows] wind [ ] moisture [q] quit",
		state, fire.Ticks(), stats.Transient(), stats.Count(wildfire.Ash),
		wind.Speed, wind.Degrees(), fire.Moisture())
}
