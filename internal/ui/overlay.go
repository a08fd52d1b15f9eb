//go:build ebiten

package ui

import (
	"image/color"

	"wildfire-ca/internal/sims/wildfire"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the fire: the elevation
// field (E) and the global wind vector (W).
type Overlay struct {
	sim      *wildfire.Simulation
	scale    int
	showElev bool
	showWind bool

	elevationImg *ebiten.Image
	pixel        *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim *wildfire.Simulation, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showWind: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		o.showElev = !o.showElev
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		o.showWind = !o.showWind
	}
}

// Draw paints the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showElev {
		o.drawElevation(screen)
	}
	if o.showWind {
		o.drawWind(screen)
	}
}

func (o *Overlay) drawElevation(screen *ebiten.Image) {
	if o.elevationImg == nil {
		size := o.sim.Size()
		o.elevationImg = ebiten.NewImage(size.W, size.H)
		o.elevationImg.WritePixels(elevationRGBA(o.sim.Terrain()))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.elevationImg, op)
}

func (o *Overlay) drawWind(screen *ebiten.Image) {
	size := o.sim.Size()
	pts := windArrow(size.W*o.scale, size.H*o.scale, o.sim.Automaton().Wind())
	for _, p := range pts {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(2, 2)
		op.GeoM.Translate(float64(p.X), float64(p.Y))
		op.ColorScale.ScaleWithColor(color.RGBA{R: 120, G: 200, B: 255, A: 255})
		screen.DrawImage(o.pixel, op)
	}
}
