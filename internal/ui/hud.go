//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"wildfire-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string

	rows     []controlRow
	status   []string
	provider core.ParameterProvider
	setter   core.FloatParameterSetter

	panelOffsetX int
	pixel        *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.rows = layoutRows(provider.ParameterControls(), width)
	}
	h.provider, _ = sim.(core.ParameterProvider)
	h.setter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update refreshes the cached values from the simulation and handles clicks
// on the +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.provider == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	snapshot := h.provider.Parameters()
	refreshValues(h.rows, snapshot)
	h.status = statusLines(snapshot)

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	if idx, dir := hitTest(h.rows, mx-h.panelOffsetX, my); idx >= 0 {
		core.Nudge(h.provider, h.setter, h.rows[idx].control, dir)
	}
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	light := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.rows {
		row := &h.rows[i]
		y := row.top + labelBaseline
		text.Draw(h.panel, row.control.Label, face, panelPadding, y, light)
		valueWidth := text.BoundString(face, row.value).Dx()
		text.Draw(h.panel, row.value, face, row.minusRect.Min.X-buttonGap-valueWidth, y, light)
		h.drawButton(row.minusRect, "-")
		h.drawButton(row.plusRect, "+")
	}
	y := statusTop(len(h.rows))
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, dim)
		y += statusSpacing
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}
