//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads composed frames into a single ebiten image.
type GridPainter struct {
	comp *Compositor
	img  *ebiten.Image
}

// NewGridPainter allocates a painter backed by comp.
func NewGridPainter(comp *Compositor) *GridPainter {
	return &GridPainter{comp: comp, img: ebiten.NewImage(comp.size.W, comp.size.H)}
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	gp.img.WritePixels(gp.comp.Compose(cells))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.comp.size.W, gp.comp.size.H }
