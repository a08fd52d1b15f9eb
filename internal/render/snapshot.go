package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"wildfire-ca/internal/core"
)

// Compositor paints cell grids over a fixed backdrop into a reusable buffer.
type Compositor struct {
	size     core.Size
	backdrop []byte
	palette  []color.RGBA
	buf      []byte
}

// NewCompositor prepares a compositor for grids of the given size. backdrop
// may be nil for a transparent background.
func NewCompositor(size core.Size, backdrop []byte, palette []color.RGBA) *Compositor {
	if backdrop != nil && len(backdrop) != 4*size.Cells() {
		backdrop = nil
	}
	return &Compositor{
		size:     size,
		backdrop: backdrop,
		palette:  palette,
		buf:      make([]byte, 4*size.Cells()),
	}
}

// Compose renders cells and returns the RGBA buffer. The buffer is reused by
// the next call.
func (c *Compositor) Compose(cells []uint8) []byte {
	if len(cells) != c.size.Cells() {
		return c.buf
	}
	fillPaletteRGBA(c.buf, c.backdrop, cells, c.palette)
	return c.buf
}

// Image renders cells into a new image, scaled up by an integer factor.
func (c *Compositor) Image(cells []uint8, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.size.W, c.size.H))
	copy(img.Pix, c.Compose(cells))
	if scale <= 1 {
		return img
	}
	return transform.Resize(img, c.size.W*scale, c.size.H*scale, transform.NearestNeighbor)
}

// SavePNG writes the rendered cells to path.
func (c *Compositor) SavePNG(path string, cells []uint8, scale int) error {
	if err := imgio.Save(path, c.Image(cells, scale), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save frame %s: %w", path, err)
	}
	return nil
}
