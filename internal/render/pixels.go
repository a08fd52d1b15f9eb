package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Palette entries with zero alpha leave the backdrop pixel in place; when the
// backdrop is nil those pixels are cleared to transparent black.
func fillPaletteRGBA(buf, backdrop []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		copyOrClear(buf, backdrop, len(cells))
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		if col.A == 0 {
			if backdrop != nil {
				copy(buf[base:base+4], backdrop[base:base+4])
			} else {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
			}
			continue
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func copyOrClear(buf, backdrop []byte, n int) {
	if backdrop != nil {
		copy(buf[:n*4], backdrop)
		return
	}
	for i := range buf[:n*4] {
		buf[i] = 0
	}
}
