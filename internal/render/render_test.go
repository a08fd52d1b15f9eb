package render

import (
	"image"
	"image/color"
	"path/filepath"
	"slices"
	"testing"

	"github.com/anthonynsimon/bild/imgio"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/wildfire"
)

func TestFillPaletteKeepsBackdropUnderUnburntCells(t *testing.T) {
	backdrop := []byte{
		1, 2, 3, 255,
		4, 5, 6, 255,
		7, 8, 9, 255,
	}
	buf := make([]byte, len(backdrop))
	cells := []uint8{uint8(wildfire.Fuel), uint8(wildfire.Burning), uint8(wildfire.Empty)}

	fillPaletteRGBA(buf, backdrop, cells, wildfire.Palette())

	want := []byte{
		1, 2, 3, 255,
		255, 0, 0, 255,
		7, 8, 9, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("unexpected pixels %v", buf)
	}
}

func TestFillPaletteWithoutBackdrop(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	cells := []uint8{uint8(wildfire.Fuel), 200}
	fillPaletteRGBA(buf, nil, cells, wildfire.Palette())

	// Values past the palette clamp to its last entry (ash).
	want := []byte{0, 0, 0, 0, 0, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("unexpected pixels %v", buf)
	}
}

func testTerrain(t *testing.T) *wildfire.Terrain {
	t.Helper()
	fuel := image.NewGray(image.Rect(0, 0, 4, 3))
	fuel.SetGray(1, 1, color.Gray{Y: 255})
	elev := image.NewGray(image.Rect(0, 0, 4, 3))
	elev.SetGray(3, 2, color.Gray{Y: 255})
	terrain, err := wildfire.NewTerrain(fuel, elev)
	if err != nil {
		t.Fatalf("NewTerrain: %v", err)
	}
	return terrain
}

func TestBackdropShadesTerrain(t *testing.T) {
	terrain := testTerrain(t)
	buf := Backdrop(terrain, nil)
	if len(buf) != 4*12 {
		t.Fatalf("unexpected backdrop length %d", len(buf))
	}
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 255 {
			t.Fatalf("backdrop pixel %d not opaque", i/4)
		}
	}
	veg := buf[(1*4+1)*4:]
	if veg[1] <= veg[0] || veg[1] <= veg[2] {
		t.Fatalf("fuel cells should shade green, got %v", veg[:3])
	}
}

func TestBackdropPrefersBaseImage(t *testing.T) {
	terrain := testTerrain(t)
	base := image.NewRGBA(image.Rect(0, 0, 4, 3))
	base.SetRGBA(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	buf := Backdrop(terrain, base)
	px := buf[(1*4+2)*4:]
	if px[0] != 10 || px[1] != 20 || px[2] != 30 {
		t.Fatalf("base picture not used, got %v", px[:4])
	}

	wrong := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if got := Backdrop(terrain, wrong); len(got) != 4*12 {
		t.Fatal("mismatched base pictures should fall back to shading")
	}
}

func TestCompositorSavePNG(t *testing.T) {
	size := core.Size{W: 3, H: 2}
	comp := NewCompositor(size, nil, wildfire.Palette())
	cells := []uint8{
		uint8(wildfire.Igniting), uint8(wildfire.Burning), uint8(wildfire.Smoldering),
		uint8(wildfire.Ash), uint8(wildfire.Fuel), uint8(wildfire.Empty),
	}
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := comp.SavePNG(path, cells, 2); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	img, err := imgio.Open(path)
	if err != nil {
		t.Fatalf("open frame: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Fatalf("expected 6x4 scaled frame, got %v", b)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 0 {
		t.Fatalf("expected yellow igniting pixel, got %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestCompositorIgnoresMismatchedGrid(t *testing.T) {
	comp := NewCompositor(core.Size{W: 2, H: 2}, make([]byte, 3), wildfire.Palette())
	out := comp.Compose([]uint8{1, 2, 3})
	if len(out) != 16 {
		t.Fatalf("unexpected buffer length %d", len(out))
	}
}
