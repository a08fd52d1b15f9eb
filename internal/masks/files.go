// Package masks supplies the fuel and elevation masks a wildfire terrain is
// derived from, either decoded from image files or generated from noise.
package masks

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"wildfire-ca/internal/sims/wildfire"
)

// Files decodes masks from image files. When Base is set both masks are
// scaled to the base picture's dimensions and the picture becomes the render
// backdrop; otherwise the masks must already agree on size.
type Files struct {
	Base      string
	Fuel      string
	Elevation string

	base image.Image
}

var _ wildfire.MaskSource = (*Files)(nil)

// Masks opens and decodes the mask files.
func (f *Files) Masks() (image.Image, image.Image, error) {
	if f.Fuel == "" || f.Elevation == "" {
		return nil, nil, fmt.Errorf("masks: both fuel and elevation files are required")
	}
	fuel, err := imgio.Open(f.Fuel)
	if err != nil {
		return nil, nil, fmt.Errorf("masks: fuel %s: %w", f.Fuel, err)
	}
	elev, err := imgio.Open(f.Elevation)
	if err != nil {
		return nil, nil, fmt.Errorf("masks: elevation %s: %w", f.Elevation, err)
	}
	if f.Base == "" {
		return fuel, elev, nil
	}

	base, err := imgio.Open(f.Base)
	if err != nil {
		return nil, nil, fmt.Errorf("masks: base %s: %w", f.Base, err)
	}
	f.base = base
	w, h := base.Bounds().Dx(), base.Bounds().Dy()
	return fitTo(fuel, w, h), fitTo(elev, w, h), nil
}

// Backdrop returns the decoded base picture once Masks has run.
func (f *Files) Backdrop() image.Image { return f.base }

func fitTo(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// ForConfig picks the mask source described by cfg: files when mask paths are
// set, procedural noise otherwise.
func ForConfig(cfg wildfire.Config) wildfire.MaskSource {
	if cfg.UsesMasks() {
		return &Files{Base: cfg.BaseImage, Fuel: cfg.FuelMask, Elevation: cfg.ElevationMask}
	}
	return &Procedural{W: cfg.Width, H: cfg.Height, Seed: cfg.Seed, Params: cfg.Terrain}
}
