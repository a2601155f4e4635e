package app

import (
	"github.com/Faultbox/primview/internal/engine/scene"
)

// DefaultPalette is the albedo sequence offered by PaletteDialog: gold,
// copper, silver, iron and a few dielectrics.
var DefaultPalette = []scene.Color{
	{R: 0.950, G: 0.710, B: 0.290},
	{R: 0.955, G: 0.637, B: 0.538},
	{R: 0.972, G: 0.960, B: 0.915},
	{R: 0.560, G: 0.570, B: 0.580},
	{R: 0.800, G: 0.100, B: 0.100},
	{R: 0.100, G: 0.500, B: 0.900},
	{R: 0.200, G: 0.700, B: 0.300},
}

// PaletteDialog is the keyboard front-end's colour chooser: each request
// picks the palette entry after the one closest to the current colour.
// It never cancels.
type PaletteDialog struct {
	palette []scene.Color
}

// NewPaletteDialog creates a dialog over palette, or DefaultPalette if empty.
func NewPaletteDialog(palette []scene.Color) *PaletteDialog {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &PaletteDialog{palette: palette}
}

// GetColor returns the next colour in the palette.
func (d *PaletteDialog) GetColor(initial scene.Color) (scene.Color, bool) {
	return d.palette[(d.nearest(initial)+1)%len(d.palette)], true
}

func (d *PaletteDialog) nearest(c scene.Color) int {
	best, bestDist := 0, float32(-1)
	for i, p := range d.palette {
		dist := p.Vec3().Distance(c.Vec3())
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
