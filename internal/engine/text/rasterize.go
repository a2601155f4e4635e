// Package text draws the screen-space text overlay.
package text

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// NewFace parses TrueType/OpenType data into a face of the given pixel
// size. Nil data selects the built-in Go Regular font.
func NewFace(data []byte, size float64) (font.Face, error) {
	if data == nil {
		data = goregular.TTF
	}
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %g", size)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// Rasterize renders a single line of text onto a transparent image just
// large enough to hold it. Row 0 is the top of the line.
func Rasterize(face font.Face, s string, col color.Color) *image.RGBA {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	width := font.MeasureString(face, s).Ceil()

	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	if s == "" {
		return img
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)
	return img
}
