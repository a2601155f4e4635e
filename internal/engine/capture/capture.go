// Package capture writes rendered frames to timestamped PNG files.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Writer saves screenshots as <dir>/<prefix>_<timestamp>.png. A suffix is
// added when two shots land in the same second.
type Writer struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewWriter creates a writer for dir. An empty dir writes to the working directory.
func NewWriter(dir, prefix string) *Writer {
	if prefix == "" {
		prefix = "screenshot"
	}
	return &Writer{dir: dir, prefix: prefix, now: time.Now}
}

// FromGL turns bottom-up RGBA rows, as returned by glReadPixels, into a
// top-down image.
func FromGL(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := range height {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// SaveGL flips raw GL pixels and saves them. It returns the file written.
func (w *Writer) SaveGL(pixels []byte, width, height int) (string, error) {
	img, err := FromGL(pixels, width, height)
	if err != nil {
		return "", err
	}
	return w.Save(img)
}

// Save encodes img as PNG and returns the file written.
func (w *Writer) Save(img image.Image) (string, error) {
	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, name, err := w.create()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return name, nil
}

// create opens the first free file name for the current second.
func (w *Writer) create() (*os.File, string, error) {
	stamp := w.now().Format("2006-01-02_15-04-05")
	for n := 0; n < 1000; n++ {
		base := fmt.Sprintf("%s_%s.png", w.prefix, stamp)
		if n > 0 {
			base = fmt.Sprintf("%s_%s_%d.png", w.prefix, stamp, n)
		}
		name := filepath.Join(w.dir, base)

		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("creating file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("too many screenshots for %s", stamp)
}

// SaveAs encodes img as PNG at name, replacing any existing file.
func SaveAs(name string, img image.Image) error {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}
