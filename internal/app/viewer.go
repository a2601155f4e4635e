// Package app wires the GL services and the scene controller into a viewer
// that either front-end can drive.
package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/Faultbox/primview/internal/assets"
	"github.com/Faultbox/primview/internal/assets/shaders"
	"github.com/Faultbox/primview/internal/config"
	"github.com/Faultbox/primview/internal/engine/capture"
	"github.com/Faultbox/primview/internal/engine/mesh"
	"github.com/Faultbox/primview/internal/engine/renderer"
	"github.com/Faultbox/primview/internal/engine/scene"
	"github.com/Faultbox/primview/internal/engine/shader"
	"github.com/Faultbox/primview/internal/engine/text"
	"github.com/Faultbox/primview/internal/logger"
)

// Viewer owns every GL resource of one window.
type Viewer struct {
	Assets   *assets.Manager
	Renderer *renderer.Renderer
	Shaders  *shader.Registry
	Meshes   *mesh.Registry
	Overlay  *text.Overlay
	Scene    *scene.Controller
	Redraw   *Redraw

	cfg     *config.Config
	capture *capture.Writer
	log     *zap.Logger
}

// NewViewer builds the GL services and initializes the scene. The GL
// context must be current on the calling thread.
func NewViewer(cfg *config.Config, dialog scene.ColorDialog) (*Viewer, error) {
	v := &Viewer{
		Redraw:  NewRedraw(),
		cfg:     cfg,
		capture: capture.NewWriter(cfg.Screenshots.Dir, cfg.Screenshots.Prefix),
		log:     logger.Named("app"),
	}
	v.Assets = newAssets(cfg.Assets.Dirs, v.log)

	var err error
	v.Renderer, err = renderer.New(renderer.Config{ClearColor: cfg.Scene.ClearColor})
	if err != nil {
		return nil, err
	}

	v.Shaders = shader.NewRegistry(v.Assets)

	v.Meshes = mesh.NewRegistry()
	if err := v.Meshes.AddBuiltins(cfg.Scene.TeapotDetail); err != nil {
		v.Close()
		return nil, fmt.Errorf("building meshes: %w", err)
	}

	face, err := loadFace(v.Assets, cfg.Scene.FontPath, cfg.Scene.FontSize, v.log)
	if err != nil {
		v.Close()
		return nil, err
	}
	v.Overlay, err = text.NewOverlay(face)
	if err != nil {
		v.Close()
		return nil, err
	}

	v.Scene, err = scene.New(cfg, scene.Deps{
		Shaders: v.Shaders,
		Meshes:  v.Meshes,
		Device:  v.Renderer,
		Text:    v.Overlay,
		Redraw:  v.Redraw,
		Dialog:  dialog,
	})
	if err != nil {
		v.Close()
		return nil, err
	}
	if err := v.Scene.InitializeGL(); err != nil {
		v.Close()
		return nil, err
	}

	info := v.Renderer.Info()
	v.log.Info("viewer ready",
		zap.String("gl", info.Version),
		zap.Stringer("object", v.Scene.Object()),
	)
	return v, nil
}

// newAssets searches the configured directories first and falls back to
// the embedded shaders. Missing directories are skipped.
func newAssets(dirs []string, log *zap.Logger) *assets.Manager {
	m := assets.NewManager()
	m.Mount("shaders", shaders.FS)
	for _, dir := range dirs {
		if err := m.AddDir(dir); err != nil {
			log.Warn("asset dir skipped", zap.String("dir", dir), zap.Error(err))
		}
	}
	return m
}

// loadFace opens the configured font, falling back to the built-in face
// when the file is missing.
func loadFace(src *assets.Manager, path string, size float64, log *zap.Logger) (font.Face, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = src.Load(path)
		switch {
		case errors.Is(err, assets.ErrNotFound):
			log.Warn("font not found, using built-in", zap.String("path", path))
			data = nil
		case err != nil:
			return nil, fmt.Errorf("loading font %s: %w", path, err)
		}
	}

	face, err := text.NewFace(data, size)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", path, err)
	}
	return face, nil
}

// Resize passes a new window size to the scene and the text overlay.
// width and height are in display units.
func (v *Viewer) Resize(width, height int, pixelRatio float32) {
	v.Scene.ResizeGL(width, height, pixelRatio)
	v.Overlay.SetScreenSize(width, height)
	v.Redraw.Update()
}

// ReloadShaders drops the asset cache and recompiles the scene program,
// so edited shader files on disk take effect.
func (v *Viewer) ReloadShaders() error {
	hits, misses := v.Assets.CacheStats()
	v.Assets.Invalidate()
	v.log.Debug("asset cache dropped", zap.Int("hits", hits), zap.Int("misses", misses))
	return v.Scene.ReloadShaders()
}

// SaveSettings writes the current object, fill mode and albedo back to the
// config file and returns its path.
func (v *Viewer) SaveSettings() (string, error) {
	path := settingsPath()
	if err := SaveSettings(v.cfg, v.Scene, path); err != nil {
		return "", err
	}
	v.log.Info("settings saved", zap.String("file", path))
	return path, nil
}

// Paint draws a frame and reports any GL error it left behind.
func (v *Viewer) Paint() error {
	if err := v.Scene.PaintGL(); err != nil {
		return err
	}
	if err := v.Renderer.Error(); err != nil {
		v.log.Warn("gl error after paint", zap.Error(err))
	}
	return nil
}

// Screenshot saves the current read buffer of the given device-pixel size
// to the screenshot directory. It returns the file written.
func (v *Viewer) Screenshot(width, height int) (string, error) {
	name, err := v.capture.SaveGL(v.Renderer.ReadPixels(width, height), width, height)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	v.log.Info("screenshot saved", zap.String("file", name))
	return name, nil
}

// SaveImage stores GL pixels from an offscreen target in the screenshot directory.
func (v *Viewer) SaveImage(pixels []byte, width, height int) (string, error) {
	name, err := v.capture.SaveGL(pixels, width, height)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	v.log.Info("screenshot saved", zap.String("file", name))
	return name, nil
}

// Close releases the GL resources.
func (v *Viewer) Close() {
	if v.Overlay != nil {
		v.Overlay.Delete()
	}
	if v.Meshes != nil {
		v.Meshes.Delete()
	}
	if v.Shaders != nil {
		v.Shaders.Delete()
	}
}
