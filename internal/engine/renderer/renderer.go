// Package renderer owns the global OpenGL state the viewer touches each frame.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/primview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	ClearColor [3]float32
}

// Info describes the active GL implementation.
type Info struct {
	Version     string
	Renderer    string
	Vendor      string
	GLSLVersion string
}

// Renderer is the GL device: clear, viewport and polygon mode.
type Renderer struct {
	config Config
	info   Info
	log    *zap.Logger
}

// New loads the GL function pointers and sets the default state.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		info: Info{
			Version:     gl.GoStr(gl.GetString(gl.VERSION)),
			Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
			Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
			GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		},
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", r.info.Version),
		zap.String("renderer", r.info.Renderer),
		zap.String("vendor", r.info.Vendor),
		zap.String("glsl", r.info.GLSLVersion),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	r.SetClearColor(cfg.ClearColor)

	return r, nil
}

// Info returns the GL implementation strings logged at startup.
func (r *Renderer) Info() Info {
	return r.info
}

// SetClearColor changes the background colour.
func (r *Renderer) SetClearColor(c [3]float32) {
	r.config.ClearColor = c
	gl.ClearColor(c[0], c[1], c[2], 1.0)
}

// Clear clears the colour and depth buffers. Depth testing is switched
// back on since an ImGui pass may have left it off.
func (r *Renderer) Clear() {
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(r.config.ClearColor[0], r.config.ClearColor[1], r.config.ClearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport sets the viewport in device pixels.
func (r *Renderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// PolygonMode switches between filled and line rasterization.
func (r *Renderer) PolygonMode(wireframe bool) {
	gl.PolygonMode(gl.FRONT_AND_BACK, polygonMode(wireframe))
}

func polygonMode(wireframe bool) uint32 {
	if wireframe {
		return gl.LINE
	}
	return gl.FILL
}

// Error drains the GL error queue and returns the first error, if any.
func (r *Renderer) Error() error {
	first := uint32(gl.NO_ERROR)
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if first == gl.NO_ERROR {
			first = code
		}
	}
	if first != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%04x", first)
	}
	return nil
}

// ReadPixels reads the bound read buffer as tightly packed RGBA rows,
// bottom row first.
func (r *Renderer) ReadPixels(width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
