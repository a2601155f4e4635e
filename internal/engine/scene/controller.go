package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/primview/internal/config"
	"github.com/Faultbox/primview/internal/engine/camera"
	"github.com/Faultbox/primview/internal/logger"
	"github.com/Faultbox/primview/pkg/math"
)

// Controller owns the scene state and drives one frame per PaintGL call.
// All methods must be called from the thread that owns the GL context.
type Controller struct {
	cfg  config.Config
	deps Deps
	log  *zap.Logger

	// Object transform; rotation in degrees
	position math.Vec3
	rotation math.Vec3
	scale    math.Vec3

	// Camera
	camera     *camera.OrbitCamera
	view       math.Mat4
	project    math.Mat4
	camPos     math.Vec3
	camPending bool

	wireframe bool
	selected  ObjectKind
	albedo    Color

	win         WinParams
	initialized bool
}

// New creates a controller in its default pose.
func New(cfg *config.Config, deps Deps) (*Controller, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	selected := ObjectKind(cfg.Scene.Object)
	if !selected.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidObject, cfg.Scene.Object)
	}

	c := &Controller{
		cfg:       *cfg,
		deps:      deps,
		log:       logger.Named("scene"),
		scale:     math.Vec3{X: 1, Y: 1, Z: 1},
		view:      math.Identity(),
		project:   math.Identity(),
		wireframe: cfg.Scene.Wireframe,
		selected:  selected,
		albedo:    colorFrom(cfg.Material.Albedo),
		win: WinParams{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
		},
	}
	return c, nil
}

// InitializeGL sets up the camera, compiles the PBR program, uploads the
// lighting and material uniforms, builds the sphere and sizes the overlay.
// It must run once, after the GL context exists and before the first paint.
func (c *Controller) InitializeGL() error {
	cam := c.cfg.Camera
	eye, look, up := vec3(cam.Eye), vec3(cam.Look), vec3(cam.Up)

	c.camera = camera.FromEye(eye, look, up)
	c.camera.MinDistance = cam.MinDistance
	c.camera.MaxDistance = cam.MaxDistance
	c.view = math.LookAt(eye, look, up)
	c.camPos = eye

	aspect := float32(c.cfg.Window.Width) / float32(max(c.cfg.Window.Height, 1))
	c.project = math.Perspective(math.Radians(cam.FOV), aspect, cam.Near, cam.Far)

	sh := c.cfg.Shaders
	if err := c.deps.Shaders.Load(sh.Program, sh.Vertex, sh.Fragment); err != nil {
		return fmt.Errorf("loading program %s: %w", sh.Program, err)
	}
	if err := c.deps.Shaders.Use(sh.Program); err != nil {
		return fmt.Errorf("using program %s: %w", sh.Program, err)
	}
	c.uploadMaterial()

	if err := c.deps.Meshes.CreateSphere(SphereMeshName, 1.0, c.cfg.Scene.SpherePrecision); err != nil {
		return fmt.Errorf("creating sphere: %w", err)
	}

	oc := c.cfg.Scene.OverlayColor
	c.deps.Text.SetScreenSize(c.cfg.Window.Width, c.cfg.Window.Height)
	c.deps.Text.SetColour(oc[0], oc[1], oc[2])

	c.initialized = true
	c.log.Info("scene initialized",
		zap.String("program", sh.Program),
		zap.Stringer("object", c.selected),
		zap.Float32("aspect", aspect),
	)
	return nil
}

// ReloadShaders recompiles the PBR program from its sources and uploads
// the current material again. A failed compile keeps the old program.
func (c *Controller) ReloadShaders() error {
	if !c.initialized {
		return fmt.Errorf("scene: ReloadShaders before InitializeGL")
	}
	sh := c.cfg.Shaders
	if err := c.deps.Shaders.Load(sh.Program, sh.Vertex, sh.Fragment); err != nil {
		return fmt.Errorf("reloading program %s: %w", sh.Program, err)
	}
	if err := c.deps.Shaders.Use(sh.Program); err != nil {
		return fmt.Errorf("using program %s: %w", sh.Program, err)
	}
	c.uploadMaterial()
	c.camPending = false

	c.log.Info("shaders reloaded", zap.String("program", sh.Program))
	c.deps.Redraw.Update()
	return nil
}

func (c *Controller) uploadMaterial() {
	m := c.cfg.Material
	s := c.deps.Shaders
	s.SetVec3("camPos", c.camPos)
	s.SetVec3("lightPosition", vec3(m.LightPosition))
	s.SetVec3("lightColor", vec3(m.LightColor))
	s.SetFloat("exposure", m.Exposure)
	s.SetVec3("albedo", c.albedo.Vec3())
	s.SetFloat("metallic", m.Metallic)
	s.SetFloat("roughness", m.Roughness)
	s.SetFloat("ao", m.AO)
}

// ResizeGL recomputes the projection for the new aspect ratio and records
// the viewport size in device pixels.
func (c *Controller) ResizeGL(width, height int, pixelRatio float32) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}

	cam := c.cfg.Camera
	aspect := float32(width) / float32(height)
	c.project = math.Perspective(math.Radians(cam.FOV), aspect, cam.Near, cam.Far)

	c.win.Width = int(float32(width) * pixelRatio)
	c.win.Height = int(float32(height) * pixelRatio)

	c.log.Debug("resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float32("pixel_ratio", pixelRatio),
	)
}

// Transform composes the block PaintGL uploads from the current state.
func (c *Controller) Transform() TransformBlock {
	m := math.Translate(c.position.X, c.position.Y, c.position.Z).
		Mul(math.RotateZ(math.Radians(c.rotation.Z))).
		Mul(math.RotateY(math.Radians(c.rotation.Y))).
		Mul(math.RotateX(math.Radians(c.rotation.X))).
		Mul(math.Scale(c.scale.X, c.scale.Y, c.scale.Z))

	return TransformBlock{
		MVP:          c.project.Mul(c.view).Mul(m),
		NormalMatrix: m.NormalMatrix(),
		M:            m,
	}
}

// PaintGL draws one frame: clear, viewport, fill mode, transform upload,
// one draw call for the selected mesh and the overlay text.
func (c *Controller) PaintGL() error {
	if !c.initialized {
		return fmt.Errorf("scene: PaintGL before InitializeGL")
	}

	c.deps.Device.Clear()
	c.deps.Device.Viewport(c.win.Width, c.win.Height)
	c.deps.Device.PolygonMode(c.wireframe)

	program := c.cfg.Shaders.Program
	if err := c.deps.Shaders.Use(program); err != nil {
		return fmt.Errorf("using program %s: %w", program, err)
	}
	if c.camPending {
		c.deps.Shaders.SetVec3("camPos", c.camPos)
		c.camPending = false
	}

	block := c.Transform()
	if err := c.deps.Shaders.SetUniformBlock(TransformBlockName, block.Floats()); err != nil {
		return fmt.Errorf("uploading %s: %w", TransformBlockName, err)
	}

	if err := c.deps.Meshes.Draw(c.selected.MeshName()); err != nil {
		return fmt.Errorf("drawing %s: %w", c.selected, err)
	}

	sc := c.cfg.Scene
	if err := c.deps.Text.RenderText(sc.OverlayX, sc.OverlayY, sc.OverlayText); err != nil {
		return fmt.Errorf("rendering overlay: %w", err)
	}
	return nil
}

// SetColour asks the dialog for a new albedo. A cancelled dialog changes nothing.
func (c *Controller) SetColour() {
	col, ok := c.deps.Dialog.GetColor(c.albedo)
	if !ok {
		return
	}

	c.albedo = col
	if c.initialized {
		if err := c.deps.Shaders.Use(c.cfg.Shaders.Program); err != nil {
			c.log.Warn("albedo not uploaded", zap.Error(err))
		} else {
			c.deps.Shaders.SetVec3("albedo", col.Vec3())
		}
	}
	c.log.Debug("albedo changed",
		zap.Float32("r", col.R),
		zap.Float32("g", col.G),
		zap.Float32("b", col.B),
	)
	c.deps.Redraw.Update()
}

// Position returns the object translation.
func (c *Controller) Position() math.Vec3 { return c.position }

// Rotation returns the object rotation in degrees.
func (c *Controller) Rotation() math.Vec3 { return c.rotation }

// Scale returns the object scale.
func (c *Controller) Scale() math.Vec3 { return c.scale }

// Wireframe reports whether polygons are drawn as lines.
func (c *Controller) Wireframe() bool { return c.wireframe }

// Object returns the selected mesh.
func (c *Controller) Object() ObjectKind { return c.selected }

// Albedo returns the current albedo colour.
func (c *Controller) Albedo() Color { return c.albedo }

// View returns the current view matrix.
func (c *Controller) View() math.Mat4 { return c.view }

// Projection returns the current projection matrix.
func (c *Controller) Projection() math.Mat4 { return c.project }

// CameraPosition returns the eye position in world space.
func (c *Controller) CameraPosition() math.Vec3 { return c.camPos }

// Viewport returns the recorded viewport size in device pixels.
func (c *Controller) Viewport() (int, int) { return c.win.Width, c.win.Height }

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func colorFrom(a [3]float32) Color {
	return Color{R: a[0], G: a[1], B: a[2]}
}
