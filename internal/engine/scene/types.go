// Package scene implements the render controller: it owns the object transform,
// the camera matrices and the draw selection, and sequences the per-frame
// uniform upload and draw call through injected collaborators.
package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/primview/pkg/math"
)

// TransformBlockName is the uniform block the PBR vertex shader reads.
const TransformBlockName = "TransformUBO"

// SphereMeshName is the mesh built during InitializeGL.
const SphereMeshName = "sphere"

// ErrInvalidObject is returned by SetObjectMode for an unknown index.
var ErrInvalidObject = errors.New("invalid object")

// ObjectKind selects the mesh drawn each frame.
type ObjectKind int

const (
	Teapot ObjectKind = iota
	Sphere
	Cube
)

// MeshName returns the registry name of the mesh.
func (k ObjectKind) MeshName() string {
	switch k {
	case Teapot:
		return "teapot"
	case Sphere:
		return SphereMeshName
	case Cube:
		return "cube"
	default:
		return ""
	}
}

func (k ObjectKind) String() string {
	if name := k.MeshName(); name != "" {
		return name
	}
	return fmt.Sprintf("ObjectKind(%d)", int(k))
}

// Valid reports whether k names a known mesh.
func (k ObjectKind) Valid() bool {
	return k >= Teapot && k <= Cube
}

// Color is a linear RGB colour in [0,1].
type Color struct {
	R, G, B float32
}

// Vec3 returns the colour as a shader vector.
func (c Color) Vec3() math.Vec3 {
	return math.Vec3{X: c.R, Y: c.G, Z: c.B}
}

// TransformBlock is the per-frame uniform block: MVP, normal matrix, model.
type TransformBlock struct {
	MVP          math.Mat4
	NormalMatrix math.Mat4
	M            math.Mat4
}

// Floats lays the block out as 48 contiguous floats in std140 order.
func (t TransformBlock) Floats() []float32 {
	out := make([]float32, 0, 48)
	out = append(out, t.MVP[:]...)
	out = append(out, t.NormalMatrix[:]...)
	out = append(out, t.M[:]...)
	return out
}

// MouseButton identifies which button started a drag.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

// WinParams is the mouse bookkeeping shared by the input handlers,
// plus the viewport size in device pixels.
type WinParams struct {
	Width  int
	Height int

	Rotate    bool
	Translate bool
	OrigX     int
	OrigY     int
}

// Shaders creates and feeds named shader programs.
type Shaders interface {
	Load(name, vertexPath, fragmentPath string) error
	Use(name string) error
	SetFloat(name string, v float32)
	SetVec3(name string, v math.Vec3)
	SetUniformBlock(block string, data []float32) error
}

// Meshes creates and draws named meshes.
type Meshes interface {
	CreateSphere(name string, radius float32, precision int) error
	Draw(name string) error
}

// Device is the slice of raw GL state the controller touches.
type Device interface {
	Clear()
	Viewport(width, height int)
	PolygonMode(wireframe bool)
}

// TextOverlay draws screen-space text.
type TextOverlay interface {
	SetScreenSize(width, height int)
	SetColour(r, g, b float32)
	RenderText(x, y float32, text string) error
}

// Redrawer schedules a repaint.
type Redrawer interface {
	Update()
}

// ColorDialog asks the user for a colour. It reports false when the user
// cancelled or has not confirmed a colour yet.
type ColorDialog interface {
	GetColor(initial Color) (Color, bool)
}

// Deps bundles the collaborators handed to New.
type Deps struct {
	Shaders Shaders
	Meshes  Meshes
	Device  Device
	Text    TextOverlay
	Redraw  Redrawer
	Dialog  ColorDialog
}

func (d Deps) validate() error {
	switch {
	case d.Shaders == nil:
		return errors.New("scene: nil Shaders")
	case d.Meshes == nil:
		return errors.New("scene: nil Meshes")
	case d.Device == nil:
		return errors.New("scene: nil Device")
	case d.Text == nil:
		return errors.New("scene: nil TextOverlay")
	case d.Redraw == nil:
		return errors.New("scene: nil Redrawer")
	case d.Dialog == nil:
		return errors.New("scene: nil ColorDialog")
	}
	return nil
}
