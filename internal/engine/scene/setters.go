package scene

import (
	"fmt"

	"go.uber.org/zap"
)

// ToggleWireframe switches between line and fill rasterization.
func (c *Controller) ToggleWireframe(mode bool) {
	c.wireframe = mode
	c.deps.Redraw.Update()
}

// SetXRotation sets the rotation about X in degrees.
func (c *Controller) SetXRotation(x float32) {
	c.rotation.X = x
	c.deps.Redraw.Update()
}

// SetYRotation sets the rotation about Y in degrees.
func (c *Controller) SetYRotation(y float32) {
	c.rotation.Y = y
	c.deps.Redraw.Update()
}

// SetZRotation sets the rotation about Z in degrees.
func (c *Controller) SetZRotation(z float32) {
	c.rotation.Z = z
	c.deps.Redraw.Update()
}

// SetXScale sets the scale factor along X.
func (c *Controller) SetXScale(x float32) {
	c.scale.X = x
	c.deps.Redraw.Update()
}

// SetYScale sets the scale factor along Y.
func (c *Controller) SetYScale(y float32) {
	c.scale.Y = y
	c.deps.Redraw.Update()
}

// SetZScale sets the scale factor along Z.
func (c *Controller) SetZScale(z float32) {
	c.scale.Z = z
	c.deps.Redraw.Update()
}

// SetXPosition sets the translation along X.
func (c *Controller) SetXPosition(x float32) {
	c.position.X = x
	c.deps.Redraw.Update()
}

// SetYPosition sets the translation along Y.
func (c *Controller) SetYPosition(y float32) {
	c.position.Y = y
	c.deps.Redraw.Update()
}

// SetZPosition sets the translation along Z.
func (c *Controller) SetZPosition(z float32) {
	c.position.Z = z
	c.deps.Redraw.Update()
}

// SetObjectMode selects the mesh: 0 teapot, 1 sphere, 2 cube.
// Any other index is rejected and leaves the selection as it was.
func (c *Controller) SetObjectMode(i int) error {
	kind := ObjectKind(i)
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidObject, i)
	}
	c.selected = kind
	c.log.Debug("object selected", zap.Stringer("object", kind))
	c.deps.Redraw.Update()
	return nil
}
