// Package camera provides the orbit camera driven by mouse drag and wheel.
package camera

import (
	gomath "math"

	"github.com/Faultbox/primview/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3
	Up     math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	PanSensitivity  float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Up:              math.Vec3{Y: 1},
		Distance:        3,
		RotationX:       0.5,
		MinDistance:     0.5,
		MaxDistance:     50,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.01,
		ZoomSensitivity: 0.1,
		PanSensitivity:  0.002,
	}
}

// FromEye creates a camera whose position is eye, looking at center.
func FromEye(eye, center, up math.Vec3) *OrbitCamera {
	c := NewOrbitCamera()
	c.Center = center
	c.Up = up

	d := eye.Sub(center)
	c.Distance = d.Length()
	if c.Distance == 0 {
		c.Distance = 1
		return c
	}
	c.RotationX = float32(gomath.Asin(float64(d.Y / c.Distance)))
	c.RotationY = float32(gomath.Atan2(float64(d.X), float64(d.Z)))
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	pitch, yaw := float64(c.RotationX), float64(c.RotationY)
	offset := math.Vec3{
		X: float32(gomath.Cos(pitch) * gomath.Sin(yaw)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Cos(pitch) * gomath.Cos(yaw)),
	}
	return c.Center.Add(offset.Scale(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, c.Up)
}

// HandleDrag updates rotation based on mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// HandlePan moves the center in the view plane by a mouse delta in pixels.
func (c *OrbitCamera) HandlePan(deltaX, deltaY float32) {
	forward := c.Center.Sub(c.Position()).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	// Speed scales with distance for consistent feel
	speed := c.Distance * c.PanSensitivity
	c.Center = c.Center.
		Sub(right.Scale(deltaX * speed)).
		Add(up.Scale(deltaY * speed))
}
