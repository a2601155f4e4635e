package camera

import (
	"testing"

	"github.com/Faultbox/primview/pkg/math"
)

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func TestFromEyeReproducesEye(t *testing.T) {
	eyes := []math.Vec3{
		{X: 0, Y: 2, Z: 2},
		{X: 3, Y: 1, Z: -4},
		{X: -1, Y: -0.5, Z: 0.25},
	}
	for _, eye := range eyes {
		c := FromEye(eye, math.Vec3{}, math.Vec3{Y: 1})
		got := c.Position()
		if !near(got.X, eye.X) || !near(got.Y, eye.Y) || !near(got.Z, eye.Z) {
			t.Errorf("FromEye(%v).Position() = %v", eye, got)
		}
	}
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	eye := math.Vec3{Y: 2, Z: 2}
	c := FromEye(eye, math.Vec3{}, math.Vec3{Y: 1})
	want := math.LookAt(eye, math.Vec3{}, math.Vec3{Y: 1})
	got := c.ViewMatrix()
	for i := range got {
		if !near(got[i], want[i]) {
			t.Fatalf("element %d: got %f want %f", i, got[i], want[i])
		}
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 1
	c.MinDistance = 0.5
	c.MaxDistance = 2

	for i := 0; i < 50; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != 0.5 {
		t.Errorf("zoom in should clamp to 0.5, got %f", c.Distance)
	}

	for i := 0; i < 50; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != 2 {
		t.Errorf("zoom out should clamp to 2, got %f", c.Distance)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch should clamp to %f, got %f", c.MaxPitch, c.RotationX)
	}
	c.HandleDrag(100, 0)
	if c.RotationY >= 0 {
		t.Errorf("dragging right should decrease yaw, got %f", c.RotationY)
	}
}

func TestHandlePanKeepsDistance(t *testing.T) {
	c := FromEye(math.Vec3{Y: 2, Z: 2}, math.Vec3{}, math.Vec3{Y: 1})
	before := c.Distance
	c.HandlePan(50, -20)

	if c.Center == (math.Vec3{}) {
		t.Error("pan should move the center")
	}
	if got := c.Position().Distance(c.Center); !near(got, before) {
		t.Errorf("pan changed the orbit distance: %f -> %f", before, got)
	}
}
