package app

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/primview/internal/engine/input"
	"github.com/Faultbox/primview/internal/engine/scene"
	"github.com/Faultbox/primview/internal/logger"
	"github.com/Faultbox/primview/pkg/math"
)

const (
	rotateStep = 15  // degrees per key press
	scaleStep  = 0.1 // uniform scale per key press
	minScale   = 0.1
)

// Action is what the frame loop must do after a key press.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionScreenshot
	ActionReloadShaders
	ActionSaveSettings
)

// Controls is the controller surface the keyboard and mouse bindings use.
type Controls interface {
	SetXRotation(float32)
	SetYRotation(float32)
	SetZRotation(float32)
	SetXScale(float32)
	SetYScale(float32)
	SetZScale(float32)
	SetXPosition(float32)
	SetYPosition(float32)
	SetZPosition(float32)
	ToggleWireframe(bool)
	SetObjectMode(int) error
	SetColour()

	Rotation() math.Vec3
	Scale() math.Vec3
	Wireframe() bool

	MousePress(button scene.MouseButton, x, y int)
	MouseMove(x, y int)
	MouseRelease(button scene.MouseButton)
	Wheel(delta float32)
}

// HandleKey applies a keyboard shortcut:
//
//	1 2 3      teapot, sphere, cube
//	W          wireframe on/off
//	arrows     rotate about X (up/down) and Y (left/right)
//	Q E        rotate about Z
//	+ -        uniform scale
//	R          reset the transform
//	C          next palette colour
//	S          save object, fill mode and colour to the config file
//	F5         reload shaders
//	F12        screenshot
//	Esc        quit
func HandleKey(c Controls, key sdl.Scancode) Action {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		return ActionQuit
	case sdl.SCANCODE_F12:
		return ActionScreenshot
	case sdl.SCANCODE_F5:
		return ActionReloadShaders
	case sdl.SCANCODE_S:
		return ActionSaveSettings

	case sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3:
		if err := c.SetObjectMode(int(key - sdl.SCANCODE_1)); err != nil {
			logger.Warn("object not selected", zap.Error(err))
		}
	case sdl.SCANCODE_W:
		c.ToggleWireframe(!c.Wireframe())
	case sdl.SCANCODE_C:
		c.SetColour()

	case sdl.SCANCODE_UP:
		c.SetXRotation(c.Rotation().X - rotateStep)
	case sdl.SCANCODE_DOWN:
		c.SetXRotation(c.Rotation().X + rotateStep)
	case sdl.SCANCODE_LEFT:
		c.SetYRotation(c.Rotation().Y - rotateStep)
	case sdl.SCANCODE_RIGHT:
		c.SetYRotation(c.Rotation().Y + rotateStep)
	case sdl.SCANCODE_Q:
		c.SetZRotation(c.Rotation().Z + rotateStep)
	case sdl.SCANCODE_E:
		c.SetZRotation(c.Rotation().Z - rotateStep)

	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		scaleBy(c, scaleStep)
	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		scaleBy(c, -scaleStep)

	case sdl.SCANCODE_R:
		reset(c)
	}
	return ActionNone
}

func scaleBy(c Controls, step float32) {
	s := c.Scale()
	c.SetXScale(max(s.X+step, minScale))
	c.SetYScale(max(s.Y+step, minScale))
	c.SetZScale(max(s.Z+step, minScale))
}

func reset(c Controls) {
	c.SetXRotation(0)
	c.SetYRotation(0)
	c.SetZRotation(0)
	c.SetXScale(1)
	c.SetYScale(1)
	c.SetZScale(1)
	c.SetXPosition(0)
	c.SetYPosition(0)
	c.SetZPosition(0)
}

// HandleMouse forwards pointer events to the controller.
func HandleMouse(c Controls, ev input.Event) {
	switch ev.Type {
	case input.EventMouseDown:
		if b, ok := sceneButton(ev.Button); ok {
			c.MousePress(b, ev.MouseX, ev.MouseY)
		}
	case input.EventMouseUp:
		if b, ok := sceneButton(ev.Button); ok {
			c.MouseRelease(b)
		}
	case input.EventMouseMove:
		c.MouseMove(ev.MouseX, ev.MouseY)
	case input.EventMouseWheel:
		c.Wheel(ev.Wheel)
	}
}

func sceneButton(b uint8) (scene.MouseButton, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return scene.MouseLeft, true
	case sdl.BUTTON_MIDDLE:
		return scene.MouseMiddle, true
	case sdl.BUTTON_RIGHT:
		return scene.MouseRight, true
	}
	return 0, false
}
