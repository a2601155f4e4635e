package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/primview/internal/engine/scene"
	"github.com/Faultbox/primview/internal/logger"
	"github.com/Faultbox/primview/pkg/math"
)

// Controls is the part of the scene controller the panel drives.
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
	Position() math.Vec3
	Wireframe() bool
	Object() scene.ObjectKind
	Albedo() scene.Color
}

type slider struct {
	group    string
	label    string
	min, max float32
	value    float32
	set      func(Controls, float32)
	get      func(Controls) float32
}

func newSliders() []slider {
	return []slider{
		{group: "Rotation", label: "X##rot", min: -360, max: 360, set: Controls.SetXRotation, get: func(c Controls) float32 { return c.Rotation().X }},
		{group: "Rotation", label: "Y##rot", min: -360, max: 360, set: Controls.SetYRotation, get: func(c Controls) float32 { return c.Rotation().Y }},
		{group: "Rotation", label: "Z##rot", min: -360, max: 360, set: Controls.SetZRotation, get: func(c Controls) float32 { return c.Rotation().Z }},
		{group: "Scale", label: "X##scale", min: 0.1, max: 4, set: Controls.SetXScale, get: func(c Controls) float32 { return c.Scale().X }},
		{group: "Scale", label: "Y##scale", min: 0.1, max: 4, set: Controls.SetYScale, get: func(c Controls) float32 { return c.Scale().Y }},
		{group: "Scale", label: "Z##scale", min: 0.1, max: 4, set: Controls.SetZScale, get: func(c Controls) float32 { return c.Scale().Z }},
		{group: "Position", label: "X##pos", min: -3, max: 3, set: Controls.SetXPosition, get: func(c Controls) float32 { return c.Position().X }},
		{group: "Position", label: "Y##pos", min: -3, max: 3, set: Controls.SetYPosition, get: func(c Controls) float32 { return c.Position().Y }},
		{group: "Position", label: "Z##pos", min: -3, max: 3, set: Controls.SetZPosition, get: func(c Controls) float32 { return c.Position().Z }},
	}
}

var objectLabels = []string{"Teapot", "Sphere", "Cube"}

// Panel is the control window: transform sliders, wireframe, object
// selection, colour and the optional action buttons.
type Panel struct {
	sliders   []slider
	wireframe bool
	object    int

	dialog       *PopupColorDialog
	OnScreenshot func()
	OnSave       func()
	OnReload     func()
	Status       string

	log *zap.Logger
}

// NewPanel creates a panel mirroring the controller's current state.
func NewPanel(c Controls, dialog *PopupColorDialog) *Panel {
	p := &Panel{
		sliders: newSliders(),
		dialog:  dialog,
		log:     logger.Named("ui"),
	}
	p.Sync(c)
	return p
}

// Sync copies the controller state into the widgets, for changes made
// outside the panel such as keyboard shortcuts.
func (p *Panel) Sync(c Controls) {
	for i := range p.sliders {
		p.sliders[i].value = p.sliders[i].get(c)
	}
	p.wireframe = c.Wireframe()
	p.object = int(c.Object())
}

// Draw renders the panel contents into the current ImGui window.
func (p *Panel) Draw(c Controls) {
	group := ""
	for i := range p.sliders {
		s := &p.sliders[i]
		if s.group != group {
			if group != "" {
				imgui.Spacing()
			}
			group = s.group
			imgui.Text(group)
		}
		if imgui.SliderFloatV(s.label, &s.value, s.min, s.max, "%.2f", imgui.SliderFlagsNone) {
			s.set(c, s.value)
		}
	}

	imgui.Separator()
	if imgui.Checkbox("Wireframe", &p.wireframe) {
		c.ToggleWireframe(p.wireframe)
	}

	imgui.Text("Object")
	for i, label := range objectLabels {
		if imgui.SelectableBoolV(label, p.object == i, 0, imgui.NewVec2(0, 0)) && p.object != i {
			p.selectObject(c, i)
		}
	}

	imgui.Separator()
	albedo := c.Albedo()
	imgui.TextColored(imgui.NewVec4(albedo.R, albedo.G, albedo.B, 1), "Albedo")
	imgui.SameLine()
	if imgui.Button("Colour...") {
		p.dialog.Open(albedo)
	}
	if p.dialog.Draw() {
		c.SetColour()
	}

	if p.OnScreenshot != nil {
		imgui.SameLine()
		if imgui.Button("Screenshot") {
			p.OnScreenshot()
		}
	}

	if p.OnSave != nil || p.OnReload != nil {
		imgui.Separator()
	}
	if p.OnSave != nil && imgui.Button("Save settings") {
		p.OnSave()
	}
	if p.OnReload != nil {
		if p.OnSave != nil {
			imgui.SameLine()
		}
		if imgui.Button("Reload shaders") {
			p.OnReload()
		}
	}

	if p.Status != "" {
		imgui.Separator()
		imgui.TextDisabled(p.Status)
	}
}

func (p *Panel) selectObject(c Controls, i int) {
	if err := c.SetObjectMode(i); err != nil {
		p.log.Warn("object not selected", zap.Int("index", i), zap.Error(err))
		return
	}
	p.object = i
	p.log.Debug("object selected", zap.String("object", objectLabels[i]))
}

// Title is the window title with the selected object appended.
func Title(base string, c Controls) string {
	return fmt.Sprintf("%s - %s", base, c.Object())
}

// Stats formats a one-line summary of the controller state.
func Stats(c Controls) string {
	r, s, t := c.Rotation(), c.Scale(), c.Position()
	return fmt.Sprintf("%s  rot(%.0f %.0f %.0f)  scale(%.2f %.2f %.2f)  pos(%.2f %.2f %.2f)",
		c.Object(), r.X, r.Y, r.Z, s.X, s.Y, s.Z, t.X, t.Y, t.Z)
}
