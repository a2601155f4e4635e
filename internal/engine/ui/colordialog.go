package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/primview/internal/engine/scene"
)

const colourPopupID = "Choose colour"

// PopupColorDialog is a modal colour picker. ImGui is immediate mode, so
// the modal cannot block: the panel opens it, draws it every frame and,
// once the user presses OK or Cancel, asks the controller to pick up the
// answer through GetColor.
type PopupColorDialog struct {
	requested bool
	working   [3]float32

	result    scene.Color
	confirmed bool
}

// NewPopupColorDialog creates a closed dialog.
func NewPopupColorDialog() *PopupColorDialog {
	return &PopupColorDialog{}
}

// Open shows the picker on the next Draw, starting from initial.
func (d *PopupColorDialog) Open(initial scene.Color) {
	d.working = [3]float32{initial.R, initial.G, initial.B}
	d.requested = true
	d.confirmed = false
}

// Draw renders the modal. It returns true on the frame the user closes it.
func (d *PopupColorDialog) Draw() (closed bool) {
	if d.requested {
		imgui.OpenPopupStr(colourPopupID)
		d.requested = false
	}

	if !imgui.BeginPopupModalV(colourPopupID, nil, imgui.WindowFlagsAlwaysAutoResize) {
		return false
	}
	defer imgui.EndPopup()

	imgui.ColorPicker3("##albedo", &d.working)

	if imgui.ButtonV("OK", imgui.NewVec2(120, 0)) {
		d.confirm()
		imgui.CloseCurrentPopup()
		return true
	}
	imgui.SameLine()
	if imgui.ButtonV("Cancel", imgui.NewVec2(120, 0)) || IsKeyPressed(imgui.KeyEscape) {
		d.cancel()
		imgui.CloseCurrentPopup()
		return true
	}
	return false
}

func (d *PopupColorDialog) confirm() {
	d.result = scene.Color{R: d.working[0], G: d.working[1], B: d.working[2]}
	d.confirmed = true
}

func (d *PopupColorDialog) cancel() {
	d.confirmed = false
}

// GetColor returns the colour confirmed in the last closed modal. A
// confirmation is consumed by the call that reads it.
func (d *PopupColorDialog) GetColor(initial scene.Color) (scene.Color, bool) {
	if !d.confirmed {
		return initial, false
	}
	d.confirmed = false
	return d.result, true
}
