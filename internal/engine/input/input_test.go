package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		event  sdl.Event
		want   Event
		wantOK bool
	}{
		{
			name:   "quit",
			event:  &sdl.QuitEvent{Type: sdl.QUIT},
			want:   Event{Type: EventQuit},
			wantOK: true,
		},
		{
			name:   "resize",
			event:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			want:   Event{Type: EventWindowResize, Width: 800, Height: 600},
			wantOK: true,
		},
		{
			name:  "window focus ignored",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED},
		},
		{
			name:   "key down",
			event:  &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
			want:   Event{Type: EventKeyDown, Key: sdl.SCANCODE_W},
			wantOK: true,
		},
		{
			name:   "key up",
			event:  &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_1}},
			want:   Event{Type: EventKeyUp, Key: sdl.SCANCODE_1},
			wantOK: true,
		},
		{
			name:   "mouse move",
			event:  &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20},
			want:   Event{Type: EventMouseMove, MouseX: 10, MouseY: 20},
			wantOK: true,
		},
		{
			name:   "mouse down",
			event:  &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 5, Y: 6},
			want:   Event{Type: EventMouseDown, Button: sdl.BUTTON_LEFT, MouseX: 5, MouseY: 6},
			wantOK: true,
		},
		{
			name:   "mouse up",
			event:  &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT, X: 7, Y: 8},
			want:   Event{Type: EventMouseUp, Button: sdl.BUTTON_RIGHT, MouseX: 7, MouseY: 8},
			wantOK: true,
		},
		{
			name:   "wheel",
			event:  &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2},
			want:   Event{Type: EventMouseWheel, Wheel: 2},
			wantOK: true,
		},
		{
			name:   "flipped wheel",
			event:  &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED},
			want:   Event{Type: EventMouseWheel, Wheel: -1},
			wantOK: true,
		},
		{
			name:  "horizontal wheel ignored",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.event)
			if ok != tt.wantOK {
				t.Fatalf("Translate() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsKeyPressed(t *testing.T) {
	in := New()
	in.events = append(in.events,
		Event{Type: EventKeyUp, Key: sdl.SCANCODE_A},
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_W},
	)

	if !in.IsKeyPressed(sdl.SCANCODE_W) {
		t.Error("W should be pressed")
	}
	if in.IsKeyPressed(sdl.SCANCODE_A) {
		t.Error("A was released, not pressed")
	}
}
