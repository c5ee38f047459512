package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{
			"resize",
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600}, true,
		},
		{"window focus", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED}, Event{}, false},
		{
			"key down",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F6}},
			Event{Type: EventKeyDown, Key: sdl.SCANCODE_F6}, true,
		},
		{
			"key repeat",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F6}},
			Event{Type: EventKeyDown, Key: sdl.SCANCODE_F6, Repeat: true}, true,
		},
		{
			"key up",
			&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F7}},
			Event{Type: EventKeyUp, Key: sdl.SCANCODE_F7}, true,
		},
		{
			"motion",
			&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 100, Y: 200, XRel: 3, YRel: -2},
			Event{Type: EventMouseMove, DeltaX: 3, DeltaY: -2}, true,
		},
		{"wheel", &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -1}, Event{Type: EventMouseWheel, DeltaY: -1}, true},
		{"button ignored", &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT}, Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDeltas(t *testing.T) {
	in := New()
	in.events = append(in.events,
		Event{Type: EventMouseMove, DeltaX: 2, DeltaY: 1},
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_F5},
		Event{Type: EventMouseMove, DeltaX: -5, DeltaY: 4},
		Event{Type: EventMouseWheel, DeltaY: 1},
		Event{Type: EventMouseWheel, DeltaY: 2},
	)

	if dx, dy := in.MouseDelta(); dx != -3 || dy != 5 {
		t.Errorf("MouseDelta() = %d, %d, want -3, 5", dx, dy)
	}
	if d := in.WheelDelta(); d != 3 {
		t.Errorf("WheelDelta() = %d, want 3", d)
	}
}
