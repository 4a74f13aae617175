// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/scenery/internal/engine/camera"
)

// EventType is the kind of a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// cameraKeys maps scancodes to the camera controller's keys, in the order
// they are applied each frame.
var cameraKeys = []struct {
	code sdl.Scancode
	key  camera.Key
}{
	{sdl.SCANCODE_W, camera.KeyW},
	{sdl.SCANCODE_S, camera.KeyS},
	{sdl.SCANCODE_A, camera.KeyA},
	{sdl.SCANCODE_D, camera.KeyD},
	{sdl.SCANCODE_Q, camera.KeyQ},
	{sdl.SCANCODE_E, camera.KeyE},
	{sdl.SCANCODE_UP, camera.KeyUp},
	{sdl.SCANCODE_DOWN, camera.KeyDown},
	{sdl.SCANCODE_LEFT, camera.KeyLeft},
	{sdl.SCANCODE_RIGHT, camera.KeyRight},
}

// Input tracks this frame's events and the keys currently held.
type Input struct {
	events []Event
	held   []camera.Key
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make([]camera.Key, 0, len(cameraKeys)),
	}
}

// Update polls SDL events and refreshes the held key state.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			// Auto-repeat must not re-trigger toggles.
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}
		}
	}

	state := sdl.GetKeyboardState()
	i.held = i.held[:0]
	for _, ck := range cameraKeys {
		if int(ck.code) < len(state) && state[ck.code] != 0 {
			i.held = append(i.held, ck.key)
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// HeldCameraKeys returns the camera keys held down after the last Update.
func (i *Input) HeldCameraKeys() []camera.Key {
	return i.held
}

// IsKeyPressed reports whether scancode went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
