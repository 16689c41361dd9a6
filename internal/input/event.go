package input

import (
	"image"

	"github.com/dshills/uirouter/internal/input/key"
	"github.com/dshills/uirouter/internal/input/mouse"
)

// Event is implemented by every raw input event.
type Event interface {
	inputEvent()
}

// MouseButtonDown is sent when a mouse button is pressed.
type MouseButtonDown struct {
	Button   mouse.Button
	Position image.Point
}

// MouseButtonUp is sent when a mouse button is released.
type MouseButtonUp struct {
	Button   mouse.Button
	Position image.Point
}

// MouseMove is sent when the cursor moves.
type MouseMove struct {
	Position image.Point
}

// MouseWheel is sent when the wheel turns. Positive Delta scrolls away
// from the user.
type MouseWheel struct {
	Delta    int
	Position image.Point
}

// TouchBegin is sent when a finger touches the screen.
type TouchBegin struct {
	ID       int
	Position image.Point
}

// TouchMove is sent when a finger moves.
type TouchMove struct {
	ID       int
	Position image.Point
}

// TouchEnd is sent when a finger is lifted.
type TouchEnd struct {
	ID       int
	Position image.Point
}

// KeyDown is sent when a key is pressed.
type KeyDown struct {
	Key        key.Code
	Scancode   int
	Qualifiers key.Qualifier
}

// KeyUp is sent when a key is released.
type KeyUp struct {
	Key        key.Code
	Scancode   int
	Qualifiers key.Qualifier
}

// TextInput carries committed text.
type TextInput struct {
	Text string
}

func (MouseButtonDown) inputEvent() {}
func (MouseButtonUp) inputEvent()   {}
func (MouseMove) inputEvent()       {}
func (MouseWheel) inputEvent()      {}
func (TouchBegin) inputEvent()      {}
func (TouchMove) inputEvent()       {}
func (TouchEnd) inputEvent()        {}
func (KeyDown) inputEvent()         {}
func (KeyUp) inputEvent()           {}
func (TextInput) inputEvent()       {}
