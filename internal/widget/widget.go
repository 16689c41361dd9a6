// Package widget describes the entry points of the embedded widget toolkit
// the router drives.
//
// The toolkit itself lives outside this module. Root is the surface of a
// widget tree that accepts pointer and key input; Widget and Focus expose
// the focus chain shortcut delivery walks.
package widget

import (
	"github.com/dshills/uirouter/internal/input/key"
	"github.com/dshills/uirouter/internal/shortcut"
)

// PointerEvent is a synthesized pointer press, release or move in the
// coordinate space of the receiving root.
type PointerEvent struct {
	X, Y int
	// Count is the click count for presses; zero otherwise.
	Count     int
	Modifiers key.Modifier
	// Touch marks events produced by a finger; TouchID tells fingers apart.
	Touch   bool
	TouchID int
}

// WheelEvent is a synthesized scroll.
type WheelEvent struct {
	X, Y           int
	DeltaX, DeltaY int
	Modifiers      key.Modifier
}

// KeyEvent is a synthesized key press or release. Exactly one of Rune and
// Special is set.
type KeyEvent struct {
	Rune      rune
	Special   key.Special
	Modifiers key.Modifier
	Down      bool
}

// ShortcutEvent carries a recognised shortcut.
type ShortcutEvent struct {
	Command   shortcut.Command
	Modifiers key.Modifier
}

// Root is the input surface of a widget tree.
type Root interface {
	PointerDown(ev PointerEvent)
	PointerUp(ev PointerEvent)
	RightPointerDown(ev PointerEvent)
	RightPointerUp(ev PointerEvent)
	PointerMove(ev PointerEvent)
	Wheel(ev WheelEvent)
	// Key delivers a key event and reports whether the tree consumed it.
	Key(ev KeyEvent) bool
}

// Widget is a node of the focus chain.
type Widget interface {
	// Parent returns the enclosing widget, or nil at the top.
	Parent() Widget
	// HasDelegate reports whether an external delegate is attached.
	HasDelegate() bool
	// Shortcut delivers a shortcut and reports whether it was handled.
	Shortcut(ev ShortcutEvent) bool
}

// Focus reports the widget holding keyboard focus, or nil.
type Focus interface {
	Focused() Widget
}
