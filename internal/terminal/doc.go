// Package terminal turns tcell terminal events into router input events.
//
// Terminals report key presses but never releases, so every key becomes a
// press immediately followed by a release. Printable keys also produce a
// text input event, which is how the widget toolkit receives characters.
// Mouse buttons are reported as a button mask; presses and releases are
// derived from the changes between successive mask values.
package terminal
