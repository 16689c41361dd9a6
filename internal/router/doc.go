// Package router translates raw input events into widget toolkit calls.
//
// A Router receives mouse, touch, key and text events from the engine,
// finds the widget root under the pointer (the main root or an off-screen
// surface projected onto scene geometry), converts positions into that
// root's space and invokes it. Key presses are matched against the
// platform shortcut table first; recognised shortcuts go to the focused
// widget and unhandled ones are announced on the event bus.
//
// The router is not safe for concurrent use. It is meant to be driven from
// the same goroutine that runs the UI.
package router
