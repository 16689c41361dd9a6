// Package app wires the input router to a terminal for interactive use.
//
// The terminal's left half is the main widget root; the right half shows
// an off-screen surface projected onto a quad in a small scene. Every
// widget call the router makes and every notification it publishes is
// listed on screen, which makes the routing decisions visible.
package app
