// Package scene defines what the router needs from the 3D scene: cameras
// that turn normalized screen positions into rays, spatial indexes that
// answer nearest-hit ray queries with texture coordinates, and the display
// size.
//
// The engine normally provides these. PerspectiveCamera, Mesh and Index are
// small reference implementations built on mathgl; they are enough to
// project a widget surface onto a quad for tests and the demo.
package scene
