// Package surface keeps track of off-screen widget surfaces and resolves
// screen positions to the widget root that should receive them.
//
// An off-screen surface is a widget tree rendered to a texture that is
// shown on scene geometry. Routing a screen position to it means casting a
// ray from the surface camera and checking that the nearest hit is the
// surface's own drawable; the hit's texture coordinate then gives the
// position inside the surface.
package surface
