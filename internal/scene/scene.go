package scene

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half line.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Drawable is a piece of scene geometry.
type Drawable interface {
	DrawableName() string
}

// Hit is the result of a ray query.
type Hit struct {
	Drawable Drawable
	Distance float32
	Position mgl32.Vec3
	// UV is the interpolated texture coordinate at the hit.
	UV mgl32.Vec2
}

// Camera projects normalized screen positions into the scene.
type Camera interface {
	// ScreenRay returns the ray through (x, y), both in [0,1] with the
	// origin at the top left.
	ScreenRay(x, y float32) Ray
}

// SpatialIndex answers ray queries.
type SpatialIndex interface {
	// RaycastSingle returns the nearest hit along the ray.
	RaycastSingle(ray Ray) (Hit, bool)
}

// Display reports the size of the output in pixels.
type Display interface {
	Size() (width, height int)
}

// FixedDisplay is a Display of constant size.
type FixedDisplay struct {
	Width, Height int
}

// Size implements Display.
func (d FixedDisplay) Size() (int, int) {
	return d.Width, d.Height
}
