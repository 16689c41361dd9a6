package scene

import "github.com/go-gl/mathgl/mgl32"

// PerspectiveCamera is a pinhole camera.
type PerspectiveCamera struct {
	Eye, Center, Up mgl32.Vec3
	// FovY is the vertical field of view in degrees.
	FovY      float32
	Aspect    float32
	Near, Far float32
}

// NewPerspectiveCamera creates a camera at eye looking at center.
func NewPerspectiveCamera(eye, center mgl32.Vec3, fovY, aspect float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		Eye:    eye,
		Center: center,
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   fovY,
		Aspect: aspect,
		Near:   0.1,
		Far:    1000,
	}
}

// ViewProjection returns projection * view.
func (c *PerspectiveCamera) ViewProjection() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
	view := mgl32.LookAtV(c.Eye, c.Center, c.Up)
	return proj.Mul4(view)
}

// ScreenRay implements Camera. The ray starts at the eye, so hit
// distances are measured from the camera position.
func (c *PerspectiveCamera) ScreenRay(x, y float32) Ray {
	inv := c.ViewProjection().Inv()

	ndcX := 2*x - 1
	ndcY := 1 - 2*y

	far := unproject(inv, mgl32.Vec4{ndcX, ndcY, 1, 1})

	return Ray{Origin: c.Eye, Direction: far.Sub(c.Eye).Normalize()}
}

func unproject(inv mgl32.Mat4, clip mgl32.Vec4) mgl32.Vec3 {
	p := inv.Mul4x1(clip)
	return p.Vec3().Mul(1 / p.W())
}
