package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is a textured triangle in world space.
type Triangle struct {
	V  [3]mgl32.Vec3
	UV [3]mgl32.Vec2
}

// epsilon widens the inside test so rays along a shared edge hit one of
// the two triangles.
const epsilon = 1e-5

// intersect implements Möller–Trumbore. It returns the distance along the
// ray and the barycentric coordinates of the hit.
func (tri Triangle) intersect(r Ray) (t, u, v float32, ok bool) {
	e1 := tri.V[1].Sub(tri.V[0])
	e2 := tri.V[2].Sub(tri.V[0])

	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if float32(math.Abs(float64(det))) < epsilon {
		return 0, 0, 0, false
	}
	invDet := 1 / det

	s := r.Origin.Sub(tri.V[0])
	u = s.Dot(p) * invDet
	if u < -epsilon || u > 1+epsilon {
		return 0, 0, 0, false
	}

	q := s.Cross(e1)
	v = r.Direction.Dot(q) * invDet
	if v < -epsilon || u+v > 1+epsilon {
		return 0, 0, 0, false
	}

	t = e2.Dot(q) * invDet
	if t < epsilon {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// uvAt interpolates the texture coordinate for barycentric (u, v).
func (tri Triangle) uvAt(u, v float32) mgl32.Vec2 {
	w := 1 - u - v
	return tri.UV[0].Mul(w).Add(tri.UV[1].Mul(u)).Add(tri.UV[2].Mul(v))
}

// Mesh is a named triangle soup.
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// DrawableName implements Drawable.
func (m *Mesh) DrawableName() string {
	return m.Name
}

// NewQuad builds a two-triangle quad from its corners in the order
// top-left, top-right, bottom-right, bottom-left. Texture coordinates run
// from (0,0) at the top left to (1,1) at the bottom right.
func NewQuad(name string, tl, tr, br, bl mgl32.Vec3) *Mesh {
	uvTL := mgl32.Vec2{0, 0}
	uvTR := mgl32.Vec2{1, 0}
	uvBR := mgl32.Vec2{1, 1}
	uvBL := mgl32.Vec2{0, 1}

	return &Mesh{
		Name: name,
		Triangles: []Triangle{
			{V: [3]mgl32.Vec3{tl, tr, br}, UV: [3]mgl32.Vec2{uvTL, uvTR, uvBR}},
			{V: [3]mgl32.Vec3{tl, br, bl}, UV: [3]mgl32.Vec2{uvTL, uvBR, uvBL}},
		},
	}
}

// raycast returns the nearest hit on the mesh.
func (m *Mesh) raycast(r Ray) (Hit, bool) {
	best := Hit{Distance: float32(math.Inf(1))}
	found := false
	for _, tri := range m.Triangles {
		t, u, v, ok := tri.intersect(r)
		if !ok || t >= best.Distance {
			continue
		}
		best = Hit{
			Drawable: m,
			Distance: t,
			Position: r.At(t),
			UV:       tri.uvAt(u, v),
		}
		found = true
	}
	return best, found
}
