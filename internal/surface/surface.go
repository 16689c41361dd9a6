package surface

import (
	"errors"
	"image"

	"github.com/dshills/uirouter/internal/scene"
	"github.com/dshills/uirouter/internal/widget"
)

// Registry errors.
var (
	// ErrNilSurface is returned when registering a nil surface.
	ErrNilSurface = errors.New("surface cannot be nil")

	// ErrAlreadyRegistered is returned when a surface is registered twice.
	ErrAlreadyRegistered = errors.New("surface already registered")
)

// Surface is an off-screen widget tree displayed on scene geometry.
type Surface struct {
	// Name identifies the surface in logs.
	Name string

	// Rect limits the screen area that can hit the surface. The zero
	// rectangle means the whole display.
	Rect image.Rectangle

	Camera   scene.Camera
	Index    scene.SpatialIndex
	Drawable scene.Drawable

	// Width and Height are the surface size in pixels.
	Width, Height int

	// Root is the surface's own widget root.
	Root widget.Root
}

// Eligible reports whether the surface can take part in hit testing and
// receive events.
func (s *Surface) Eligible() bool {
	return s.Camera != nil && s.Index != nil && s.Drawable != nil && s.Root != nil
}

// Fullscreen reports whether the surface uses the whole display as its
// input rectangle.
func (s *Surface) Fullscreen() bool {
	return s.Rect == image.Rectangle{}
}

// Accepts reports whether p lies in the surface's input rectangle.
func (s *Surface) Accepts(p image.Point) bool {
	return s.Fullscreen() || p.In(s.Rect)
}

// pixel converts a texture coordinate into surface pixels.
func (s *Surface) pixel(u, v float32) image.Point {
	return image.Point{
		X: clamp(int(u*float32(s.Width)), s.Width),
		Y: clamp(int(v*float32(s.Height)), s.Height),
	}
}

func clamp(v, size int) int {
	if v >= size {
		v = size - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Registry is an ordered set of surfaces. It holds references only; the
// surfaces are owned by whoever registers them.
type Registry struct {
	surfaces []*Surface
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a surface.
func (r *Registry) Register(s *Surface) error {
	if s == nil {
		return ErrNilSurface
	}
	for _, existing := range r.surfaces {
		if existing == s {
			return ErrAlreadyRegistered
		}
	}
	r.surfaces = append(r.surfaces, s)
	return nil
}

// Unregister removes a surface and reports whether it was registered.
func (r *Registry) Unregister(s *Surface) bool {
	for i, existing := range r.surfaces {
		if existing == s {
			r.surfaces = append(r.surfaces[:i], r.surfaces[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered surfaces.
func (r *Registry) Len() int {
	return len(r.surfaces)
}

// Eligible returns the surfaces that can take part in hit testing, in
// registration order.
func (r *Registry) Eligible() []*Surface {
	var out []*Surface
	for _, s := range r.surfaces {
		if s.Eligible() {
			out = append(out, s)
		}
	}
	return out
}
