package surface

import (
	"image"

	"github.com/dshills/uirouter/internal/scene"
	"github.com/dshills/uirouter/internal/widget"
)

// Target is where a pointer event goes.
type Target struct {
	Root widget.Root
	// Surface is the off-screen surface hit, or nil for the main root.
	Surface *Surface
	// Pos is the position in the root's coordinate space.
	Pos image.Point
}

// Resolver maps screen positions to targets.
type Resolver struct {
	registry *Registry
	display  scene.Display
	main     widget.Root
}

// NewResolver creates a resolver over registry. Positions that hit no
// surface go to main unchanged.
func NewResolver(registry *Registry, display scene.Display, main widget.Root) *Resolver {
	return &Resolver{
		registry: registry,
		display:  display,
		main:     main,
	}
}

// Resolve returns the target for a screen position.
func (r *Resolver) Resolve(p image.Point) Target {
	if s, local, ok := r.Find(p); ok {
		return Target{Root: s.Root, Surface: s, Pos: local}
	}
	return Target{Root: r.main, Pos: p}
}

// Find returns the first surface, in registration order, whose drawable is
// the nearest geometry under p, along with the position inside it.
func (r *Resolver) Find(p image.Point) (*Surface, image.Point, bool) {
	for _, s := range r.registry.surfaces {
		if !s.Eligible() || !s.Accepts(p) {
			continue
		}

		x, y, ok := r.normalize(s, p)
		if !ok {
			continue
		}

		hit, ok := s.Index.RaycastSingle(s.Camera.ScreenRay(x, y))
		if !ok || hit.Drawable != s.Drawable {
			continue
		}

		return s, s.pixel(hit.UV.X(), hit.UV.Y()), true
	}
	return nil, image.Point{}, false
}

// normalize maps p into [0,1] relative to the surface rectangle, or to the
// display for fullscreen surfaces.
func (r *Resolver) normalize(s *Surface, p image.Point) (float32, float32, bool) {
	var w, h int
	if s.Fullscreen() {
		if r.display == nil {
			return 0, 0, false
		}
		w, h = r.display.Size()
	} else {
		w, h = s.Rect.Dx(), s.Rect.Dy()
	}
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}

	d := p.Sub(s.Rect.Min)
	return float32(d.X) / float32(w), float32(d.Y) / float32(h), true
}
