package router

import (
	"image"

	"github.com/dshills/uirouter/internal/input/key"
	"github.com/dshills/uirouter/internal/input/mouse"
	"github.com/dshills/uirouter/internal/surface"
	"github.com/dshills/uirouter/internal/widget"
)

type touchPhase int

const (
	touchBegin touchPhase = iota
	touchMove
	touchEnd
)

func (r *Router) mouseButton(b mouse.Button, pos image.Point, down bool) {
	if r.pointerBlocked() {
		return
	}

	target, ok := r.resolve(pos)
	if !ok {
		return
	}
	ev := widget.PointerEvent{
		X:         target.Pos.X,
		Y:         target.Pos.Y,
		Modifiers: r.modifiers(),
	}

	if down {
		ev.Count = r.clicks.Record(r.now())
	}
	r.logger.Debug("%s %v at %v -> %v", pressName(down), b, pos, target.Pos)

	switch {
	case b.IsSecondary() && down:
		target.Root.RightPointerDown(ev)
	case b.IsSecondary():
		target.Root.RightPointerUp(ev)
	case down:
		target.Root.PointerDown(ev)
	default:
		target.Root.PointerUp(ev)
	}
}

func (r *Router) mouseMove(pos image.Point) {
	if r.pointerBlocked() {
		return
	}

	target, ok := r.resolve(pos)
	if !ok {
		return
	}
	target.Root.PointerMove(widget.PointerEvent{
		X:         target.Pos.X,
		Y:         target.Pos.Y,
		Modifiers: r.modifiers(),
	})
	r.hoverTime = 0
}

func (r *Router) mouseWheel(delta int, pos image.Point) {
	if r.pointerBlocked() {
		return
	}

	target, ok := r.resolve(pos)
	if !ok {
		return
	}
	// Positive engine deltas scroll away from the user; the toolkit's
	// positive direction is down.
	target.Root.Wheel(widget.WheelEvent{
		X:         target.Pos.X,
		Y:         target.Pos.Y,
		DeltaY:    -delta,
		Modifiers: r.modifiers(),
	})
}

func (r *Router) touch(id int, pos image.Point, phase touchPhase) {
	if r.pointerBlocked() {
		return
	}

	target, ok := r.resolve(pos)
	if !ok {
		return
	}
	ev := widget.PointerEvent{
		X:         target.Pos.X,
		Y:         target.Pos.Y,
		Modifiers: key.ModNone,
		Touch:     true,
		TouchID:   id,
	}

	switch phase {
	case touchBegin:
		ev.Count = r.clicks.Record(r.now())
		target.Root.PointerDown(ev)
	case touchMove:
		target.Root.PointerMove(ev)
	case touchEnd:
		target.Root.PointerUp(ev)
	}
}

// resolve returns the target for pos. It fails only when no main root
// was given.
func (r *Router) resolve(pos image.Point) (surface.Target, bool) {
	target := r.resolver.Resolve(pos)
	return target, target.Root != nil
}

func pressName(down bool) string {
	if down {
		return "press"
	}
	return "release"
}
