package router

import (
	"time"

	"github.com/dshills/uirouter/internal/event"
	"github.com/dshills/uirouter/internal/logging"
	"github.com/dshills/uirouter/internal/platform"
	"github.com/dshills/uirouter/internal/scene"
	"github.com/dshills/uirouter/internal/surface"
	"github.com/dshills/uirouter/internal/widget"
)

// Option configures a Router.
type Option func(*Router)

// WithRegistry routes through an existing surface registry.
func WithRegistry(reg *surface.Registry) Option {
	return func(r *Router) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// WithDisplay sets the display used to normalize positions for
// fullscreen surfaces.
func WithDisplay(d scene.Display) Option {
	return func(r *Router) {
		r.display = d
	}
}

// WithFocus sets the source of the focused widget.
func WithFocus(f widget.Focus) Option {
	return func(r *Router) {
		r.focus = f
	}
}

// WithBus sets the bus notifications are published on.
func WithBus(b *event.Bus) Option {
	return func(r *Router) {
		r.bus = b
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithPlatform selects the keyboard conventions of a platform family.
func WithPlatform(f platform.Family) Option {
	return func(r *Router) {
		r.family = f
	}
}

// WithClickInterval sets the multi-click interval.
func WithClickInterval(d time.Duration) Option {
	return func(r *Router) {
		r.clickInterval = d
	}
}

// WithClock replaces time.Now for click counting.
func WithClock(now func() time.Time) Option {
	return func(r *Router) {
		if now != nil {
			r.now = now
		}
	}
}
