package router

import (
	"context"
	"time"

	"github.com/dshills/uirouter/internal/config"
	"github.com/dshills/uirouter/internal/event"
	"github.com/dshills/uirouter/internal/input"
	"github.com/dshills/uirouter/internal/input/key"
	"github.com/dshills/uirouter/internal/input/mouse"
	"github.com/dshills/uirouter/internal/logging"
	"github.com/dshills/uirouter/internal/platform"
	"github.com/dshills/uirouter/internal/scene"
	"github.com/dshills/uirouter/internal/shortcut"
	"github.com/dshills/uirouter/internal/surface"
	"github.com/dshills/uirouter/internal/widget"
)

// source identifies the router in published event metadata.
const source = "router"

// Router routes engine input to widget roots.
type Router struct {
	registry *surface.Registry
	resolver *surface.Resolver
	display  scene.Display
	main     widget.Root
	focus    widget.Focus
	state    input.State
	bus      *event.Bus
	logger   *logging.Logger
	now      func() time.Time

	family        platform.Family // requested by WithPlatform
	table         *shortcut.Table
	clickInterval time.Duration
	clicks        *mouse.ClickCounter

	inputDisabled    bool
	keyboardDisabled bool
	consoleVisible   bool
	hoverTime        time.Duration
}

// New creates a router delivering to main, reading live modifier state
// from state.
func New(main widget.Root, state input.State, opts ...Option) *Router {
	r := &Router{
		registry: surface.NewRegistry(),
		main:     main,
		state:    state,
		logger:   logging.Null,
		now:      time.Now,
		family:   platform.Current(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.resolver = surface.NewResolver(r.registry, r.display, main)
	r.table = shortcut.ForPlatform(r.family)
	r.clicks = mouse.NewClickCounter(r.clickInterval)
	r.logger = r.logger.WithComponent("router")
	return r
}

// Registry returns the surface registry.
func (r *Router) Registry() *surface.Registry {
	return r.registry
}

// RegisterSurface adds an off-screen surface to hit testing.
func (r *Router) RegisterSurface(s *surface.Surface) error {
	if err := r.registry.Register(s); err != nil {
		return err
	}
	r.logger.Debug("registered surface %s", s.Name)
	return nil
}

// UnregisterSurface removes an off-screen surface.
func (r *Router) UnregisterSurface(s *surface.Surface) bool {
	ok := r.registry.Unregister(s)
	if ok {
		r.logger.Debug("unregistered surface %s", s.Name)
	}
	return ok
}

// Platform returns the platform family whose conventions are in effect.
func (r *Router) Platform() platform.Family {
	return r.table.Family()
}

// ClickCount returns the click count of the latest press.
func (r *Router) ClickCount() int {
	return r.clicks.Count()
}

// SetInputDisabled drops all input while disabled is true.
func (r *Router) SetInputDisabled(disabled bool) {
	r.inputDisabled = disabled
}

// SetKeyboardDisabled drops key and text input while disabled is true.
func (r *Router) SetKeyboardDisabled(disabled bool) {
	r.keyboardDisabled = disabled
}

// SetConsoleVisible drops all input while the console overlay is shown.
func (r *Router) SetConsoleVisible(visible bool) {
	r.consoleVisible = visible
}

// Update advances the tooltip hover timer by dt.
func (r *Router) Update(dt time.Duration) {
	r.hoverTime += dt
}

// HoverTime returns how long the pointer has rested since it last moved.
func (r *Router) HoverTime() time.Duration {
	return r.hoverTime
}

// ApplyConfig applies router settings. It may be called again after a
// configuration reload.
func (r *Router) ApplyConfig(cfg config.Router) {
	if f := cfg.Family(); f != r.Platform() {
		r.table = shortcut.ForPlatform(f)
	}
	r.clicks.SetInterval(time.Duration(cfg.ClickInterval))
	r.inputDisabled = cfg.InputDisabled
	r.keyboardDisabled = cfg.KeyboardDisabled
	r.logger.Info("applied config: platform=%s click_interval=%s", r.Platform(), r.clicks.Interval())
}

// Dispatch routes one input event.
func (r *Router) Dispatch(ev input.Event) {
	switch e := ev.(type) {
	case input.MouseButtonDown:
		r.mouseButton(e.Button, e.Position, true)
	case input.MouseButtonUp:
		r.mouseButton(e.Button, e.Position, false)
	case input.MouseMove:
		r.mouseMove(e.Position)
	case input.MouseWheel:
		r.mouseWheel(e.Delta, e.Position)
	case input.TouchBegin:
		r.touch(e.ID, e.Position, touchBegin)
	case input.TouchMove:
		r.touch(e.ID, e.Position, touchMove)
	case input.TouchEnd:
		r.touch(e.ID, e.Position, touchEnd)
	case input.KeyDown:
		r.keyDown(e)
	case input.KeyUp:
		r.keyUp(e)
	case input.TextInput:
		r.text(e.Text)
	default:
		r.logger.Debug("ignoring event %T", ev)
	}
}

func (r *Router) pointerBlocked() bool {
	return r.inputDisabled || r.consoleVisible
}

func (r *Router) keyboardBlocked() bool {
	return r.inputDisabled || r.keyboardDisabled || r.consoleVisible
}

// modifiers returns the live modifier set.
func (r *Router) modifiers() key.Modifier {
	if r.state == nil {
		return key.ModNone
	}
	return key.ModifiersFrom(r.state.Qualifiers(), r.superDown())
}

func (r *Router) superDown() bool {
	if r.state == nil {
		return false
	}
	return r.Platform().SuperDown(r.state.KeyDown)
}

func (r *Router) publish(ev event.TopicProvider) {
	if r.bus == nil {
		return
	}
	if err := r.bus.Publish(context.Background(), ev); err != nil {
		r.logger.Warn("publishing %s: %v", ev.EventTopic(), err)
	}
}
