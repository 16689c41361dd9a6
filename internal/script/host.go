package script

import (
	"context"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/uirouter/internal/event"
	"github.com/dshills/uirouter/internal/event/events"
	"github.com/dshills/uirouter/internal/event/topic"
	"github.com/dshills/uirouter/internal/logging"
)

// DefaultTimeout bounds a single script run or callback.
const DefaultTimeout = time.Second

// Host owns a sandboxed Lua state wired to an event bus.
//
// The Lua state is not goroutine-safe; Host serializes every entry into it.
type Host struct {
	mu sync.Mutex

	L       *lua.LState
	bus     *event.Bus
	logger  *logging.Logger
	timeout time.Duration

	subs   []*event.Subscription
	closed bool
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger used by ui.log and for callback failures.
func WithLogger(l *logging.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithTimeout bounds each script run and callback.
func WithTimeout(d time.Duration) Option {
	return func(h *Host) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// New creates a host whose callbacks subscribe to bus.
func New(bus *event.Bus, opts ...Option) *Host {
	h := &Host{
		bus:     bus,
		logger:  logging.Null,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.WithComponent("script")

	h.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(h.L)
	h.installAPI()
	return h
}

// openSafeLibraries opens the libraries that cannot reach the host system.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func (h *Host) installAPI() {
	ui := h.L.SetFuncs(h.L.NewTable(), map[string]lua.LGFunction{
		"on_unhandled_shortcut": h.luaSubscribe(events.TopicShortcutUnhandled),
		"on_focus_escaped":      h.luaSubscribe(events.TopicFocusEscaped),
		"on_global_shortcut":    h.luaSubscribe(events.TopicShortcutGlobal),
		"log":                   h.luaLog,
	})
	h.L.SetGlobal("ui", ui)
}

// DoFile runs the script at path.
func (h *Host) DoFile(path string) error {
	return h.run(func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

// DoString runs a chunk of Lua code.
func (h *Host) DoString(code string) error {
	return h.run(func(L *lua.LState) error {
		return L.DoString(code)
	})
}

// Global returns a global Lua value.
func (h *Host) Global(name string) lua.LValue {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return lua.LNil
	}
	return h.L.GetGlobal(name)
}

// Subscriptions returns the number of callbacks registered by scripts.
func (h *Host) Subscriptions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close removes every callback from the bus and releases the Lua state.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	for _, sub := range h.subs {
		_ = h.bus.Unsubscribe(sub)
	}
	h.subs = nil
	h.L.Close()
	return nil
}

func (h *Host) run(fn func(*lua.LState) error) (err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	h.L.SetContext(ctx)
	defer h.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn(h.L)
}

// luaSubscribe returns the ui function registering a callback for t.
func (h *Host) luaSubscribe(t topic.Topic) lua.LGFunction {
	return func(L *lua.LState) int {
		fn := L.CheckFunction(1)

		sub, err := h.bus.Subscribe(t, func(ctx context.Context, ev any) error {
			return h.call(ctx, t, fn, ev)
		})
		if err != nil {
			L.RaiseError("subscribing to %s: %v", t, err)
			return 0
		}

		// Called from inside run, which holds the lock.
		h.subs = append(h.subs, sub)
		return 0
	}
}

func (h *Host) call(ctx context.Context, t topic.Topic, fn *lua.LFunction, ev any) error {
	args, err := callbackArgs(ev)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	h.L.SetContext(ctx)
	defer h.L.RemoveContext()

	if err := h.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...); err != nil {
		h.logger.Warn("callback for %s failed: %v", t, err)
		return fmt.Errorf("lua callback for %s: %w", t, err)
	}
	return nil
}

// callbackArgs converts a notification into Lua arguments.
func callbackArgs(ev any) ([]lua.LValue, error) {
	switch e := ev.(type) {
	case event.Event[events.ShortcutUnhandled]:
		return []lua.LValue{lua.LString(e.Payload.Command)}, nil
	case event.Event[events.FocusEscaped]:
		return nil, nil
	case event.Event[events.ShortcutGlobal]:
		return []lua.LValue{lua.LNumber(e.Payload.Key), lua.LNumber(e.Payload.Qualifiers)}, nil
	default:
		return nil, fmt.Errorf("unexpected event %T", ev)
	}
}

func (h *Host) luaLog(L *lua.LState) int {
	h.logger.Info("%s", L.CheckString(1))
	return 0
}
