package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/dshills/uirouter/internal/config"
	"github.com/dshills/uirouter/internal/event"
	"github.com/dshills/uirouter/internal/logging"
	"github.com/dshills/uirouter/internal/router"
	"github.com/dshills/uirouter/internal/scene"
	"github.com/dshills/uirouter/internal/script"
	"github.com/dshills/uirouter/internal/surface"
	"github.com/dshills/uirouter/internal/terminal"
	"github.com/dshills/uirouter/internal/widget"
)

// maxLines bounds the activity list.
const maxLines = 200

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses defaults.
	ConfigPath string

	// LogLevel overrides the configured level when set.
	LogLevel string

	// LogOutput receives log lines. Nil discards them, since the terminal
	// is in use.
	LogOutput io.Writer

	// ScriptPath overrides the configured script when set.
	ScriptPath string

	// Screen replaces the real terminal, mainly for tests.
	Screen tcell.Screen
}

// Application connects a terminal, the router and the script host.
type Application struct {
	mu sync.Mutex

	opts    Options
	config  *config.Config
	logger  *logging.Logger
	bus     *event.Bus
	source  *terminal.Source
	router  *router.Router
	scripts *script.Host
	watcher *config.Watcher

	main    *widget.Recorder
	panel   *surface.Surface
	focus   *widget.FocusState
	field   *widget.Node

	lines []string

	running  atomic.Bool
	shutdown sync.Once
	lastTick time.Time
}

// New loads configuration and builds every component. The terminal is not
// touched until Run.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.ScriptPath != "" {
		cfg.Script.Path = opts.ScriptPath
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	out := opts.LogOutput
	if out == nil {
		out = io.Discard
	}
	logger := logging.New(logging.Config{Level: level, Output: out, Prefix: "uiroute"})

	screen := opts.Screen
	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("creating terminal: %w", err)
		}
	}

	app := &Application{
		opts:   opts,
		config: cfg,
		logger: logger,
		bus:    event.NewBus(),
		source: terminal.New(screen),
		main:   widget.NewRecorder("main"),
		focus:  &widget.FocusState{},
	}

	app.router = router.New(app.main, app.source,
		router.WithFocus(app.focus),
		router.WithBus(app.bus),
		router.WithDisplay(app.source),
		router.WithLogger(logger),
		router.WithPlatform(cfg.Router.Family()),
		router.WithClickInterval(time.Duration(cfg.Router.ClickInterval)),
	)
	app.router.ApplyConfig(cfg.Router)

	app.buildWidgets()
	if err := app.buildPanel(); err != nil {
		return nil, err
	}
	if err := app.subscribe(); err != nil {
		return nil, err
	}

	app.scripts = script.New(app.bus, script.WithLogger(logger))
	if cfg.Script.Path != "" {
		if err := app.scripts.DoFile(cfg.Script.Path); err != nil {
			_ = app.scripts.Close()
			return nil, fmt.Errorf("running script %s: %w", cfg.Script.Path, err)
		}
	}

	return app, nil
}

// buildWidgets creates the focus chain: a text field inside a document
// that owns a delegate.
func (app *Application) buildWidgets() {
	doc := widget.NewNode("document", nil)
	doc.Delegate = true
	doc.Handle = func(ev widget.ShortcutEvent) bool {
		app.addLine("document: shortcut %s", ev.Command)
		return true
	}

	app.field = widget.NewNode("field", doc)
	app.field.Handle = func(ev widget.ShortcutEvent) bool {
		switch ev.Command {
		case "copy", "paste", "cut", "selectall", "undo", "redo":
			app.addLine("field: shortcut %s", ev.Command)
			return true
		}
		return false
	}
	app.focus.SetFocus(app.field)

	app.main.OnCall = func(r *widget.Recorder, c widget.Call) {
		app.addLine("%s: %s", r.Name, c)
	}
}

// buildPanel registers the off-screen surface. The camera sees exactly the
// quad, so the surface covers its whole screen rectangle.
func (app *Application) buildPanel() error {
	quad := scene.NewQuad("panel",
		mgl32.Vec3{-5, 5, 0},
		mgl32.Vec3{5, 5, 0},
		mgl32.Vec3{5, -5, 0},
		mgl32.Vec3{-5, -5, 0},
	)
	rec := widget.NewRecorder("panel")
	rec.OnCall = func(r *widget.Recorder, c widget.Call) {
		app.addLine("%s: %s", r.Name, c)
	}

	app.panel = &surface.Surface{
		Name:     "panel",
		Camera:   scene.NewPerspectiveCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, 90, 1),
		Index:    scene.NewIndex(quad),
		Drawable: quad,
		Root:     rec,
	}
	app.layout()
	return app.router.RegisterSurface(app.panel)
}

// layout places the panel on the right half of the terminal.
func (app *Application) layout() {
	w, h := app.source.Size()
	app.panel.Rect.Min.X = w / 2
	app.panel.Rect.Min.Y = 0
	app.panel.Rect.Max.X = w
	app.panel.Rect.Max.Y = h
	app.panel.Width = max(w-w/2, 1)
	app.panel.Height = max(h, 1)
}

// subscribe lists every router notification.
func (app *Application) subscribe() error {
	_, err := app.bus.Subscribe("ui.**", func(_ context.Context, ev any) error {
		if tp, ok := ev.(event.TopicProvider); ok {
			app.addLine("notify: %s %+v", tp.EventTopic(), payloadOf(ev))
		}
		return nil
	})
	return err
}

func (app *Application) addLine(format string, args ...any) {
	app.mu.Lock()
	defer app.mu.Unlock()

	app.lines = append(app.lines, fmt.Sprintf(format, args...))
	if len(app.lines) > maxLines {
		app.lines = app.lines[len(app.lines)-maxLines:]
	}
}

// Lines returns the activity list, oldest first.
func (app *Application) Lines() []string {
	app.mu.Lock()
	defer app.mu.Unlock()

	out := make([]string, len(app.lines))
	copy(out, app.lines)
	return out
}

// Router returns the input router.
func (app *Application) Router() *router.Router {
	return app.router
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	return app.config
}

// Shutdown releases every component. It is safe to call more than once and
// from another goroutine.
func (app *Application) Shutdown() {
	app.shutdown.Do(func() {
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil {
				app.logger.Warn("closing config watcher: %v", err)
			}
		}
		if app.scripts != nil {
			_ = app.scripts.Close()
		}
		if app.running.Load() {
			app.source.Shutdown()
		}
		app.logger.Info("shutdown complete")
	})
}
