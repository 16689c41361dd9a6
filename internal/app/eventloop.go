package app

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/uirouter/internal/config"
	"github.com/dshills/uirouter/internal/event"
	"github.com/dshills/uirouter/internal/event/events"
	"github.com/dshills/uirouter/internal/logging"
)

// Run initializes the terminal and routes its events until Ctrl+Q, ctx
// cancellation or Shutdown. Quitting returns ErrQuit.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	if err := app.source.Init(); err != nil {
		app.running.Store(false)
		return err
	}
	defer app.Shutdown()

	app.layout()
	if err := app.startWatcher(ctx); err != nil {
		app.logger.Warn("config watcher disabled: %v", err)
	}

	release := onCancel(ctx, app.Shutdown)
	defer release()

	app.lastTick = time.Now()
	app.draw()
	for {
		ev, _, ok := app.source.Poll()
		if !ok {
			return ctx.Err()
		}
		if err := app.handle(ev); err != nil {
			return err
		}
		app.draw()
	}
}

// onCancel calls stop when ctx is cancelled. The returned release func
// ends the wait and returns once the waiting goroutine has exited.
func onCancel(ctx context.Context, stop func()) (release func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-exited
	}
}

// handle processes one terminal event.
func (app *Application) handle(ev tcell.Event) error {
	now := time.Now()
	app.router.Update(now.Sub(app.lastTick))
	app.lastTick = now

	switch e := ev.(type) {
	case *tcell.EventKey:
		if isQuit(e) {
			return ErrQuit
		}
	case *tcell.EventResize:
		app.layout()
		app.source.Screen().Sync()
		return nil
	case *tcell.EventInterrupt:
		if cfg, ok := e.Data().(*config.Config); ok {
			app.applyConfig(cfg)
		}
		return nil
	}

	for _, in := range app.source.Convert(ev) {
		app.router.Dispatch(in)
	}
	return nil
}

// isQuit reports whether e is Ctrl+Q. Terminals report it either as a
// control character or as a rune with the Ctrl modifier.
func isQuit(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyCtrlQ {
		return true
	}
	return e.Key() == tcell.KeyRune && e.Modifiers()&tcell.ModCtrl != 0 && (e.Rune() == 'q' || e.Rune() == 'Q')
}

// startWatcher reloads the configuration file on change. Reloaded
// configuration is handed to the event loop as an interrupt.
func (app *Application) startWatcher(ctx context.Context) error {
	if app.opts.ConfigPath == "" {
		return nil
	}

	w, err := config.NewWatcher(app.opts.ConfigPath,
		func(cfg *config.Config) {
			_ = app.source.Screen().PostEvent(tcell.NewEventInterrupt(cfg))
		},
		func(err error) {
			app.logger.Warn("reloading config: %v", err)
		},
	)
	if err != nil {
		return err
	}
	app.watcher = w
	w.Start(ctx)
	return nil
}

func (app *Application) applyConfig(cfg *config.Config) {
	if app.opts.LogLevel == "" {
		if level, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
			app.logger.SetLevel(level)
		}
	}
	app.router.ApplyConfig(cfg.Router)
	app.config = cfg
	app.addLine("config reloaded: platform=%s", app.router.Platform())
}

// payloadOf extracts the payload of a router notification for display.
func payloadOf(ev any) any {
	switch e := ev.(type) {
	case event.Event[events.ShortcutUnhandled]:
		return e.Payload
	case event.Event[events.ShortcutGlobal]:
		return e.Payload
	case event.Event[events.FocusEscaped]:
		return e.Payload
	default:
		return ev
	}
}
