package router

import (
	"github.com/dshills/uirouter/internal/event"
	"github.com/dshills/uirouter/internal/event/events"
	"github.com/dshills/uirouter/internal/input"
	"github.com/dshills/uirouter/internal/input/key"
	"github.com/dshills/uirouter/internal/shortcut"
	"github.com/dshills/uirouter/internal/widget"
)

func (r *Router) keyDown(e input.KeyDown) {
	if r.keyboardBlocked() {
		return
	}

	r.routeKey(e.Key, true)

	if !r.Platform().IsSuperKey(e.Key) && r.superDown() {
		r.publish(event.NewEvent(events.TopicShortcutGlobal, events.ShortcutGlobal{
			Key:        e.Key,
			Qualifiers: e.Qualifiers,
		}, source))
	}
}

func (r *Router) keyUp(e input.KeyUp) {
	if r.keyboardBlocked() {
		return
	}
	r.routeKey(e.Key, false)
}

func (r *Router) routeKey(code key.Code, down bool) {
	if down && (code == key.CodeEscape || code.IsEnter()) && r.focused() != nil {
		r.publish(event.NewEvent(events.TopicFocusEscaped, events.FocusEscaped{}, source))
	}

	// Super keys only feed the modifier state.
	if r.Platform().IsSuperKey(code) {
		return
	}

	mods := r.modifiers()
	special := key.SpecialFor(code)

	if cmd, ok := r.table.Lookup(code, special, mods, down); ok {
		if r.invokeShortcut(cmd, mods) {
			return
		}
	}

	switch {
	case special != key.SpecialNone:
		r.invokeKey(widget.KeyEvent{Special: special, Modifiers: mods, Down: down})
	case mods.Has(key.ModSuper):
		r.invokeKey(widget.KeyEvent{Rune: rune(code), Modifiers: mods, Down: down})
	}
}

// invokeShortcut delivers cmd to the focused widget, or for commands
// addressed to a document to its nearest ancestor with a delegate. It
// publishes an unhandled notification when nobody takes it.
func (r *Router) invokeShortcut(cmd shortcut.Command, mods key.Modifier) bool {
	target := r.focused()
	if cmd.TargetsDelegate() {
		for target != nil && !target.HasDelegate() {
			target = target.Parent()
		}
	}

	ev := widget.ShortcutEvent{Command: cmd, Modifiers: mods}
	if target != nil && target.Shortcut(ev) {
		r.logger.Debug("shortcut %s handled", cmd)
		return true
	}

	r.logger.Debug("shortcut %s unhandled", cmd)
	r.publish(event.NewEvent(events.TopicShortcutUnhandled, events.ShortcutUnhandled{Command: cmd}, source))
	return false
}

// invokeKey offers ev to every eligible surface root in registration
// order and finally to the main root.
func (r *Router) invokeKey(ev widget.KeyEvent) bool {
	for _, s := range r.registry.Eligible() {
		if s.Root.Key(ev) {
			return true
		}
	}
	if r.main == nil {
		return false
	}
	return r.main.Key(ev)
}

func (r *Router) text(s string) {
	if r.keyboardBlocked() {
		return
	}
	for _, c := range s {
		r.invokeKey(widget.KeyEvent{Rune: c, Down: true})
		r.invokeKey(widget.KeyEvent{Rune: c, Down: false})
	}
}

func (r *Router) focused() widget.Widget {
	if r.focus == nil {
		return nil
	}
	return r.focus.Focused()
}
