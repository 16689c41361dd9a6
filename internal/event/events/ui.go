// Package events defines the notifications the input router publishes.
package events

import (
	"github.com/dshills/uirouter/internal/event/topic"
	"github.com/dshills/uirouter/internal/input/key"
	"github.com/dshills/uirouter/internal/shortcut"
)

// UI notification topics.
const (
	// TopicShortcutUnhandled is published when a recognised shortcut found
	// no widget to handle it.
	TopicShortcutUnhandled topic.Topic = "ui.shortcut.unhandled"

	// TopicShortcutGlobal is published for every key pressed while the
	// platform super key is held.
	TopicShortcutGlobal topic.Topic = "ui.shortcut.global"

	// TopicFocusEscaped is published when Escape or Enter is pressed while
	// a widget has focus.
	TopicFocusEscaped topic.Topic = "ui.focus.escaped"
)

// ShortcutUnhandled is the payload for TopicShortcutUnhandled.
type ShortcutUnhandled struct {
	Command shortcut.Command
}

// ShortcutGlobal is the payload for TopicShortcutGlobal.
type ShortcutGlobal struct {
	Key        key.Code
	Qualifiers key.Qualifier
}

// FocusEscaped is the payload for TopicFocusEscaped.
type FocusEscaped struct{}
