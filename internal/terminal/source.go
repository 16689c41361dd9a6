package terminal

import (
	"image"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/uirouter/internal/input"
	"github.com/dshills/uirouter/internal/input/key"
	"github.com/dshills/uirouter/internal/input/mouse"
)

// Source converts tcell events and answers live keyboard queries.
//
// The terminal only reports modifiers along with each event, so the state
// reflects the modifiers of the most recent event.
type Source struct {
	mu sync.Mutex

	screen tcell.Screen

	mods    tcell.ModMask
	pressed key.Code
	buttons tcell.ButtonMask
	pos     image.Point

	pasting bool
	paste   strings.Builder
}

// New creates a source reading from screen. screen may be nil when events
// are fed through Convert only.
func New(screen tcell.Screen) *Source {
	return &Source{screen: screen, pos: image.Pt(-1, -1)}
}

// Init initializes the screen with mouse and bracketed paste reporting.
func (s *Source) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse()
	s.screen.EnablePaste()
	return nil
}

// Shutdown restores the terminal.
func (s *Source) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Fini()
}

// Screen returns the underlying screen.
func (s *Source) Screen() tcell.Screen {
	return s.screen
}

// Size returns the terminal size in cells.
func (s *Source) Size() (int, int) {
	if s.screen == nil {
		return 0, 0
	}
	return s.screen.Size()
}

// Poll blocks for the next terminal event and converts it. It returns
// false once the screen has been shut down.
func (s *Source) Poll() (tcell.Event, []input.Event, bool) {
	ev := s.screen.PollEvent()
	if ev == nil {
		return nil, nil, false
	}
	return ev, s.Convert(ev), true
}

// Convert translates one tcell event. Events with no input meaning, such
// as resizes, produce nothing.
func (s *Source) Convert(ev tcell.Event) []input.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e := ev.(type) {
	case *tcell.EventKey:
		return s.convertKey(e)
	case *tcell.EventMouse:
		return s.convertMouse(e)
	case *tcell.EventPaste:
		return s.convertPaste(e)
	default:
		return nil
	}
}

func (s *Source) convertKey(e *tcell.EventKey) []input.Event {
	s.mods = e.Modifiers()

	if s.pasting {
		if e.Key() == tcell.KeyRune {
			s.paste.WriteRune(e.Rune())
		} else if e.Key() == tcell.KeyEnter {
			s.paste.WriteByte('\n')
		}
		return nil
	}

	code, text := translateKey(e)
	if code == key.CodeUnknown {
		return nil
	}
	if ctrlCode(e.Key()) {
		s.mods |= tcell.ModCtrl
	}

	q := qualifiers(s.mods)
	out := []input.Event{input.KeyDown{Key: code, Qualifiers: q}}
	if text != "" && s.mods&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		out = append(out, input.TextInput{Text: text})
	}
	out = append(out, input.KeyUp{Key: code, Qualifiers: q})

	// The press is visible to state queries while the events are routed.
	s.pressed = code
	return out
}

func (s *Source) convertMouse(e *tcell.EventMouse) []input.Event {
	s.mods = e.Modifiers()
	s.pressed = key.CodeUnknown

	x, y := e.Position()
	pos := image.Pt(x, y)
	btns := e.Buttons()

	var out []input.Event
	if pos != s.pos {
		out = append(out, input.MouseMove{Position: pos})
		s.pos = pos
	}

	for _, m := range buttonMap {
		was, is := s.buttons&m.mask != 0, btns&m.mask != 0
		switch {
		case is && !was:
			out = append(out, input.MouseButtonDown{Button: m.button, Position: pos})
		case was && !is:
			out = append(out, input.MouseButtonUp{Button: m.button, Position: pos})
		}
	}
	s.buttons = btns & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	if btns&tcell.WheelUp != 0 {
		out = append(out, input.MouseWheel{Delta: 1, Position: pos})
	}
	if btns&tcell.WheelDown != 0 {
		out = append(out, input.MouseWheel{Delta: -1, Position: pos})
	}
	return out
}

func (s *Source) convertPaste(e *tcell.EventPaste) []input.Event {
	if e.Start() {
		s.pasting = true
		s.paste.Reset()
		return nil
	}

	s.pasting = false
	text := s.paste.String()
	s.paste.Reset()
	if text == "" {
		return nil
	}
	return []input.Event{input.TextInput{Text: text}}
}

// KeyDown implements input.State. Modifier keys count as held while the
// latest event carried the matching modifier; the meta modifier stands in
// for the GUI keys.
func (s *Source) KeyDown(code key.Code) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch code {
	case key.CodeLCtrl, key.CodeRCtrl:
		return s.mods&tcell.ModCtrl != 0
	case key.CodeLShift, key.CodeRShift:
		return s.mods&tcell.ModShift != 0
	case key.CodeLAlt, key.CodeRAlt:
		return s.mods&tcell.ModAlt != 0
	case key.CodeLGUI, key.CodeRGUI:
		return s.mods&tcell.ModMeta != 0
	case key.CodeUnknown:
		return false
	default:
		return code == s.pressed
	}
}

// Qualifiers implements input.State.
func (s *Source) Qualifiers() key.Qualifier {
	s.mu.Lock()
	defer s.mu.Unlock()

	return qualifiers(s.mods)
}

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.Button1, mouse.ButtonLeft},
	{tcell.Button2, mouse.ButtonRight},
	{tcell.Button3, mouse.ButtonMiddle},
}

func qualifiers(m tcell.ModMask) key.Qualifier {
	var q key.Qualifier
	if m&tcell.ModShift != 0 {
		q |= key.QualShift
	}
	if m&tcell.ModCtrl != 0 {
		q |= key.QualCtrl
	}
	if m&tcell.ModAlt != 0 {
		q |= key.QualAlt
	}
	return q
}
