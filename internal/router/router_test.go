package router

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"

	"github.com/dshills/uirouter/internal/config"
	"github.com/dshills/uirouter/internal/event"
	"github.com/dshills/uirouter/internal/event/events"
	"github.com/dshills/uirouter/internal/input"
	"github.com/dshills/uirouter/internal/input/key"
	"github.com/dshills/uirouter/internal/input/mouse"
	"github.com/dshills/uirouter/internal/platform"
	"github.com/dshills/uirouter/internal/scene"
	"github.com/dshills/uirouter/internal/shortcut"
	"github.com/dshills/uirouter/internal/surface"
	"github.com/dshills/uirouter/internal/widget"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type harness struct {
	router  *Router
	main    *widget.Recorder
	state   *input.KeyState
	focus   *widget.FocusState
	bus     *event.Bus
	clock   *fakeClock
	surface *surface.Surface
	notes   []any
}

func newHarness(t *testing.T, family platform.Family) *harness {
	t.Helper()

	h := &harness{
		main:  widget.NewRecorder("main"),
		state: input.NewKeyState(),
		focus: &widget.FocusState{},
		bus:   event.NewBus(),
		clock: &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	if _, err := h.bus.Subscribe("ui.**", func(_ context.Context, ev any) error {
		h.notes = append(h.notes, ev)
		return nil
	}); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	h.router = New(h.main, h.state,
		WithFocus(h.focus),
		WithBus(h.bus),
		WithPlatform(family),
		WithClock(h.clock.Now),
		WithDisplay(scene.FixedDisplay{Width: 200, Height: 200}),
	)
	return h
}

// addSurface registers a 100x100 surface shown on a quad that covers
// screen pixels 80..120 of a 200x200 display.
func (h *harness) addSurface(t *testing.T, name string) *surface.Surface {
	t.Helper()

	mesh := scene.NewQuad(name,
		mgl32.Vec3{-1, 1, 0},
		mgl32.Vec3{1, 1, 0},
		mgl32.Vec3{1, -1, 0},
		mgl32.Vec3{-1, -1, 0},
	)
	s := &surface.Surface{
		Name:     name,
		Camera:   scene.NewPerspectiveCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, 90, 1),
		Index:    scene.NewIndex(mesh),
		Drawable: mesh,
		Width:    100,
		Height:   100,
		Root:     widget.NewRecorder(name),
	}
	if err := h.router.RegisterSurface(s); err != nil {
		t.Fatalf("RegisterSurface() error = %v", err)
	}
	h.surface = s
	return s
}

// send feeds ev to the key state, like an engine would, then routes it.
func (h *harness) send(evs ...input.Event) {
	for _, ev := range evs {
		h.state.Observe(ev)
		h.router.Dispatch(ev)
	}
}

func (h *harness) press(code key.Code, q key.Qualifier) {
	h.send(input.KeyDown{Key: code, Qualifiers: q}, input.KeyUp{Key: code, Qualifiers: q})
}

func (h *harness) topics() []string {
	var out []string
	for _, n := range h.notes {
		out = append(out, string(n.(event.TopicProvider).EventTopic()))
	}
	return out
}

func keyEvents(r *widget.Recorder) []widget.KeyEvent {
	var out []widget.KeyEvent
	for _, c := range r.Calls {
		if c.Method == "Key" {
			out = append(out, c.Key)
		}
	}
	return out
}

func TestPointerOutsideSurfaceGoesToMain(t *testing.T) {
	h := newHarness(t, platform.Other)
	s := h.addSurface(t, "panel")

	h.send(input.MouseButtonDown{Button: mouse.ButtonLeft, Position: image.Pt(10, 15)})

	want := []widget.Call{{Method: "PointerDown", Pointer: widget.PointerEvent{X: 10, Y: 15, Count: 1}}}
	if diff := cmp.Diff(want, h.main.Calls); diff != "" {
		t.Errorf("main calls mismatch (-want +got):\n%s", diff)
	}
	if n := len(s.Root.(*widget.Recorder).Calls); n != 0 {
		t.Errorf("surface received %d calls", n)
	}
}

func TestPointerOnSurfaceIsProjected(t *testing.T) {
	h := newHarness(t, platform.Other)
	s := h.addSurface(t, "panel")
	rec := s.Root.(*widget.Recorder)

	h.send(
		input.MouseButtonDown{Button: mouse.ButtonLeft, Position: image.Pt(100, 100)},
		input.MouseButtonUp{Button: mouse.ButtonLeft, Position: image.Pt(110, 100)},
	)

	if len(h.main.Calls) != 0 {
		t.Errorf("main received %v", h.main.Methods())
	}
	if diff := cmp.Diff([]string{"PointerDown", "PointerUp"}, rec.Methods()); diff != "" {
		t.Fatalf("surface methods mismatch (-want +got):\n%s", diff)
	}

	for i, want := range []image.Point{{50, 50}, {75, 50}} {
		p := rec.Calls[i].Pointer
		if d := image.Pt(p.X, p.Y).Sub(want); d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
			t.Errorf("call %d at (%d,%d), want about %v", i, p.X, p.Y, want)
		}
		if p.X < 0 || p.X >= s.Width || p.Y < 0 || p.Y >= s.Height {
			t.Errorf("call %d at (%d,%d) outside surface", i, p.X, p.Y)
		}
	}
}

func TestUnregisteredSurfaceIsIgnored(t *testing.T) {
	h := newHarness(t, platform.Other)
	s := h.addSurface(t, "panel")
	if !h.router.UnregisterSurface(s) {
		t.Fatal("UnregisterSurface() = false")
	}

	h.send(input.MouseMove{Position: image.Pt(100, 100)})

	want := []widget.Call{{Method: "PointerMove", Pointer: widget.PointerEvent{X: 100, Y: 100}}}
	if diff := cmp.Diff(want, h.main.Calls); diff != "" {
		t.Errorf("main calls mismatch (-want +got):\n%s", diff)
	}
}

func TestSurfaceWithoutRootIsSkipped(t *testing.T) {
	h := newHarness(t, platform.Other)
	s := h.addSurface(t, "panel")
	s.Root = nil

	h.send(
		input.MouseButtonDown{Button: mouse.ButtonLeft, Position: image.Pt(100, 100)},
		input.MouseWheel{Delta: 1, Position: image.Pt(100, 100)},
		input.TouchBegin{ID: 1, Position: image.Pt(100, 100)},
		input.KeyDown{Key: key.CodeLeft},
	)

	want := []string{"PointerDown", "Wheel", "PointerDown", "Key"}
	var got []string
	for _, c := range h.main.Calls {
		got = append(got, c.Method)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("main calls mismatch (-want +got):\n%s", diff)
	}
}

func TestNilMainRootDropsPointerEvents(t *testing.T) {
	r := New(nil, input.NewKeyState(), WithDisplay(scene.FixedDisplay{Width: 200, Height: 200}))

	r.Dispatch(input.MouseButtonDown{Button: mouse.ButtonLeft, Position: image.Pt(10, 10)})
	r.Dispatch(input.MouseMove{Position: image.Pt(10, 10)})
	r.Dispatch(input.KeyDown{Key: key.CodeLeft})

	if r.ClickCount() != 0 {
		t.Errorf("ClickCount() = %d, want 0", r.ClickCount())
	}
}

func TestClickCounting(t *testing.T) {
	tests := []struct {
		name string
		gap  time.Duration
		want int
	}{
		{"double click", 500 * time.Millisecond, 2},
		{"separate clicks", 700 * time.Millisecond, 1},
		{"at the interval", 600 * time.Millisecond, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, platform.Other)
			click := input.MouseButtonDown{Button: mouse.ButtonLeft, Position: image.Pt(5, 5)}

			h.send(click)
			h.clock.Advance(tt.gap)
			h.send(click)

			if got := h.main.Calls[1].Pointer.Count; got != tt.want {
				t.Errorf("count = %d, want %d", got, tt.want)
			}
			if h.router.ClickCount() != tt.want {
				t.Errorf("ClickCount() = %d, want %d", h.router.ClickCount(), tt.want)
			}
		})
	}
}

func TestClickCounterSharedWithTouch(t *testing.T) {
	h := newHarness(t, platform.Other)

	h.send(input.MouseButtonDown{Button: mouse.ButtonLeft, Position: image.Pt(5, 5)})
	h.clock.Advance(100 * time.Millisecond)
	h.send(input.TouchBegin{ID: 3, Position: image.Pt(5, 5)})
	h.clock.Advance(100 * time.Millisecond)
	h.send(input.MouseButtonDown{Button: mouse.ButtonRight, Position: image.Pt(5, 5)})

	var counts []int
	for _, c := range h.main.Calls {
		counts = append(counts, c.Pointer.Count)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestButtons(t *testing.T) {
	h := newHarness(t, platform.Other)
	pos := image.Pt(1, 2)

	for _, b := range []mouse.Button{mouse.ButtonRight, mouse.ButtonMiddle} {
		h.send(input.MouseButtonDown{Button: b, Position: pos}, input.MouseButtonUp{Button: b, Position: pos})
	}

	want := []string{"RightPointerDown", "RightPointerUp", "PointerDown", "PointerUp"}
	if diff := cmp.Diff(want, h.main.Methods()); diff != "" {
		t.Errorf("methods mismatch (-want +got):\n%s", diff)
	}
}

func TestMouseCarriesModifiers(t *testing.T) {
	h := newHarness(t, platform.Other)
	h.state.SetQualifiers(key.QualShift | key.QualCtrl)
	h.state.Press(key.CodeLGUI)

	h.router.Dispatch(input.MouseButtonDown{Button: mouse.ButtonLeft, Position: image.Pt(1, 1)})
	h.router.Dispatch(input.TouchBegin{ID: 1, Position: image.Pt(1, 1)})

	want := key.ModCtrl | key.ModShift | key.ModSuper
	if got := h.main.Calls[0].Pointer.Modifiers; got != want {
		t.Errorf("mouse modifiers = %v, want %v", got, want)
	}
	if got := h.main.Calls[1].Pointer.Modifiers; got != key.ModNone {
		t.Errorf("touch modifiers = %v, want none", got)
	}
}

func TestWheelIsInverted(t *testing.T) {
	h := newHarness(t, platform.Other)

	h.send(input.MouseWheel{Delta: 3, Position: image.Pt(4, 4)})

	want := []widget.Call{{Method: "Wheel", Wheel: widget.WheelEvent{X: 4, Y: 4, DeltaY: -3}}}
	if diff := cmp.Diff(want, h.main.Calls); diff != "" {
		t.Errorf("wheel mismatch (-want +got):\n%s", diff)
	}
}

func TestTouch(t *testing.T) {
	h := newHarness(t, platform.Other)
	s := h.addSurface(t, "panel")
	rec := s.Root.(*widget.Recorder)

	h.send(
		input.TouchBegin{ID: 7, Position: image.Pt(100, 100)},
		input.TouchMove{ID: 7, Position: image.Pt(100, 100)},
		input.TouchEnd{ID: 7, Position: image.Pt(5, 5)},
	)

	if diff := cmp.Diff([]string{"PointerDown", "PointerMove"}, rec.Methods()); diff != "" {
		t.Errorf("surface methods mismatch (-want +got):\n%s", diff)
	}
	for _, c := range rec.Calls {
		if !c.Pointer.Touch || c.Pointer.TouchID != 7 {
			t.Errorf("%s lost touch identity: %+v", c.Method, c.Pointer)
		}
	}
	want := []widget.Call{{Method: "PointerUp", Pointer: widget.PointerEvent{X: 5, Y: 5, Touch: true, TouchID: 7}}}
	if diff := cmp.Diff(want, h.main.Calls); diff != "" {
		t.Errorf("main calls mismatch (-want +got):\n%s", diff)
	}
}

func TestHoverTimer(t *testing.T) {
	h := newHarness(t, platform.Other)

	h.router.Update(300 * time.Millisecond)
	h.router.Update(200 * time.Millisecond)
	if got := h.router.HoverTime(); got != 500*time.Millisecond {
		t.Fatalf("HoverTime() = %v", got)
	}

	h.send(input.MouseMove{Position: image.Pt(1, 1)})
	if got := h.router.HoverTime(); got != 0 {
		t.Errorf("HoverTime() after move = %v, want 0", got)
	}
}

func TestBlockedInput(t *testing.T) {
	all := []input.Event{
		input.MouseButtonDown{Button: mouse.ButtonLeft, Position: image.Pt(1, 1)},
		input.MouseMove{Position: image.Pt(1, 1)},
		input.MouseWheel{Delta: 1},
		input.TouchBegin{ID: 1},
		input.KeyDown{Key: key.CodeLeft},
		input.TextInput{Text: "x"},
	}

	tests := []struct {
		name  string
		setup func(r *Router)
		want  int
	}{
		{"input disabled", func(r *Router) { r.SetInputDisabled(true) }, 0},
		{"console visible", func(r *Router) { r.SetConsoleVisible(true) }, 0},
		{"keyboard disabled", func(r *Router) { r.SetKeyboardDisabled(true) }, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, platform.Other)
			tt.setup(h.router)
			h.send(all...)
			if got := len(h.main.Calls); got != tt.want {
				t.Errorf("main received %v, want %d calls", h.main.Methods(), tt.want)
			}
		})
	}
}

func TestShortcuts(t *testing.T) {
	tests := []struct {
		name   string
		family platform.Family
		code   key.Code
		qual   key.Qualifier
		super  bool
		want   shortcut.Command
	}{
		{"ctrl c", platform.Other, 'c', key.QualCtrl, false, shortcut.Copy},
		{"ctrl shift c", platform.Other, 'c', key.QualCtrl | key.QualShift, false, shortcut.Copy},
		{"ctrl z", platform.Other, 'z', key.QualCtrl, false, shortcut.Undo},
		{"ctrl shift z", platform.Other, 'z', key.QualCtrl | key.QualShift, false, shortcut.Redo},
		{"ctrl y", platform.Other, 'y', key.QualCtrl, false, shortcut.Redo},
		{"ctrl insert", platform.Other, key.CodeInsert, key.QualCtrl, false, shortcut.Copy},
		{"ctrl shift insert", platform.Other, key.CodeInsert, key.QualCtrl | key.QualShift, false, shortcut.Copy},
		{"f3", platform.Other, key.CodeF3, 0, false, shortcut.FindNext},
		{"shift f3", platform.Other, key.CodeF3, key.QualShift, false, shortcut.FindPrev},
		{"page down", platform.Windows, key.CodePageDown, 0, false, shortcut.NextDoc},
		{"windows ctrl v", platform.Windows, 'v', key.QualCtrl, true, shortcut.Paste},
		{"command c", platform.Darwin, 'c', 0, true, shortcut.Copy},
		{"command g", platform.Darwin, 'g', 0, true, shortcut.FindNext},
		{"command shift g", platform.Darwin, 'G', key.QualShift, true, shortcut.FindPrev},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.family)
			node := widget.NewNode("editor", nil)
			node.Handle = func(widget.ShortcutEvent) bool { return true }
			h.focus.SetFocus(node)

			if tt.super {
				h.state.Press(superKey(tt.family))
			}
			h.send(input.KeyDown{Key: tt.code, Qualifiers: tt.qual})

			if len(node.Received) != 1 {
				t.Fatalf("received %d shortcuts, want 1", len(node.Received))
			}
			if got := node.Received[0].Command; got != tt.want {
				t.Errorf("command = %s, want %s", got, tt.want)
			}
			if len(keyEvents(h.main)) != 0 {
				t.Errorf("handled shortcut was also forwarded: %v", h.main.Calls)
			}
		})
	}
}

func superKey(f platform.Family) key.Code {
	if f == platform.Windows {
		return key.CodeLCtrl
	}
	return key.CodeLGUI
}

func TestNoShortcutWithoutModifier(t *testing.T) {
	h := newHarness(t, platform.Other)
	node := widget.NewNode("editor", nil)
	h.focus.SetFocus(node)

	h.press('c', 0)
	h.send(input.KeyUp{Key: 'z', Qualifiers: key.QualCtrl})

	if len(node.Received) != 0 {
		t.Errorf("received %v", node.Received)
	}
}

func TestUnhandledShortcut(t *testing.T) {
	h := newHarness(t, platform.Other)

	h.send(input.KeyDown{Key: 's', Qualifiers: key.QualCtrl})

	want := []any{event.Event[events.ShortcutUnhandled]{
		Type:    events.TopicShortcutUnhandled,
		Payload: events.ShortcutUnhandled{Command: shortcut.Save},
	}}
	opt := cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Metadata"
	}, cmp.Ignore())
	if diff := cmp.Diff(want, h.notes, opt); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestUnhandledShortcutIsForwarded(t *testing.T) {
	h := newHarness(t, platform.Other)

	h.send(input.KeyDown{Key: key.CodePageUp})

	if diff := cmp.Diff([]string{string(events.TopicShortcutUnhandled)}, h.topics()); diff != "" {
		t.Errorf("topics mismatch (-want +got):\n%s", diff)
	}
	want := []widget.KeyEvent{{Special: key.SpecialPageUp, Down: true}}
	if diff := cmp.Diff(want, keyEvents(h.main)); diff != "" {
		t.Errorf("forwarded keys mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveGoesToDelegate(t *testing.T) {
	h := newHarness(t, platform.Other)
	doc := widget.NewNode("document", nil)
	doc.Delegate = true
	doc.Handle = func(widget.ShortcutEvent) bool { return true }
	field := widget.NewNode("field", widget.NewNode("panel", doc))
	h.focus.SetFocus(field)

	h.send(
		input.KeyDown{Key: 's', Qualifiers: key.QualCtrl},
		input.KeyDown{Key: 'a', Qualifiers: key.QualCtrl},
	)

	if diff := cmp.Diff([]widget.ShortcutEvent{{Command: shortcut.Save, Modifiers: key.ModCtrl}}, doc.Received); diff != "" {
		t.Errorf("document shortcuts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]widget.ShortcutEvent{{Command: shortcut.SelectAll, Modifiers: key.ModCtrl}}, field.Received); diff != "" {
		t.Errorf("field shortcuts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{string(events.TopicShortcutUnhandled)}, h.topics()); diff != "" {
		t.Errorf("topics mismatch (-want +got):\n%s", diff)
	}
}

func TestCloseWithoutDelegateIsUnhandled(t *testing.T) {
	h := newHarness(t, platform.Other)
	field := widget.NewNode("field", nil)
	field.Handle = func(widget.ShortcutEvent) bool { return true }
	h.focus.SetFocus(field)

	h.send(input.KeyDown{Key: 'w', Qualifiers: key.QualCtrl})

	if len(field.Received) != 0 {
		t.Errorf("field received %v", field.Received)
	}
	if diff := cmp.Diff([]string{string(events.TopicShortcutUnhandled)}, h.topics()); diff != "" {
		t.Errorf("topics mismatch (-want +got):\n%s", diff)
	}
}

func TestFocusEscaped(t *testing.T) {
	for _, code := range []key.Code{key.CodeEscape, key.CodeReturn, key.CodeReturn2, key.CodeKPEnter} {
		t.Run(code.String(), func(t *testing.T) {
			h := newHarness(t, platform.Other)

			h.press(code, 0)
			if len(h.notes) != 0 {
				t.Fatalf("published %v without focus", h.topics())
			}

			h.focus.SetFocus(widget.NewNode("field", nil))
			h.press(code, 0)
			if diff := cmp.Diff([]string{string(events.TopicFocusEscaped)}, h.topics()); diff != "" {
				t.Errorf("topics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSpecialKeysForwarded(t *testing.T) {
	h := newHarness(t, platform.Other)
	s := h.addSurface(t, "panel")
	rec := s.Root.(*widget.Recorder)
	h.state.SetQualifiers(key.QualShift)

	h.router.Dispatch(input.KeyDown{Key: key.CodeLeft, Qualifiers: key.QualShift})
	rec.ConsumeKeys = true
	h.router.Dispatch(input.KeyUp{Key: key.CodeLeft, Qualifiers: key.QualShift})
	h.router.Dispatch(input.KeyDown{Key: 'q'})

	left := func(down bool) widget.KeyEvent {
		return widget.KeyEvent{Special: key.SpecialLeft, Modifiers: key.ModShift, Down: down}
	}
	if diff := cmp.Diff([]widget.KeyEvent{left(true), left(false)}, keyEvents(rec)); diff != "" {
		t.Errorf("surface keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]widget.KeyEvent{left(true)}, keyEvents(h.main)); diff != "" {
		t.Errorf("main keys mismatch (-want +got):\n%s", diff)
	}
}

func TestSuperCharacterForwarded(t *testing.T) {
	h := newHarness(t, platform.Other)

	h.send(
		input.KeyDown{Key: key.CodeLGUI},
		input.KeyDown{Key: 'k'},
		input.KeyUp{Key: 'k'},
		input.KeyUp{Key: key.CodeLGUI},
	)

	want := []widget.KeyEvent{
		{Rune: 'k', Modifiers: key.ModSuper, Down: true},
		{Rune: 'k', Modifiers: key.ModSuper, Down: false},
	}
	if diff := cmp.Diff(want, keyEvents(h.main)); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestGlobalShortcut(t *testing.T) {
	h := newHarness(t, platform.Darwin)

	h.send(
		input.KeyDown{Key: key.CodeLGUI},
		input.KeyDown{Key: 'k', Qualifiers: key.QualAlt},
		input.KeyUp{Key: 'k', Qualifiers: key.QualAlt},
	)

	want := []any{event.Event[events.ShortcutGlobal]{
		Type:    events.TopicShortcutGlobal,
		Payload: events.ShortcutGlobal{Key: 'k', Qualifiers: key.QualAlt},
	}}
	opt := cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Metadata"
	}, cmp.Ignore())
	if diff := cmp.Diff(want, h.notes, opt); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestTextInput(t *testing.T) {
	h := newHarness(t, platform.Other)
	h.state.SetQualifiers(key.QualCtrl)

	h.router.Dispatch(input.TextInput{Text: "Hi"})

	want := []widget.KeyEvent{
		{Rune: 'H', Down: true},
		{Rune: 'H', Down: false},
		{Rune: 'i', Down: true},
		{Rune: 'i', Down: false},
	}
	if diff := cmp.Diff(want, keyEvents(h.main)); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if len(h.notes) != 0 {
		t.Errorf("text triggered notifications %v", h.topics())
	}
}

func TestApplyConfig(t *testing.T) {
	h := newHarness(t, platform.Other)
	node := widget.NewNode("editor", nil)
	node.Handle = func(widget.ShortcutEvent) bool { return true }
	h.focus.SetFocus(node)

	h.router.ApplyConfig(config.Router{
		Platform:         "darwin",
		ClickInterval:    config.Duration(time.Second),
		KeyboardDisabled: false,
	})
	if h.router.Platform() != platform.Darwin {
		t.Fatalf("Platform() = %v", h.router.Platform())
	}

	// Ctrl no longer triggers shortcuts; Command does.
	h.send(input.KeyDown{Key: 'c', Qualifiers: key.QualCtrl})
	h.state.Press(key.CodeLGUI)
	h.send(input.KeyDown{Key: 'c'})
	if len(node.Received) != 1 || node.Received[0].Command != shortcut.Copy {
		t.Errorf("received %v", node.Received)
	}

	click := input.MouseButtonDown{Button: mouse.ButtonLeft}
	h.send(click)
	h.clock.Advance(800 * time.Millisecond)
	h.send(click)
	if h.router.ClickCount() != 2 {
		t.Errorf("ClickCount() = %d with a 1s interval", h.router.ClickCount())
	}

	h.router.ApplyConfig(config.Router{Platform: "other", InputDisabled: true})
	h.main.Reset()
	h.send(click)
	if len(h.main.Calls) != 0 {
		t.Errorf("input disabled by config still delivered %v", h.main.Methods())
	}
}

func TestPublishErrorsDoNotStopRouting(t *testing.T) {
	h := newHarness(t, platform.Other)
	if _, err := h.bus.Subscribe(events.TopicShortcutUnhandled, func(context.Context, any) error {
		panic("boom")
	}); err != nil {
		t.Fatal(err)
	}

	h.send(input.KeyDown{Key: key.CodePageDown})

	if len(keyEvents(h.main)) != 1 {
		t.Errorf("key not forwarded after failing publish: %v", h.main.Calls)
	}
}
