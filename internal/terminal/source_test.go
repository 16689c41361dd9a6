package terminal

import (
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/dshills/uirouter/internal/input"
	"github.com/dshills/uirouter/internal/input/key"
	"github.com/dshills/uirouter/internal/input/mouse"
)

func TestConvertKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []input.Event
	}{
		{
			name: "rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone),
			want: []input.Event{
				input.KeyDown{Key: 'h'},
				input.TextInput{Text: "h"},
				input.KeyUp{Key: 'h'},
			},
		},
		{
			name: "alt rune types nothing",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt),
			want: []input.Event{
				input.KeyDown{Key: 'x', Qualifiers: key.QualAlt},
				input.KeyUp{Key: 'x', Qualifiers: key.QualAlt},
			},
		},
		{
			name: "control letter",
			ev:   tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
			want: []input.Event{
				input.KeyDown{Key: 'c', Qualifiers: key.QualCtrl},
				input.KeyUp{Key: 'c', Qualifiers: key.QualCtrl},
			},
		},
		{
			name: "special",
			ev:   tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModShift),
			want: []input.Event{
				input.KeyDown{Key: key.CodePageDown, Qualifiers: key.QualShift},
				input.KeyUp{Key: key.CodePageDown, Qualifiers: key.QualShift},
			},
		},
		{
			name: "enter",
			ev:   tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			want: []input.Event{
				input.KeyDown{Key: key.CodeReturn},
				input.KeyUp{Key: key.CodeReturn},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			if diff := cmp.Diff(tt.want, s.Convert(tt.ev)); diff != "" {
				t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertMouse(t *testing.T) {
	s := New(nil)

	var got []input.Event
	for _, ev := range []*tcell.EventMouse{
		tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone),
		tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(5, 4, tcell.Button1|tcell.Button2, tcell.ModNone),
		tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModNone),
		tcell.NewEventMouse(5, 4, tcell.WheelUp, tcell.ModNone),
		tcell.NewEventMouse(5, 4, tcell.WheelDown, tcell.ModNone),
	} {
		got = append(got, s.Convert(ev)...)
	}

	p, q := image.Pt(3, 4), image.Pt(5, 4)
	want := []input.Event{
		input.MouseMove{Position: p},
		input.MouseButtonDown{Button: mouse.ButtonLeft, Position: p},
		input.MouseMove{Position: q},
		input.MouseButtonDown{Button: mouse.ButtonRight, Position: q},
		input.MouseButtonUp{Button: mouse.ButtonLeft, Position: q},
		input.MouseButtonUp{Button: mouse.ButtonRight, Position: q},
		input.MouseWheel{Delta: 1, Position: q},
		input.MouseWheel{Delta: -1, Position: q},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertPaste(t *testing.T) {
	s := New(nil)

	var got []input.Event
	for _, ev := range []tcell.Event{
		tcell.NewEventPaste(true),
		tcell.NewEventKey(tcell.KeyRune, 'o', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone),
		tcell.NewEventPaste(false),
	} {
		got = append(got, s.Convert(ev)...)
	}

	want := []input.Event{input.TextInput{Text: "o\nk"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
	}
}

func TestState(t *testing.T) {
	s := New(nil)

	s.Convert(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModMeta|tcell.ModShift))

	if !s.KeyDown(key.CodeLGUI) || !s.KeyDown(key.CodeRShift) {
		t.Error("meta and shift should be held")
	}
	if s.KeyDown(key.CodeLCtrl) || s.KeyDown(key.CodeLAlt) {
		t.Error("ctrl and alt should not be held")
	}
	if !s.KeyDown('k') || s.KeyDown('j') {
		t.Error("only the latest key should be pressed")
	}
	if got := s.Qualifiers(); got != key.QualShift {
		t.Errorf("Qualifiers() = %v, want shift", got)
	}

	s.Convert(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	if s.KeyDown('k') || s.KeyDown(key.CodeLGUI) {
		t.Error("mouse event should clear key state")
	}
}

func TestSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	s := New(screen)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer s.Shutdown()

	screen.SetSize(40, 12)
	if w, h := s.Size(); w != 40 || h != 12 {
		t.Errorf("Size() = %d,%d, want 40,12", w, h)
	}

	screen.InjectKey(tcell.KeyF3, 0, tcell.ModNone)

	// Initialization and resizing queue resize events ahead of the key.
	var evs []input.Event
	for i := 0; i < 10 && len(evs) == 0; i++ {
		_, converted, ok := s.Poll()
		if !ok {
			t.Fatal("Poll() reported shutdown")
		}
		evs = converted
	}
	want := []input.Event{input.KeyDown{Key: key.CodeF3}, input.KeyUp{Key: key.CodeF3}}
	if diff := cmp.Diff(want, evs); diff != "" {
		t.Errorf("Poll() mismatch (-want +got):\n%s", diff)
	}
}
