package input

import "github.com/dshills/uirouter/internal/input/key"

// State answers live queries about the keyboard.
type State interface {
	// KeyDown reports whether the key is currently held.
	KeyDown(code key.Code) bool
	// Qualifiers returns the qualifier keys currently held.
	Qualifiers() key.Qualifier
}

// KeyState is a State fed by the events it observes. Sources that have no
// live keyboard query of their own track key state with it.
type KeyState struct {
	down       map[key.Code]bool
	qualifiers key.Qualifier
}

// NewKeyState creates an empty KeyState.
func NewKeyState() *KeyState {
	return &KeyState{down: make(map[key.Code]bool)}
}

// Observe updates the state from an event. Non-keyboard events are ignored.
func (s *KeyState) Observe(ev Event) {
	switch e := ev.(type) {
	case KeyDown:
		s.down[e.Key] = true
		s.qualifiers = e.Qualifiers
	case KeyUp:
		delete(s.down, e.Key)
		s.qualifiers = e.Qualifiers
	}
}

// Press marks a key as held without an event.
func (s *KeyState) Press(code key.Code) {
	s.down[code] = true
}

// Release marks a key as released.
func (s *KeyState) Release(code key.Code) {
	delete(s.down, code)
}

// SetQualifiers replaces the qualifier set.
func (s *KeyState) SetQualifiers(q key.Qualifier) {
	s.qualifiers = q
}

// KeyDown implements State.
func (s *KeyState) KeyDown(code key.Code) bool {
	return s.down[code]
}

// Qualifiers implements State.
func (s *KeyState) Qualifiers() key.Qualifier {
	return s.qualifiers
}
