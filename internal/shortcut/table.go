package shortcut

import (
	"github.com/dshills/uirouter/internal/input/key"
	"github.com/dshills/uirouter/internal/platform"
)

// ShiftMatch describes how a binding treats the shift modifier.
type ShiftMatch uint8

const (
	// ShiftAny matches with or without shift.
	ShiftAny ShiftMatch = iota
	// ShiftHeld requires shift.
	ShiftHeld
	// ShiftReleased requires shift not to be held.
	ShiftReleased
)

func (s ShiftMatch) matches(mods key.Modifier) bool {
	switch s {
	case ShiftHeld:
		return mods.Has(key.ModShift)
	case ShiftReleased:
		return !mods.Has(key.ModShift)
	default:
		return true
	}
}

// Binding associates a key with a command.
type Binding struct {
	// Key is the upper case character for character bindings.
	Key key.Code
	// Special is the special key for special-key bindings. A binding with
	// a special key ignores Key.
	Special key.Special
	// Shift selects how shift participates in matching.
	Shift ShiftMatch
	// Bare bindings fire without the platform shortcut modifier.
	Bare bool
	// Command is the command produced.
	Command Command
}

func (b Binding) matches(code key.Code, special key.Special, mods key.Modifier) bool {
	if b.Special != key.SpecialNone {
		if special != b.Special {
			return false
		}
	} else if special != key.SpecialNone || code.Upper() != b.Key {
		return false
	}
	return b.Shift.matches(mods)
}

// Table is an immutable list of bindings for one platform family.
type Table struct {
	family   platform.Family
	bindings []Binding
}

var commonHead = []Binding{
	{Key: 'X', Command: Cut},
	{Key: 'C', Command: Copy},
	// Shift+Insert stays copy.
	{Special: key.SpecialInsert, Command: Copy},
	{Key: 'V', Command: Paste},
	{Key: 'A', Command: SelectAll},
	{Key: 'Z', Shift: ShiftReleased, Command: Undo},
	{Key: 'Z', Shift: ShiftHeld, Command: Redo},
	{Key: 'Y', Shift: ShiftReleased, Command: Redo},
	{Key: 'Y', Shift: ShiftHeld, Command: Undo},
	{Key: 'N', Command: New},
	{Key: 'O', Command: Open},
	{Key: 'S', Command: Save},
	{Key: 'W', Command: Close},
	{Key: 'F', Command: Find},
}

var darwinFind = []Binding{
	{Key: 'G', Shift: ShiftHeld, Command: FindPrev},
	{Key: 'G', Shift: ShiftReleased, Command: FindNext},
}

var functionKeyFind = []Binding{
	{Special: key.SpecialF3, Shift: ShiftHeld, Bare: true, Command: FindPrev},
	{Special: key.SpecialF3, Shift: ShiftReleased, Bare: true, Command: FindNext},
}

var commonTail = []Binding{
	{Key: 'P', Command: Play},
	{Special: key.SpecialPageUp, Bare: true, Command: PrevDoc},
	{Special: key.SpecialPageDown, Bare: true, Command: NextDoc},
}

// ForPlatform returns the compiled-in table for a platform family.
func ForPlatform(f platform.Family) *Table {
	find := functionKeyFind
	if f == platform.Darwin {
		find = darwinFind
	}

	bindings := make([]Binding, 0, len(commonHead)+len(find)+len(commonTail))
	bindings = append(bindings, commonHead...)
	bindings = append(bindings, find...)
	bindings = append(bindings, commonTail...)

	return &Table{family: f, bindings: bindings}
}

// Family returns the platform family the table was built for.
func (t *Table) Family() platform.Family {
	return t.family
}

// Lookup returns the command bound to a key press. Releases never match.
func (t *Table) Lookup(code key.Code, special key.Special, mods key.Modifier, down bool) (Command, bool) {
	if !down {
		return "", false
	}

	held := mods.Has(t.family.ShortcutModifier())
	for _, b := range t.bindings {
		if !held && !b.Bare {
			continue
		}
		if b.matches(code, special, mods) {
			return b.Command, true
		}
	}
	return "", false
}
