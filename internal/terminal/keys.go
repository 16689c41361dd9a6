package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/uirouter/internal/input/key"
)

var specialKeys = map[tcell.Key]key.Code{
	tcell.KeyEscape:     key.CodeEscape,
	tcell.KeyEnter:      key.CodeReturn,
	tcell.KeyTab:        key.CodeTab,
	tcell.KeyBackspace:  key.CodeBackspace,
	tcell.KeyBackspace2: key.CodeBackspace,
	tcell.KeyDelete:     key.CodeDelete,
	tcell.KeyInsert:     key.CodeInsert,
	tcell.KeyHome:       key.CodeHome,
	tcell.KeyEnd:        key.CodeEnd,
	tcell.KeyPgUp:       key.CodePageUp,
	tcell.KeyPgDn:       key.CodePageDown,
	tcell.KeyUp:         key.CodeUp,
	tcell.KeyDown:       key.CodeDown,
	tcell.KeyLeft:       key.CodeLeft,
	tcell.KeyRight:      key.CodeRight,
	tcell.KeyF1:         key.CodeF1,
	tcell.KeyF2:         key.CodeF2,
	tcell.KeyF3:         key.CodeF3,
	tcell.KeyF4:         key.CodeF4,
	tcell.KeyF5:         key.CodeF5,
	tcell.KeyF6:         key.CodeF6,
	tcell.KeyF7:         key.CodeF7,
	tcell.KeyF8:         key.CodeF8,
	tcell.KeyF9:         key.CodeF9,
	tcell.KeyF10:        key.CodeF10,
	tcell.KeyF11:        key.CodeF11,
	tcell.KeyF12:        key.CodeF12,
}

// translateKey returns the engine key code for e and, for character keys,
// the text it types.
func translateKey(e *tcell.EventKey) (key.Code, string) {
	k := e.Key()
	if k == tcell.KeyRune {
		r := e.Rune()
		return key.Code(r), string(r)
	}
	if code, ok := specialKeys[k]; ok {
		return code, ""
	}
	if ctrlCode(k) {
		return key.Code('a' + rune(k-tcell.KeyCtrlA)), ""
	}
	return key.CodeUnknown, ""
}

// ctrlCode reports whether k is a control character standing for Ctrl and
// a letter. Tab, Enter and Backspace share codes with Ctrl+I, Ctrl+M and
// Ctrl+H and are reported as those keys instead.
func ctrlCode(k tcell.Key) bool {
	if k < tcell.KeyCtrlA || k > tcell.KeyCtrlZ {
		return false
	}
	_, special := specialKeys[k]
	return !special
}
