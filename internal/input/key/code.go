package key

import "fmt"

// Code is an engine key code.
type Code int32

// ScancodeMask marks key codes that have no printable representation.
const ScancodeMask Code = 1 << 30

// Printable keys.
const (
	CodeUnknown   Code = 0
	CodeBackspace Code = '\b'
	CodeTab       Code = '\t'
	CodeReturn    Code = '\r'
	CodeEscape    Code = 0x1b
	CodeSpace     Code = ' '
	CodeDelete    Code = 0x7f
)

// Non-printable keys.
const (
	CodeF1       Code = 58 | ScancodeMask
	CodeF2       Code = 59 | ScancodeMask
	CodeF3       Code = 60 | ScancodeMask
	CodeF4       Code = 61 | ScancodeMask
	CodeF5       Code = 62 | ScancodeMask
	CodeF6       Code = 63 | ScancodeMask
	CodeF7       Code = 64 | ScancodeMask
	CodeF8       Code = 65 | ScancodeMask
	CodeF9       Code = 66 | ScancodeMask
	CodeF10      Code = 67 | ScancodeMask
	CodeF11      Code = 68 | ScancodeMask
	CodeF12      Code = 69 | ScancodeMask
	CodeInsert   Code = 73 | ScancodeMask
	CodeHome     Code = 74 | ScancodeMask
	CodePageUp   Code = 75 | ScancodeMask
	CodeEnd      Code = 77 | ScancodeMask
	CodePageDown Code = 78 | ScancodeMask
	CodeRight    Code = 79 | ScancodeMask
	CodeLeft     Code = 80 | ScancodeMask
	CodeDown     Code = 81 | ScancodeMask
	CodeUp       Code = 82 | ScancodeMask
	CodeKPEnter  Code = 88 | ScancodeMask
	CodeReturn2  Code = 158 | ScancodeMask
	CodeLCtrl    Code = 224 | ScancodeMask
	CodeLShift   Code = 225 | ScancodeMask
	CodeLAlt     Code = 226 | ScancodeMask
	CodeLGUI     Code = 227 | ScancodeMask
	CodeRCtrl    Code = 228 | ScancodeMask
	CodeRShift   Code = 229 | ScancodeMask
	CodeRAlt     Code = 230 | ScancodeMask
	CodeRGUI     Code = 231 | ScancodeMask
)

var codeNames = map[Code]string{
	CodeBackspace: "Backspace",
	CodeTab:       "Tab",
	CodeReturn:    "Return",
	CodeEscape:    "Escape",
	CodeSpace:     "Space",
	CodeDelete:    "Delete",
	CodeF1:        "F1",
	CodeF2:        "F2",
	CodeF3:        "F3",
	CodeF4:        "F4",
	CodeF5:        "F5",
	CodeF6:        "F6",
	CodeF7:        "F7",
	CodeF8:        "F8",
	CodeF9:        "F9",
	CodeF10:       "F10",
	CodeF11:       "F11",
	CodeF12:       "F12",
	CodeInsert:    "Insert",
	CodeHome:      "Home",
	CodePageUp:    "PageUp",
	CodeEnd:       "End",
	CodePageDown:  "PageDown",
	CodeRight:     "Right",
	CodeLeft:      "Left",
	CodeDown:      "Down",
	CodeUp:        "Up",
	CodeKPEnter:   "KeypadEnter",
	CodeReturn2:   "Return2",
	CodeLCtrl:     "LeftCtrl",
	CodeLShift:    "LeftShift",
	CodeLAlt:      "LeftAlt",
	CodeLGUI:      "LeftGUI",
	CodeRCtrl:     "RightCtrl",
	CodeRShift:    "RightShift",
	CodeRAlt:      "RightAlt",
	CodeRGUI:      "RightGUI",
}

// String returns a readable name for the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	if c > CodeSpace && c < CodeDelete {
		return string(rune(c))
	}
	return fmt.Sprintf("Code(%#x)", int32(c))
}

// IsPrintable reports whether c is a character key.
func (c Code) IsPrintable() bool {
	return c&ScancodeMask == 0 && c != CodeUnknown
}

// IsEnter reports whether c is one of the keys that confirm input.
func (c Code) IsEnter() bool {
	return c == CodeReturn || c == CodeReturn2 || c == CodeKPEnter
}

// IsCtrl reports whether c is either control key.
func (c Code) IsCtrl() bool {
	return c == CodeLCtrl || c == CodeRCtrl
}

// IsGUI reports whether c is either GUI (Command, Windows logo) key.
func (c Code) IsGUI() bool {
	return c == CodeLGUI || c == CodeRGUI
}

// Upper returns the upper case form of an ASCII letter code.
// Any other code is returned unchanged.
func (c Code) Upper() Code {
	if c >= 'a' && c <= 'z' {
		return c + 'A' - 'a'
	}
	return c
}
