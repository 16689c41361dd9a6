package key

// Special is the toolkit's identity for a non-printable key.
type Special uint8

const (
	// SpecialNone marks a character key.
	SpecialNone Special = iota
	SpecialUp
	SpecialDown
	SpecialLeft
	SpecialRight
	SpecialPageUp
	SpecialPageDown
	SpecialHome
	SpecialEnd
	SpecialTab
	SpecialBackspace
	SpecialInsert
	SpecialDelete
	SpecialEnter
	SpecialEsc
	SpecialF1
	SpecialF2
	SpecialF3
	SpecialF4
	SpecialF5
	SpecialF6
	SpecialF7
	SpecialF8
	SpecialF9
	SpecialF10
	SpecialF11
	SpecialF12
)

var specialNames = [...]string{
	SpecialNone:      "None",
	SpecialUp:        "Up",
	SpecialDown:      "Down",
	SpecialLeft:      "Left",
	SpecialRight:     "Right",
	SpecialPageUp:    "PageUp",
	SpecialPageDown:  "PageDown",
	SpecialHome:      "Home",
	SpecialEnd:       "End",
	SpecialTab:       "Tab",
	SpecialBackspace: "Backspace",
	SpecialInsert:    "Insert",
	SpecialDelete:    "Delete",
	SpecialEnter:     "Enter",
	SpecialEsc:       "Esc",
	SpecialF1:        "F1",
	SpecialF2:        "F2",
	SpecialF3:        "F3",
	SpecialF4:        "F4",
	SpecialF5:        "F5",
	SpecialF6:        "F6",
	SpecialF7:        "F7",
	SpecialF8:        "F8",
	SpecialF9:        "F9",
	SpecialF10:       "F10",
	SpecialF11:       "F11",
	SpecialF12:       "F12",
}

// String returns the key name.
func (s Special) String() string {
	if int(s) < len(specialNames) {
		return specialNames[s]
	}
	return "Unknown"
}

var specialByCode = map[Code]Special{
	CodeReturn:    SpecialEnter,
	CodeReturn2:   SpecialEnter,
	CodeKPEnter:   SpecialEnter,
	CodeF1:        SpecialF1,
	CodeF2:        SpecialF2,
	CodeF3:        SpecialF3,
	CodeF4:        SpecialF4,
	CodeF5:        SpecialF5,
	CodeF6:        SpecialF6,
	CodeF7:        SpecialF7,
	CodeF8:        SpecialF8,
	CodeF9:        SpecialF9,
	CodeF10:       SpecialF10,
	CodeF11:       SpecialF11,
	CodeF12:       SpecialF12,
	CodeLeft:      SpecialLeft,
	CodeUp:        SpecialUp,
	CodeRight:     SpecialRight,
	CodeDown:      SpecialDown,
	CodePageUp:    SpecialPageUp,
	CodePageDown:  SpecialPageDown,
	CodeHome:      SpecialHome,
	CodeEnd:       SpecialEnd,
	CodeInsert:    SpecialInsert,
	CodeTab:       SpecialTab,
	CodeDelete:    SpecialDelete,
	CodeBackspace: SpecialBackspace,
	CodeEscape:    SpecialEsc,
}

// SpecialFor returns the special key for an engine code, or SpecialNone
// when the code is a character key.
func SpecialFor(c Code) Special {
	return specialByCode[c]
}
