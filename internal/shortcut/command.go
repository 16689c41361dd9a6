package shortcut

// Command is the symbolic identifier delivered to widgets for a shortcut.
type Command string

// Commands known to the shortcut tables.
const (
	Cut       Command = "cut"
	Copy      Command = "copy"
	Paste     Command = "paste"
	SelectAll Command = "selectall"
	Undo      Command = "undo"
	Redo      Command = "redo"
	New       Command = "new"
	Open      Command = "open"
	Save      Command = "save"
	Close     Command = "close"
	Find      Command = "find"
	FindNext  Command = "findnext"
	FindPrev  Command = "findprev"
	Play      Command = "play"
	PrevDoc   Command = "prev_doc"
	NextDoc   Command = "next_doc"
)

// String returns the identifier.
func (c Command) String() string {
	return string(c)
}

// TargetsDelegate reports whether the command is addressed to the nearest
// focused ancestor that exposes a delegate rather than to the focused
// widget itself.
func (c Command) TargetsDelegate() bool {
	return c == Save || c == Close
}
