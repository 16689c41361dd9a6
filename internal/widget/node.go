package widget

// Node is a minimal focus chain element.
type Node struct {
	Name     string
	Delegate bool
	// Handle decides whether a shortcut is consumed. A nil Handle declines.
	Handle func(ev ShortcutEvent) bool

	parent   *Node
	Received []ShortcutEvent
}

// NewNode creates a node under parent, which may be nil.
func NewNode(name string, parent *Node) *Node {
	return &Node{Name: name, parent: parent}
}

// Parent implements Widget.
func (n *Node) Parent() Widget {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// HasDelegate implements Widget.
func (n *Node) HasDelegate() bool {
	return n.Delegate
}

// Shortcut implements Widget.
func (n *Node) Shortcut(ev ShortcutEvent) bool {
	n.Received = append(n.Received, ev)
	if n.Handle == nil {
		return false
	}
	return n.Handle(ev)
}

// FocusState is a settable Focus.
type FocusState struct {
	focused Widget
}

// Focused implements Focus.
func (f *FocusState) Focused() Widget {
	return f.focused
}

// SetFocus moves focus to w; nil clears it.
func (f *FocusState) SetFocus(w Widget) {
	f.focused = w
}
